package catalog

import "github.com/myarea/app-myarea/internal/models"

var notices = []models.Notice{
	{ID: "1", Title: "Water Supply Maintenance Schedule", Category: "Water", Date: "January 2, 2026", HasPDF: true, Source: "Municipality",
		Description: "Scheduled maintenance work will be carried out on the main water supply line. Water supply will be interrupted from 10:00 AM to 2:00 PM on January 5, 2026."},
	{ID: "2", Title: "Community Clean-up Drive", Category: "Event", Date: "December 30, 2025", HasPDF: false, Source: "Community Admin",
		Description: "Join us for a community clean-up drive on January 10, 2026. All residents are encouraged to participate. Cleaning equipment will be provided."},
	{ID: "3", Title: "Road Repair Work - Main Street", Category: "Road", Date: "December 28, 2025", HasPDF: true, Source: "Municipality",
		Description: "Main Street will be closed for repair work from January 8-15, 2026. Please use alternate routes during this period."},
	{ID: "4", Title: "Property Tax Payment Reminder", Category: "Tax", Date: "December 25, 2025", HasPDF: true, Source: "Municipality",
		Description: "This is a reminder that property tax payments for the year 2026 are due by January 31, 2026. Pay online or visit the municipal office."},
	{ID: "5", Title: "New Year Community Celebration", Category: "Event", Date: "December 20, 2025", HasPDF: false, Source: "Community Admin",
		Description: "Join your neighbors for a New Year community celebration at the community hall. Food and entertainment will be provided."},
}

var noticeDetails = []models.NoticeDetail{
	{
		ID:       "1",
		Title:    "Property Tax Payment Deadline Extended",
		Category: "Tax Notice",
		Date:     "December 28, 2025",
		PostedBy: "Revenue Department",
		Summary:  "Last date for property tax payment extended to January 31, 2026.",
		FullContent: "The Municipality announces that the last date for property tax payment for the financial year 2025-26 has been extended to January 31, 2026.\n\n" +
			"No penalty applies to payments made before January 31, 2026. Online payment is available on the municipality website and physical counters are open Mon-Sat, 9 AM - 5 PM.\n\n" +
			"For queries, contact the Revenue Department: 1800-123-4569",
		PDFURL: "/documents/tax-notice-2025.pdf",
	},
	{
		ID:       "2",
		Title:    "Road Maintenance Schedule - January 2026",
		Category: "Infrastructure",
		Date:     "December 30, 2025",
		PostedBy: "Public Works Department",
		Summary:  "Scheduled road repairs across multiple sectors in January 2026.",
		FullContent: "The Public Works Department will conduct road maintenance and repairs in the following sectors during January 2026.\n\n" +
			"Sector A: January 5-10\nSector B: January 12-17\nSector C: January 19-24\nSector D: January 26-31\n\n" +
			"Work runs Monday to Saturday, 9 AM - 6 PM. Expect temporary traffic diversions and parking restrictions in work zones.",
		PDFURL: "/documents/road-schedule-jan-2026.pdf",
	},
	{
		ID:       "3",
		Title:    "Community Health Camp - Free Check-ups",
		Category: "Health",
		Date:     "January 2, 2026",
		PostedBy: "Health & Welfare Department",
		Summary:  "Free health check-up camp on January 15, 2026.",
		FullContent: "The Health & Welfare Department is organizing a free community health camp on January 15, 2026, 8 AM - 2 PM at the Community Center, Ward 12.\n\n" +
			"Services include general check-ups, blood pressure and blood sugar testing, doctor consultation and basic medicine distribution.\n\n" +
			"Bring your MyArea ID or proof of residence.",
		PDFURL: "/documents/health-camp-jan-2026.pdf",
	},
}

var homeAlerts = []models.HomeAlert{
	{ID: "1", Type: "emergency", Title: "Water Supply Interruption", Description: "Scheduled maintenance from 10 AM - 2 PM tomorrow"},
	{ID: "2", Type: "info", Title: "Road Closure Notice", Description: "Main Street will be closed for repair work"},
}

var alertDetails = []models.AlertDetail{
	{
		ID:              "1",
		Type:            "High Alert",
		Title:           "Heavy Rainfall Warning",
		Description:     "Heavy rainfall expected in the next 24 hours. Avoid low-lying areas.",
		FullDescription: "The Meteorological Department has issued a heavy rainfall warning for our area. Expected rainfall: 100-150mm in the next 24 hours. Residents in low-lying areas are advised to move to higher ground. Keep emergency supplies ready and avoid unnecessary travel.",
		Time:            "2 hours ago",
		Location:        "All sectors",
		Severity:        "high",
		Instructions: []string{
			"Stay indoors if possible",
			"Keep emergency supplies ready",
			"Avoid driving through flooded areas",
			"Monitor weather updates regularly",
			"Keep phone charged",
		},
		ContactInfo: map[string]string{"emergency": "100", "municipality": "1800-123-4567"},
	},
	{
		ID:              "2",
		Type:            "Medium Alert",
		Title:           "Road Closure Notice",
		Description:     "Main Street closed for repairs until January 5th.",
		FullDescription: "Main Street between Sectors A and B will be closed for emergency repairs from January 3rd to January 5th, 2026. Alternative routes are available via Ring Road. Please plan your travel accordingly.",
		Time:            "5 hours ago",
		Location:        "Main Street, Sectors A-B",
		Severity:        "medium",
		Instructions: []string{
			"Use Ring Road as alternative route",
			"Allow extra travel time",
			"Follow traffic diversions",
			"Avoid the area during peak hours",
		},
		ContactInfo: map[string]string{"trafficControl": "1800-123-4568"},
	},
}

var emergencyNumbers = []models.EmergencyNumber{
	{ID: "1", Name: "Police", Number: "100"},
	{ID: "2", Name: "Ambulance", Number: "108"},
	{ID: "3", Name: "Fire", Number: "101"},
	{ID: "4", Name: "Municipality", Number: "1800-123-4567"},
}

var safetyAlerts = []models.SafetyAlert{
	{
		ID: "1", Type: "road", Title: "Road Closure - Main Street", Date: "January 2, 2026", Severity: "medium",
		Description:     "Main Street closed for repair work until January 15, 2026. Use alternate routes.",
		FullDescription: "Due to major road repair and resurfacing work, Main Street will remain closed from Junction A to Junction B. Alternative routes via Park Avenue and Station Road are available. Expected completion: January 15, 2026.",
		AffectedAreas:   []string{"Ward 12", "Sector A"},
		ContactPerson:   "Roads Department",
		ContactNumber:   "1800-111-2222",
	},
	{
		ID: "2", Type: "power", Title: "Scheduled Power Outage", Date: "January 1, 2026", Severity: "low",
		Description:     "Power supply will be interrupted in Sector B on January 5 from 11 AM to 3 PM for maintenance.",
		FullDescription: "Electricity Board has scheduled maintenance work on the main transformer in Sector B. Power supply will be interrupted on January 5, 2026, from 11:00 AM to 3:00 PM.",
		AffectedAreas:   []string{"Sector B", "Ward 15"},
		ContactPerson:   "Electricity Board",
		ContactNumber:   "1800-333-4444",
	},
	{
		ID: "3", Type: "water", Title: "Water Supply Maintenance", Date: "December 30, 2025", Severity: "medium",
		Description:     "Water supply will be affected in Ward 12 on January 5 from 10 AM to 2 PM.",
		FullDescription: "Municipal water department will conduct valve replacement and pipeline cleaning work. Store sufficient water in advance. Emergency water tankers will be available on request.",
		AffectedAreas:   []string{"Ward 12", "Main Street Area"},
		ContactPerson:   "Water Department",
		ContactNumber:   "1800-555-6666",
	},
	{
		ID: "4", Type: "weather", Title: "Heavy Rain Warning", Date: "December 28, 2025", Severity: "high",
		Description:     "Meteorological department has issued heavy rain warning for January 8-10. Please take necessary precautions.",
		FullDescription: "The Regional Meteorological Department has issued a heavy rainfall warning for our area from January 8-10, 2026. Avoid unnecessary travel, secure outdoor items and stay away from low-lying areas prone to flooding.",
		AffectedAreas:   []string{"All Wards", "Entire Municipality"},
		ContactPerson:   "Disaster Management Cell",
		ContactNumber:   "1800-777-8888",
	},
}

var serviceListings = []models.ServiceListing{
	{ID: "1", Category: "Plumber", BusinessName: "Quick Fix Plumbing", Phone: "+91 98765 43210", Location: "Ward 12, Sector A", Distance: "0.5 km",
		Description: "24/7 emergency plumbing services. Specializing in pipe repairs, installations, and water tank maintenance."},
	{ID: "2", Category: "Plumber", BusinessName: "Reliable Plumbers", Phone: "+91 98765 43211", Location: "Ward 12, Sector B", Distance: "1.2 km",
		Description: "Professional plumbing services for residential and commercial properties."},
	{ID: "3", Category: "Electrician", BusinessName: "Bright Spark Electricals", Phone: "+91 98765 43212", Location: "Ward 12, Sector A", Distance: "0.8 km",
		Description: "Licensed electricians for all electrical work. Wiring, repairs, and installations."},
	{ID: "4", Category: "Electrician", BusinessName: "Power Solutions", Phone: "+91 98765 43213", Location: "Ward 12, Sector C", Distance: "1.5 km",
		Description: "Expert electrical services with 10+ years of experience."},
	{ID: "5", Category: "Medical", BusinessName: "Dr. Sharma Clinic", Phone: "+91 98765 43214", Location: "Ward 12, Main Street", Distance: "0.3 km",
		Description: "General physician. Consultation hours: 9 AM - 8 PM. Emergency services available."},
	{ID: "6", Category: "Medical", BusinessName: "City Medical Center", Phone: "+91 98765 43215", Location: "Ward 12, Sector B", Distance: "1.0 km",
		Description: "Multi-specialty clinic with experienced doctors and modern facilities."},
	{ID: "7", Category: "Others", BusinessName: "Home Tutor Services", Phone: "+91 98765 43216", Location: "Ward 12, Sector A", Distance: "0.6 km",
		Description: "Experienced tutors for all subjects, grades 1-12. Home and online classes available."},
	{ID: "8", Category: "Others", BusinessName: "Quick Carpenter", Phone: "+91 98765 43217", Location: "Ward 12, Sector C", Distance: "1.8 km",
		Description: "Custom furniture, repairs, and woodwork services."},
}

var serviceProviders = []models.ServiceProvider{
	{
		ID:              "1",
		Category:        "Plumber",
		BusinessName:    "Quick Fix Plumbing",
		OwnerName:       "Rajesh Kumar",
		Phone:           "+91 98765 43210",
		Location:        "Ward 12, Sector A",
		Description:     "24/7 emergency plumbing services. Specializing in pipe repairs, installations, and water tank maintenance.",
		FullDescription: "Quick Fix Plumbing has been serving the community for over 10 years. We handle all types of plumbing work including emergency repairs, new installations, bathroom fitting, water heater service, and drainage cleaning.",
		WorkingHours:    "Mon-Sun: 24/7 Emergency Service",
		RegularHours:    "Regular Service: 8 AM - 8 PM",
		Distance:        "0.5 km",
		Rating:          4.5,
		Reviews:         120,
		Services:        []string{"Emergency Repairs", "Pipe Installation", "Bathroom Fitting", "Water Tank Cleaning", "Drainage Solutions"},
	},
	{
		ID:              "2",
		Category:        "Plumber",
		BusinessName:    "Reliable Plumbers",
		OwnerName:       "Amit Sharma",
		Phone:           "+91 98765 43211",
		Location:        "Ward 12, Sector B",
		Description:     "Professional plumbing services for residential and commercial properties.",
		FullDescription: "Reliable Plumbers offers comprehensive plumbing solutions with a focus on quality and customer satisfaction. We use modern equipment and techniques to ensure long-lasting repairs.",
		WorkingHours:    "Mon-Sat: 9 AM - 7 PM",
		RegularHours:    "Sunday: Closed",
		Distance:        "1.2 km",
		Rating:          4.2,
		Reviews:         85,
		Services:        []string{"Leak Repairs", "Pipe Installation", "Fixture Installation", "Water Heater Service"},
	},
	{
		ID:              "3",
		Category:        "Electrician",
		BusinessName:    "Bright Spark Electricals",
		OwnerName:       "Suresh Reddy",
		Phone:           "+91 98765 43212",
		Location:        "Ward 12, Sector A",
		Description:     "Licensed electricians for all electrical work. Wiring, repairs, and installations.",
		FullDescription: "Bright Spark Electricals is a licensed electrical service provider with certified electricians. We handle residential and commercial electrical work with a focus on safety and compliance.",
		WorkingHours:    "Mon-Sat: 8 AM - 9 PM",
		RegularHours:    "Sunday: Emergency Only",
		Distance:        "0.8 km",
		Rating:          4.7,
		Reviews:         150,
		Services:        []string{"House Wiring", "Electrical Repairs", "Appliance Installation", "Safety Inspection", "LED Installation"},
	},
}

var polls = []models.Poll{
	{
		ID: "1", Question: "What time should the weekly community market be held?",
		Options:   []string{"Saturday Morning", "Saturday Evening", "Sunday Morning", "Sunday Evening"},
		Votes:     []int{45, 23, 67, 15},
		CreatedBy: "Municipality", Date: "January 1, 2026", Status: models.PollStatusActive, ExpiryDate: "January 15, 2026",
	},
	{
		ID: "2", Question: "Which community improvement project should be prioritized?",
		Options:   []string{"New Park", "Community Center Renovation", "Street Lighting", "Public Library"},
		Votes:     []int{32, 28, 54, 36},
		CreatedBy: "Community Admin", Date: "December 28, 2025", Status: models.PollStatusActive, ExpiryDate: "January 10, 2026",
	},
	{
		ID: "3", Question: "Should the community organize a monthly clean-up drive?",
		Options:   []string{"Yes, first Saturday", "Yes, last Saturday", "Yes, first Sunday", "No"},
		Votes:     []int{78, 45, 23, 4},
		CreatedBy: "Municipality", Date: "December 25, 2025", Status: models.PollStatusExpired,
		Decision: "Decision: Monthly clean-up drives will be held on first Saturday",
	},
	{
		ID: "4", Question: "Should parking fees be increased in the commercial area?",
		Options:   []string{"Yes, increase by 20%", "Yes, increase by 10%", "No, keep current rates", "No, decrease rates"},
		Votes:     []int{15, 28, 89, 12},
		CreatedBy: "Municipality", Date: "December 20, 2025", Status: models.PollStatusExpired,
		Decision: "Decision: Parking fees will remain at current rates",
	},
	{
		ID: "5", Question: "What type of recreational facility should be added to Ward 12?",
		Options:   []string{"Children's Playground", "Outdoor Gym", "Basketball Court", "Meditation Garden"},
		Votes:     []int{102, 67, 45, 34},
		CreatedBy: "Ward Committee", Date: "December 15, 2025", Status: models.PollStatusExpired,
		Decision: "Decision: Children's Playground will be constructed in Q2 2026",
	},
}

var volunteerEvents = []models.VolunteerEvent{
	{ID: "1", Title: "Community Clean-up Drive", Date: "January 10, 2026", Time: "9:00 AM - 12:00 PM", Location: "Central Park, Ward 12", Organizer: "Green Ward Initiative",
		Description: "Join us in cleaning up the local park and surrounding areas. Help make our community cleaner and greener."},
	{ID: "2", Title: "Food Distribution for Elderly", Date: "January 15, 2026", Time: "11:00 AM - 2:00 PM", Location: "Community Center", Organizer: "Senior Care Society",
		Description: "Help distribute meals to senior citizens in the community. Volunteers needed for cooking, packing, and delivery."},
	{ID: "3", Title: "Tree Plantation Drive", Date: "January 20, 2026", Time: "7:00 AM - 10:00 AM", Location: "Main Street", Organizer: "Environment Committee",
		Description: "Plant trees and contribute to a greener community. All necessary tools and saplings will be provided."},
}

var faqs = []models.FAQ{
	{ID: "1", Question: "How long does verification take?",
		Answer: "Usually 1-2 business days. The municipality team reviews all applications to ensure community safety. You will receive a notification once your account is verified."},
	{ID: "2", Question: "Who can see my information?",
		Answer: "Only municipality administrators and relevant community members during emergencies can access your information. Your emergency contacts are notified only when you trigger an SOS alert."},
	{ID: "3", Question: "Can I change my language later?",
		Answer: "Yes, from Profile, Settings, Change Language. You can switch between English, Tamil, and Hindi at any time."},
	{ID: "4", Question: "What happens if I press SOS by mistake?",
		Answer: "You will be asked to confirm before sending the alert. If you accidentally send an alert, please call your local municipality office immediately to inform them."},
	{ID: "5", Question: "Are service providers verified?",
		Answer: "Services are community-listed and subject to moderation. We recommend verifying credentials before engaging any service provider."},
	{ID: "6", Question: "How do I update my emergency contacts?",
		Answer: "Go to Profile, Emergency Contacts. You can add, edit, or remove contacts at any time."},
	{ID: "7", Question: "Can I delete my account?",
		Answer: "Yes, you can request account deletion by contacting your local municipality office. Some information may be retained for legal and safety purposes."},
	{ID: "8", Question: "What should I do if I see incorrect information in a notice?",
		Answer: "Report it through the Help & Support section or contact your municipality office directly."},
	{ID: "9", Question: "How do I participate in volunteer events?",
		Answer: "Go to Help / Volunteer and browse upcoming events. Select \"Join Event\" to register and the organizer will contact you with details."},
	{ID: "10", Question: "Is my data secure?",
		Answer: "Yes, all data is encrypted and protected under applicable data protection laws."},
}
