package models

import "time"

// Gender values accepted by the profile form
const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer-not-to-say"
)

// ValidGenderOptions returns the gender values the profile form offers
func ValidGenderOptions() []string {
	return []string{GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay}
}

// IsValidGender reports whether g is empty or one of the offered values
func IsValidGender(g string) bool {
	if g == "" {
		return true
	}
	for _, option := range ValidGenderOptions() {
		if g == option {
			return true
		}
	}
	return false
}

// VolunteerAreaOptions are the interests offered during profile completion
var VolunteerAreaOptions = []string{
	"Emergency response",
	"Event volunteering",
	"Cleanliness drives",
	"Elder support",
	"Other",
}

// ServiceTypeOptions are the service types a provider can register
var ServiceTypeOptions = []string{
	"Plumber",
	"Electrician",
	"Tutor",
	"Doctor",
	"Carpenter",
	"Painter",
	"Other",
}

// RelationOptions are the relations offered for emergency contacts
var RelationOptions = []string{
	"Parent",
	"Spouse",
	"Sibling",
	"Child",
	"Friend",
	"Neighbor",
	"Other",
}

// Address is the residential address captured at profile completion
type Address struct {
	HouseNo string `json:"houseNo" bson:"house_no"`
	Street  string `json:"street" bson:"street"`
	Area    string `json:"area" bson:"area"`
	Ward    string `json:"ward" bson:"ward"`
	City    string `json:"city" bson:"city"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// EmergencyContact is a person notified when the user raises an SOS
type EmergencyContact struct {
	Name     string `json:"name" bson:"name"`
	Relation string `json:"relation" bson:"relation"`
	Phone    string `json:"phone" bson:"phone"`
}

// IsEmpty reports whether no field of the row was filled in
func (c EmergencyContact) IsEmpty() bool {
	return c.Name == "" && c.Relation == "" && c.Phone == ""
}

// IsComplete reports whether every field of the row was filled in
func (c EmergencyContact) IsComplete() bool {
	return c.Name != "" && c.Relation != "" && c.Phone != ""
}

// ServiceDetails describes the service a resident offers to the community
type ServiceDetails struct {
	Type         string `json:"type" bson:"type"`
	BusinessName string `json:"businessName" bson:"business_name"`
	Phone        string `json:"phone" bson:"phone"`
	ServiceArea  string `json:"serviceArea" bson:"service_area"`
	Description  string `json:"description" bson:"description"`
}

// UserProfile is the resident profile held by the session after completion
type UserProfile struct {
	FirstName         string             `json:"firstName" bson:"first_name"`
	LastName          string             `json:"lastName" bson:"last_name"`
	Age               string             `json:"age" bson:"age"`
	Gender            string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Address           Address            `json:"address" bson:"address"`
	VolunteerInterest bool               `json:"volunteerInterest" bson:"volunteer_interest"`
	VolunteerAreas    []string           `json:"volunteerAreas" bson:"volunteer_areas"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts" bson:"emergency_contacts"`
	ServicesProvided  bool               `json:"servicesProvided" bson:"services_provided"`
	ServiceDetails    *ServiceDetails    `json:"serviceDetails,omitempty" bson:"service_details,omitempty"`
}

// FullName joins first and last name
func (p UserProfile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ProfileForm is the raw profile completion form as entered by the user.
// Emergency contact rows may be partial and service fields are always present.
type ProfileForm struct {
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Age                string             `json:"age"`
	Gender             string             `json:"gender"`
	Address            Address            `json:"address"`
	VolunteerInterest  bool               `json:"volunteerInterest"`
	VolunteerAreas     []string           `json:"volunteerAreas"`
	EmergencyContacts  []EmergencyContact `json:"emergencyContacts"`
	ServicesProvided   bool               `json:"servicesProvided"`
	ServiceType        string             `json:"serviceType"`
	BusinessName       string             `json:"businessName"`
	ServicePhone       string             `json:"servicePhone"`
	ServiceArea        string             `json:"serviceArea"`
	ServiceDescription string             `json:"serviceDescription"`
}

// ToProfile builds the profile to store from a validated form. Only fully
// populated contact rows are kept and service details are dropped unless the
// user offers services.
func (f ProfileForm) ToProfile() UserProfile {
	contacts := make([]EmergencyContact, 0, len(f.EmergencyContacts))
	for _, c := range f.EmergencyContacts {
		if c.IsComplete() {
			contacts = append(contacts, c)
		}
	}

	areas := f.VolunteerAreas
	if areas == nil {
		areas = []string{}
	}

	profile := UserProfile{
		FirstName:         f.FirstName,
		LastName:          f.LastName,
		Age:               f.Age,
		Gender:            f.Gender,
		Address:           f.Address,
		VolunteerInterest: f.VolunteerInterest,
		VolunteerAreas:    areas,
		EmergencyContacts: contacts,
		ServicesProvided:  f.ServicesProvided,
	}
	if f.ServicesProvided {
		profile.ServiceDetails = &ServiceDetails{
			Type:         f.ServiceType,
			BusinessName: f.BusinessName,
			Phone:        f.ServicePhone,
			ServiceArea:  f.ServiceArea,
			Description:  f.ServiceDescription,
		}
	}
	return profile
}

// ProfileRecord is the persisted form of a submitted profile
type ProfileRecord struct {
	Identifier  string      `json:"identifier" bson:"identifier"`
	Language    Language    `json:"language" bson:"language"`
	Profile     UserProfile `json:"profile" bson:"profile"`
	Status      string      `json:"status" bson:"status"`
	SubmittedAt time.Time   `json:"submitted_at" bson:"submitted_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

// Profile review statuses
const (
	ProfileStatusPending  = "pending"
	ProfileStatusVerified = "verified"
)
