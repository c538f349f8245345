package i18n

var english = map[string]string{
	"validation.required":                  "This field is required",
	"validation.phoneRequired":             "Phone number is required",
	"validation.phoneTenDigits":            "Please enter a valid 10-digit phone number",
	"validation.emailRequired":             "Email is required",
	"validation.emailInvalid":              "Please enter a valid email address",
	"validation.nameMinLength":             "Minimum 2 characters required",
	"validation.nameAlphabetic":            "Only alphabetic characters allowed",
	"validation.ageRequired":               "Age is required",
	"validation.ageNumber":                 "Age must be a number",
	"validation.ageRange":                  "Age must be between 18 and 100",
	"validation.genderInvalid":             "Please choose a gender from the list",
	"validation.houseNoRequired":           "House/Flat number is required",
	"validation.streetRequired":            "Street is required",
	"validation.areaRequired":              "Area is required",
	"validation.wardRequired":              "Ward/Sector is required",
	"validation.cityRequired":              "City is required",
	"validation.pincodeRequired":           "Pincode is required",
	"validation.pincodeSixDigits":          "Pincode must be exactly 6 digits",
	"validation.contactPhoneRequired":      "Phone number is required",
	"validation.contactPhoneDigits":        "Phone number must be 10 digits",
	"validation.relationRequired":          "Relation is required",
	"validation.emergencyContactsRequired": "At least one emergency contact is required",
	"validation.serviceTypeRequired":       "Service type is required",
	"validation.businessNameRequired":      "Business name is required",
	"validation.businessNameMinLength":     "Minimum 3 characters required",
	"validation.servicePhoneDigits":        "Phone must be 10 digits",
	"validation.descriptionMaxLength":      "Maximum 250 characters allowed",
	"validation.helpDescMinLength":         "Please describe in at least 10 characters",
	"validation.consentRequired":           "Please agree to be contacted",
	"password.requirements":                "Password does not meet the requirements",
	"password.weak":                        "Weak",
	"password.medium":                      "Medium",
	"password.strong":                      "Strong",

	"otp.sent":               "A 6-digit code has been sent",
	"otp.resent":             "A new code has been sent",
	"otp.maxResendReached":   "Maximum resend attempts reached. Please try again later.",
	"otp.resendNotAvailable": "Please wait before requesting a new code",
	"otp.incomplete":         "Please enter all 6 digits",
	"otp.invalid":            "The code you entered is incorrect",

	"home.alertSent":                "SOS alert sent",
	"home.alertSentDesc":            "Your emergency alert has been sent to the municipality and your emergency contacts.",
	"home.sosConfirm":               "Send an emergency alert?",
	"help.requestSent":              "Request sent",
	"help.requestSentDesc":          "Volunteers near you will be notified.",
	"help.offerShared":              "Thank you for offering help",
	"help.offerSharedDesc":          "We will contact you when someone needs your help.",
	"event.registrationSuccess":     "You have joined this event",
	"event.registrationSuccessDesc": "The organizer will contact you with details.",
	"event.alreadyJoined":           "You have already joined this event",
	"event.joinConfirmation":        "Do you want to join this event?",
	"poll.voted":                    "Thank you for voting",
	"poll.alreadyVoted":             "You have already voted in this poll",
	"poll.closed":                   "This poll has ended",
	"notices.pdfDownloadStarted":    "Download started",
	"profile.logoutConfirm":         "Are you sure you want to log out?",
	"verification.pendingDesc":      "Your profile is under review. This usually takes 1-2 business days.",
	"verification.completeDesc":     "Your profile has been verified.",

	"common.back":      "Go back",
	"common.error":     "Something went wrong",
	"notice.notFound":  "Notice not found",
	"alert.notFound":   "Alert not found",
	"service.notFound": "Service not found",
	"event.notFound":   "Event not found",

	"screen.language":              "Choose your language",
	"screen.auth-choice":           "Welcome to MyArea",
	"screen.login":                 "Login",
	"screen.signup":                "Sign up",
	"screen.profile-completion":    "Complete your profile",
	"screen.verification-pending":  "Verification pending",
	"screen.verification-complete": "Verification complete",
	"screen.home":                  "MyArea",
	"screen.notices":               "Notices",
	"screen.notice-detail":         "Notice",
	"screen.help-volunteer":        "Help / Volunteer",
	"screen.need-help":             "Need help",
	"screen.offer-help":            "Offer help",
	"screen.services":              "Local services",
	"screen.service-detail":        "Service details",
	"screen.safety":                "Safety & alerts",
	"screen.alert-detail":          "Alert details",
	"screen.polls":                 "Community polls",
	"screen.profile":               "Profile",
	"screen.event-detail":          "Event details",
	"screen.about":                 "About MyArea",
	"screen.privacy":               "Privacy policy",
	"screen.terms":                 "Terms of service",
	"screen.help-support":          "Help & support",
}

var tamil = map[string]string{
	"validation.required":                  "இந்த புலம் தேவை",
	"validation.phoneRequired":             "தொலைபேசி எண் தேவை",
	"validation.phoneTenDigits":            "சரியான 10 இலக்க தொலைபேசி எண்ணை உள்ளிடவும்",
	"validation.emailRequired":             "மின்னஞ்சல் தேவை",
	"validation.emailInvalid":              "சரியான மின்னஞ்சல் முகவரியை உள்ளிடவும்",
	"validation.ageRequired":               "வயது தேவை",
	"validation.ageRange":                  "வயது 18 முதல் 100 வரை இருக்க வேண்டும்",
	"validation.pincodeRequired":           "அஞ்சல் குறியீடு தேவை",
	"validation.pincodeSixDigits":          "அஞ்சல் குறியீடு சரியாக 6 இலக்கங்கள் இருக்க வேண்டும்",
	"validation.emergencyContactsRequired": "குறைந்தது ஒரு அவசர தொடர்பு தேவை",
	"validation.helpDescMinLength":         "குறைந்தது 10 எழுத்துகளில் விவரிக்கவும்",
	"validation.consentRequired":           "தொடர்பு கொள்ள ஒப்புதல் அளிக்கவும்",
	"password.requirements":                "கடவுச்சொல் தேவைகளை பூர்த்தி செய்யவில்லை",
	"password.weak":                        "பலவீனம்",
	"password.medium":                      "நடுத்தரம்",
	"password.strong":                      "வலிமை",
	"otp.maxResendReached":                 "அதிகபட்ச மறு அனுப்புதல் முயற்சிகள் முடிந்தன. பின்னர் முயற்சிக்கவும்.",
	"home.alertSent":                       "SOS எச்சரிக்கை அனுப்பப்பட்டது",
	"home.alertSentDesc":                   "உங்கள் அவசர எச்சரிக்கை நகராட்சிக்கும் உங்கள் அவசர தொடர்புகளுக்கும் அனுப்பப்பட்டது.",
	"help.requestSent":                     "கோரிக்கை அனுப்பப்பட்டது",
	"help.offerShared":                     "உதவ முன்வந்ததற்கு நன்றி",
	"event.registrationSuccess":            "நீங்கள் இந்த நிகழ்வில் இணைந்துள்ளீர்கள்",
	"common.back":                          "பின் செல்",
	"common.error":                         "ஏதோ தவறு நடந்தது",
	"screen.language":                      "உங்கள் மொழியைத் தேர்ந்தெடுக்கவும்",
	"screen.login":                         "உள்நுழை",
	"screen.signup":                        "பதிவு செய்",
	"screen.home":                          "எனது பகுதி",
	"screen.notices":                       "அறிவிப்புகள்",
	"screen.services":                      "உள்ளூர் சேவைகள்",
	"screen.safety":                        "பாதுகாப்பு & எச்சரிக்கைகள்",
	"screen.polls":                         "சமூக வாக்கெடுப்புகள்",
	"screen.profile":                       "சுயவிவரம்",
}

var hindi = map[string]string{
	"validation.required":                  "यह फ़ील्ड आवश्यक है",
	"validation.phoneRequired":             "फ़ोन नंबर आवश्यक है",
	"validation.phoneTenDigits":            "कृपया एक मान्य 10 अंकों का फ़ोन नंबर दर्ज करें",
	"validation.emailRequired":             "ईमेल आवश्यक है",
	"validation.emailInvalid":              "कृपया एक मान्य ईमेल पता दर्ज करें",
	"validation.ageRequired":               "आयु आवश्यक है",
	"validation.ageRange":                  "आयु 18 से 100 के बीच होनी चाहिए",
	"validation.pincodeRequired":           "पिनकोड आवश्यक है",
	"validation.pincodeSixDigits":          "पिनकोड ठीक 6 अंकों का होना चाहिए",
	"validation.emergencyContactsRequired": "कम से कम एक आपातकालीन संपर्क आवश्यक है",
	"validation.helpDescMinLength":         "कृपया कम से कम 10 अक्षरों में वर्णन करें",
	"validation.consentRequired":           "कृपया संपर्क किए जाने के लिए सहमति दें",
	"password.requirements":                "पासवर्ड आवश्यकताओं को पूरा नहीं करता",
	"password.weak":                        "कमज़ोर",
	"password.medium":                      "मध्यम",
	"password.strong":                      "मज़बूत",
	"otp.maxResendReached":                 "अधिकतम पुनः भेजने के प्रयास पूरे हो गए। कृपया बाद में प्रयास करें।",
	"home.alertSent":                       "SOS अलर्ट भेजा गया",
	"home.alertSentDesc":                   "आपका आपातकालीन अलर्ट नगरपालिका और आपके आपातकालीन संपर्कों को भेज दिया गया है।",
	"help.requestSent":                     "अनुरोध भेजा गया",
	"help.offerShared":                     "मदद की पेशकश के लिए धन्यवाद",
	"event.registrationSuccess":            "आप इस कार्यक्रम में शामिल हो गए हैं",
	"common.back":                          "वापस जाएं",
	"common.error":                         "कुछ गलत हो गया",
	"screen.language":                      "अपनी भाषा चुनें",
	"screen.login":                         "लॉग इन",
	"screen.signup":                        "साइन अप",
	"screen.home":                          "मेरा क्षेत्र",
	"screen.notices":                       "सूचनाएं",
	"screen.services":                      "स्थानीय सेवाएं",
	"screen.safety":                        "सुरक्षा और अलर्ट",
	"screen.polls":                         "सामुदायिक मतदान",
	"screen.profile":                       "प्रोफ़ाइल",
}
