package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/myarea/app-myarea/internal/models"
)

// Message keys returned by the validation engines. The i18n package resolves
// them into the session language.
const (
	MsgRequired              = "validation.required"
	MsgPhoneRequired         = "validation.phoneRequired"
	MsgPhoneTenDigits        = "validation.phoneTenDigits"
	MsgEmailRequired         = "validation.emailRequired"
	MsgEmailInvalid          = "validation.emailInvalid"
	MsgPasswordRequirements  = "password.requirements"
	MsgNameMinLength         = "validation.nameMinLength"
	MsgNameAlphabetic        = "validation.nameAlphabetic"
	MsgAgeRequired           = "validation.ageRequired"
	MsgAgeNumber             = "validation.ageNumber"
	MsgAgeRange              = "validation.ageRange"
	MsgGenderInvalid         = "validation.genderInvalid"
	MsgHouseNoRequired       = "validation.houseNoRequired"
	MsgStreetRequired        = "validation.streetRequired"
	MsgAreaRequired          = "validation.areaRequired"
	MsgWardRequired          = "validation.wardRequired"
	MsgCityRequired          = "validation.cityRequired"
	MsgPincodeRequired       = "validation.pincodeRequired"
	MsgPincodeSixDigits      = "validation.pincodeSixDigits"
	MsgContactPhoneRequired  = "validation.contactPhoneRequired"
	MsgContactPhoneDigits    = "validation.contactPhoneDigits"
	MsgRelationRequired      = "validation.relationRequired"
	MsgContactsRequired      = "validation.emergencyContactsRequired"
	MsgServiceTypeRequired   = "validation.serviceTypeRequired"
	MsgBusinessNameRequired  = "validation.businessNameRequired"
	MsgBusinessNameMinLength = "validation.businessNameMinLength"
	MsgServicePhoneDigits    = "validation.servicePhoneDigits"
	MsgDescriptionMaxLength  = "validation.descriptionMaxLength"
	MsgHelpDescMinLength     = "validation.helpDescMinLength"
	MsgConsentRequired       = "validation.consentRequired"
)

// Field limits shared by the form validators
const (
	PasswordMinLength       = 8
	PasswordMaxLength       = 20
	PhoneDigits             = 10
	PincodeDigits           = 6
	NameMinLength           = 2
	BusinessNameMinLength   = 3
	ServiceDescriptionLimit = 250
	HelpDescriptionMin      = 10
	MinAge                  = 18
	MaxAge                  = 100
)

var (
	emailRegex        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsRegex       = regexp.MustCompile(`^\d+$`)
	nameRegex         = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	uppercaseRegex    = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex    = regexp.MustCompile(`[a-z]`)
	numberRegex       = regexp.MustCompile(`[0-9]`)
	specialRegex      = regexp.MustCompile(`[@#$%&!]`)
	whitespaceRegex   = regexp.MustCompile(`\s`)
	tenDigitsRegex    = regexp.MustCompile(`^\d{10}$`)
	disposableDomains = []string{"tempmail.com", "throwaway.email", "10minutemail.com"}
	blockedFragments  = []string{"password", "admin", "123456"}
)

// ValidationResult represents the result of validating a form. Errors maps a
// field name to the message key of its first failing rule.
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  map[string]string{},
	}
}

// AddError records a failing field, replacing any earlier key for it
func (vr *ValidationResult) AddError(field, key string) {
	vr.IsValid = false
	vr.Errors[field] = key
}

// addIf records key for field when key is not empty
func (vr *ValidationResult) addIf(field, key string) {
	if key != "" {
		vr.AddError(field, key)
	}
}

// Localize resolves every message key with translate
func (vr *ValidationResult) Localize(translate func(key string) string) map[string]string {
	out := make(map[string]string, len(vr.Errors))
	for field, key := range vr.Errors {
		out[field] = translate(key)
	}
	return out
}

// ValidatePhoneNumber checks a 10 digit phone identifier
func ValidatePhoneNumber(phone string) string {
	if phone == "" {
		return MsgPhoneRequired
	}
	if !digitsRegex.MatchString(phone) || len(phone) != PhoneDigits {
		return MsgPhoneTenDigits
	}
	return ""
}

// ValidateEmailAddress checks the email format and rejects disposable domains
func ValidateEmailAddress(email string) string {
	if email == "" {
		return MsgEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return MsgEmailInvalid
	}
	domain := strings.SplitN(email, "@", 2)[1]
	for _, d := range disposableDomains {
		if domain == d {
			return MsgEmailInvalid
		}
	}
	return ""
}

// ValidateIdentifier validates the identifier for the chosen input method
func ValidateIdentifier(method models.InputMethod, identifier string) string {
	if method == models.InputMethodEmail {
		return ValidateEmailAddress(identifier)
	}
	return ValidatePhoneNumber(identifier)
}

// CheckPassword evaluates the seven composition rules
func CheckPassword(pwd string) models.PasswordValidation {
	length := utf8.RuneCountInString(pwd)
	return models.PasswordValidation{
		MinLength: length >= PasswordMinLength,
		MaxLength: length <= PasswordMaxLength,
		Uppercase: uppercaseRegex.MatchString(pwd),
		Lowercase: lowercaseRegex.MatchString(pwd),
		Number:    numberRegex.MatchString(pwd),
		Special:   specialRegex.MatchString(pwd),
		NoSpaces:  !whitespaceRegex.MatchString(pwd),
	}
}

// IsBlockedPassword reports whether the password contains a common fragment
// or the local part of the identifier it is registered with.
func IsBlockedPassword(pwd, identifier string) bool {
	lower := strings.ToLower(pwd)
	for _, fragment := range blockedFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	if identifier == "" {
		return false
	}
	local := strings.Split(strings.ToLower(identifier), "@")[0]
	return local != "" && strings.Contains(lower, local)
}

// ValidatePassword applies the composition rules and the blocklist
func ValidatePassword(pwd, identifier string) string {
	if pwd == "" {
		return MsgRequired
	}
	if !CheckPassword(pwd).AllPassed() || IsBlockedPassword(pwd, identifier) {
		return MsgPasswordRequirements
	}
	return ""
}

// StrengthOf maps the number of passing rules to a strength label
func StrengthOf(v models.PasswordValidation) models.PasswordStrength {
	switch passed := v.Passed(); {
	case passed <= 3:
		return models.PasswordStrengthWeak
	case passed <= 5:
		return models.PasswordStrengthMedium
	default:
		return models.PasswordStrengthStrong
	}
}

// ValidateName checks a person name
func ValidateName(name string) string {
	if name == "" {
		return MsgRequired
	}
	if utf8.RuneCountInString(name) < NameMinLength {
		return MsgNameMinLength
	}
	if !nameRegex.MatchString(name) {
		return MsgNameAlphabetic
	}
	return ""
}

// ValidateAge checks the age entered as text
func ValidateAge(age string) string {
	if age == "" {
		return MsgAgeRequired
	}
	n, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		return MsgAgeNumber
	}
	if n < MinAge || n > MaxAge {
		return MsgAgeRange
	}
	return ""
}

// ValidatePincode checks a 6 digit postal code
func ValidatePincode(pin string) string {
	if pin == "" {
		return MsgPincodeRequired
	}
	if len(pin) != PincodeDigits || !digitsRegex.MatchString(pin) {
		return MsgPincodeSixDigits
	}
	return ""
}

// ValidateEmergencyPhone checks an emergency contact number
func ValidateEmergencyPhone(phone string) string {
	if phone == "" {
		return MsgContactPhoneRequired
	}
	if !tenDigitsRegex.MatchString(phone) {
		return MsgContactPhoneDigits
	}
	return ""
}

// ValidateBusinessName checks the name of an offered service
func ValidateBusinessName(name string) string {
	if name == "" {
		return MsgBusinessNameRequired
	}
	if utf8.RuneCountInString(name) < BusinessNameMinLength {
		return MsgBusinessNameMinLength
	}
	return ""
}

// ValidateServiceDescription limits the optional service description
func ValidateServiceDescription(desc string) string {
	if utf8.RuneCountInString(desc) > ServiceDescriptionLimit {
		return MsgDescriptionMaxLength
	}
	return ""
}

// ValidateHelpDescription checks the description of a help request or offer
func ValidateHelpDescription(desc string) string {
	if desc == "" {
		return MsgRequired
	}
	if utf8.RuneCountInString(desc) < HelpDescriptionMin {
		return MsgHelpDescMinLength
	}
	return ""
}

// ValidateCredentials validates the login or signup form
func ValidateCredentials(method models.InputMethod, identifier, password string) *ValidationResult {
	result := NewValidationResult()
	result.addIf("phoneOrEmail", ValidateIdentifier(method, identifier))
	result.addIf("password", ValidatePassword(password, identifier))
	return result
}

// ValidateProfile validates the profile completion form
func ValidateProfile(form models.ProfileForm) *ValidationResult {
	result := NewValidationResult()

	result.addIf("firstName", ValidateName(form.FirstName))
	result.addIf("lastName", ValidateName(form.LastName))
	result.addIf("age", ValidateAge(form.Age))
	if !models.IsValidGender(form.Gender) {
		result.AddError("gender", MsgGenderInvalid)
	}

	if form.Address.HouseNo == "" {
		result.AddError("houseNo", MsgHouseNoRequired)
	}
	if form.Address.Street == "" {
		result.AddError("street", MsgStreetRequired)
	}
	if form.Address.Area == "" {
		result.AddError("area", MsgAreaRequired)
	}
	if form.Address.Ward == "" {
		result.AddError("ward", MsgWardRequired)
	}
	if form.Address.City == "" {
		result.AddError("city", MsgCityRequired)
	}
	result.addIf("pincode", ValidatePincode(form.Address.Pincode))

	validateContacts(result, form.EmergencyContacts)

	if form.ServicesProvided {
		if form.ServiceType == "" {
			result.AddError("serviceType", MsgServiceTypeRequired)
		}
		result.addIf("businessName", ValidateBusinessName(form.BusinessName))
		if form.ServicePhone == "" {
			result.AddError("servicePhone", MsgPhoneRequired)
		} else if !tenDigitsRegex.MatchString(form.ServicePhone) {
			result.AddError("servicePhone", MsgServicePhoneDigits)
		}
		result.addIf("serviceDescription", ValidateServiceDescription(form.ServiceDescription))
	}

	return result
}

// validateContacts requires one complete row; once there is one, every
// touched row is validated field by field.
func validateContacts(result *ValidationResult, contacts []models.EmergencyContact) {
	complete := 0
	for _, c := range contacts {
		if c.IsComplete() {
			complete++
		}
	}
	if complete == 0 {
		result.AddError("emergencyContacts", MsgContactsRequired)
		return
	}

	for i, c := range contacts {
		if c.IsEmpty() {
			continue
		}
		result.addIf(fmt.Sprintf("contact_%d_name", i), ValidateName(c.Name))
		result.addIf(fmt.Sprintf("contact_%d_phone", i), ValidateEmergencyPhone(c.Phone))
		if c.Relation == "" {
			result.AddError(fmt.Sprintf("contact_%d_relation", i), MsgRelationRequired)
		}
	}
}

// ValidateNeedHelp validates a help request
func ValidateNeedHelp(form models.NeedHelpForm) *ValidationResult {
	result := NewValidationResult()
	if form.HelpType == "" {
		result.AddError("helpType", MsgRequired)
	}
	result.addIf("description", ValidateHelpDescription(form.Description))
	return result
}

// ValidateOfferHelp validates a help offer
func ValidateOfferHelp(form models.OfferHelpForm) *ValidationResult {
	result := NewValidationResult()
	if form.HelpCategory == "" {
		result.AddError("helpCategory", MsgRequired)
	}
	result.addIf("description", ValidateHelpDescription(form.Description))
	if !form.Consent {
		result.AddError("consent", MsgConsentRequired)
	}
	return result
}
