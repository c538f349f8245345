package utils

import (
	"strings"
	"testing"

	"github.com/myarea/app-myarea/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationResult(t *testing.T) {
	result := NewValidationResult()

	require.NotNil(t, result)
	assert.True(t, result.IsValid)
	assert.NotNil(t, result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidationResult_AddError(t *testing.T) {
	result := NewValidationResult()

	result.AddError("test_field", "first")
	assert.False(t, result.IsValid)
	assert.Equal(t, "first", result.Errors["test_field"])

	result.AddError("test_field", "second")
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, "second", result.Errors["test_field"])
}

func TestValidationResult_Localize(t *testing.T) {
	result := NewValidationResult()
	result.AddError("pincode", MsgPincodeSixDigits)

	localized := result.Localize(func(key string) string { return "<" + key + ">" })

	assert.Equal(t, map[string]string{"pincode": "<validation.pincodeSixDigits>"}, localized)
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"empty", "", MsgPhoneRequired},
		{"non digits", "98765abcde", MsgPhoneTenDigits},
		{"too short", "987654321", MsgPhoneTenDigits},
		{"too long", "98765432101", MsgPhoneTenDigits},
		{"with plus", "+919876543210", MsgPhoneTenDigits},
		{"valid", "9876543210", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhoneNumber(tt.phone))
		})
	}
}

func TestValidateEmailAddress(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"empty", "", MsgEmailRequired},
		{"missing at", "user.example.com", MsgEmailInvalid},
		{"missing dot", "user@example", MsgEmailInvalid},
		{"space", "us er@example.com", MsgEmailInvalid},
		{"tempmail", "user@tempmail.com", MsgEmailInvalid},
		{"throwaway", "user@throwaway.email", MsgEmailInvalid},
		{"10minutemail", "user@10minutemail.com", MsgEmailInvalid},
		{"valid", "resident@myarea.gov.in", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmailAddress(tt.email))
		})
	}
}

func TestCheckPassword_EachRuleFlipsIndependently(t *testing.T) {
	all := CheckPassword("Secure#Pass1")
	require.True(t, all.AllPassed())

	tests := []struct {
		name     string
		password string
		failed   func(models.PasswordValidation) bool
	}{
		{"min length", "Se#cur1", func(v models.PasswordValidation) bool { return !v.MinLength }},
		{"max length", "Secure#Pass1" + strings.Repeat("x", 9), func(v models.PasswordValidation) bool { return !v.MaxLength }},
		{"uppercase", "secure#pass1", func(v models.PasswordValidation) bool { return !v.Uppercase }},
		{"lowercase", "SECURE#PASS1", func(v models.PasswordValidation) bool { return !v.Lowercase }},
		{"number", "Secure#Passx", func(v models.PasswordValidation) bool { return !v.Number }},
		{"special", "SecurexPass1", func(v models.PasswordValidation) bool { return !v.Special }},
		{"no spaces", "Secure# Pass1", func(v models.PasswordValidation) bool { return !v.NoSpaces }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := CheckPassword(tt.password)
			assert.True(t, tt.failed(v))
			assert.Equal(t, 6, v.Passed(), "only one rule should fail")
			assert.Equal(t, MsgPasswordRequirements, ValidatePassword(tt.password, ""))
		})
	}
}

func TestCheckPassword_SpecialCharacterSet(t *testing.T) {
	for _, c := range []string{"@", "#", "$", "%", "&", "!"} {
		assert.True(t, CheckPassword("a"+c).Special, c)
	}
	for _, c := range []string{"*", "^", "-", "_", "?"} {
		assert.False(t, CheckPassword("a"+c).Special, c)
	}
}

func TestValidatePassword_Blocklist(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		identifier string
		want       string
	}{
		{"empty", "", "", MsgRequired},
		{"valid", "Secure#Pass1", "9876543210", ""},
		{"contains password", "MyPassword#1", "", MsgPasswordRequirements},
		{"contains admin", "SuperAdmin#1", "", MsgPasswordRequirements},
		{"contains 123456", "Ab#1234567", "", MsgPasswordRequirements},
		{"contains email local part", "Priya#2024x", "priya@example.com", MsgPasswordRequirements},
		{"local part case insensitive", "PRIYA#2024x", "Priya@Example.com", MsgPasswordRequirements},
		{"contains phone", "Ab#9876543210", "9876543210", MsgPasswordRequirements},
		{"other email local part", "Secure#Pass1", "priya@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password, tt.identifier))
		})
	}
}

func TestStrengthOf(t *testing.T) {
	tests := []struct {
		passed int
		want   models.PasswordStrength
	}{
		{0, models.PasswordStrengthWeak},
		{3, models.PasswordStrengthWeak},
		{4, models.PasswordStrengthMedium},
		{5, models.PasswordStrengthMedium},
		{6, models.PasswordStrengthStrong},
		{7, models.PasswordStrengthStrong},
	}

	for _, tt := range tests {
		flags := make([]bool, 7)
		for i := 0; i < tt.passed; i++ {
			flags[i] = true
		}
		v := models.PasswordValidation{
			MinLength: flags[0], MaxLength: flags[1], Uppercase: flags[2], Lowercase: flags[3],
			Number: flags[4], Special: flags[5], NoSpaces: flags[6],
		}
		assert.Equal(t, tt.want, StrengthOf(v), "passed=%d", tt.passed)
	}
}

func TestStrengthOf_IgnoresBlocklist(t *testing.T) {
	v := CheckPassword("Admin#Pass1")

	assert.Equal(t, models.PasswordStrengthStrong, StrengthOf(v))
	assert.Equal(t, MsgPasswordRequirements, ValidatePassword("Admin#Pass1", ""))
}

func TestValidateName(t *testing.T) {
	assert.Equal(t, MsgRequired, ValidateName(""))
	assert.Equal(t, MsgNameMinLength, ValidateName("A"))
	assert.Equal(t, MsgNameAlphabetic, ValidateName("Priya2"))
	assert.Equal(t, "", ValidateName("Priya Devi"))
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		age  string
		want string
	}{
		{"", MsgAgeRequired},
		{"abc", MsgAgeNumber},
		{"17", MsgAgeRange},
		{"18", ""},
		{"100", ""},
		{"101", MsgAgeRange},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateAge(tt.age), "age=%q", tt.age)
	}
}

func TestValidatePincode(t *testing.T) {
	assert.Equal(t, MsgPincodeRequired, ValidatePincode(""))
	assert.Equal(t, MsgPincodeSixDigits, ValidatePincode("60000"))
	assert.Equal(t, MsgPincodeSixDigits, ValidatePincode("60000a"))
	assert.Equal(t, MsgPincodeSixDigits, ValidatePincode("6000011"))
	assert.Equal(t, "", ValidatePincode("600001"))
}

func TestValidateDescriptions(t *testing.T) {
	assert.Equal(t, "", ValidateServiceDescription(""))
	assert.Equal(t, "", ValidateServiceDescription(strings.Repeat("a", 250)))
	assert.Equal(t, MsgDescriptionMaxLength, ValidateServiceDescription(strings.Repeat("a", 251)))

	assert.Equal(t, MsgRequired, ValidateHelpDescription(""))
	assert.Equal(t, MsgHelpDescMinLength, ValidateHelpDescription("too short"))
	assert.Equal(t, "", ValidateHelpDescription("need a ride"))
}

func TestValidateCredentials(t *testing.T) {
	result := ValidateCredentials(models.InputMethodPhone, "98765", "weak")
	assert.False(t, result.IsValid)
	assert.Equal(t, MsgPhoneTenDigits, result.Errors["phoneOrEmail"])
	assert.Equal(t, MsgPasswordRequirements, result.Errors["password"])

	result = ValidateCredentials(models.InputMethodEmail, "resident@myarea.gov.in", "Secure#Pass1")
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func validProfileForm() models.ProfileForm {
	return models.ProfileForm{
		FirstName: "Priya",
		LastName:  "Devi",
		Age:       "34",
		Gender:    models.GenderFemale,
		Address: models.Address{
			HouseNo: "12B",
			Street:  "Gandhi Street",
			Area:    "Anna Nagar",
			Ward:    "Ward 12",
			City:    "Chennai",
			Pincode: "600001",
		},
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Ravi Kumar", Relation: "Spouse", Phone: "9876543210"},
		},
	}
}

func TestValidateProfile_Valid(t *testing.T) {
	result := ValidateProfile(validProfileForm())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateProfile_PincodeLength(t *testing.T) {
	form := validProfileForm()
	form.Address.Pincode = "60000"

	result := ValidateProfile(form)

	assert.False(t, result.IsValid)
	assert.Equal(t, map[string]string{"pincode": MsgPincodeSixDigits}, result.Errors)
}

func TestValidateProfile_RequiresOneCompleteContact(t *testing.T) {
	form := validProfileForm()
	form.EmergencyContacts = []models.EmergencyContact{
		{Name: "Ravi Kumar"},
		{},
	}

	result := ValidateProfile(form)

	assert.False(t, result.IsValid)
	assert.Equal(t, MsgContactsRequired, result.Errors["emergencyContacts"])
	assert.NotContains(t, result.Errors, "contact_0_phone")
}

func TestValidateProfile_ValidatesTouchedRows(t *testing.T) {
	form := validProfileForm()
	form.EmergencyContacts = append(form.EmergencyContacts,
		models.EmergencyContact{},
		models.EmergencyContact{Name: "R", Phone: "12345"},
	)

	result := ValidateProfile(form)

	assert.False(t, result.IsValid)
	assert.NotContains(t, result.Errors, "emergencyContacts")
	assert.NotContains(t, result.Errors, "contact_1_name")
	assert.Equal(t, MsgNameMinLength, result.Errors["contact_2_name"])
	assert.Equal(t, MsgContactPhoneDigits, result.Errors["contact_2_phone"])
	assert.Equal(t, MsgRelationRequired, result.Errors["contact_2_relation"])
}

func TestValidateProfile_AddressAndServices(t *testing.T) {
	form := validProfileForm()
	form.Address = models.Address{}
	form.Gender = "unknown"
	form.ServicesProvided = true
	form.BusinessName = "AB"
	form.ServicePhone = "12345"
	form.ServiceDescription = strings.Repeat("x", 251)

	result := ValidateProfile(form)

	assert.Equal(t, MsgHouseNoRequired, result.Errors["houseNo"])
	assert.Equal(t, MsgStreetRequired, result.Errors["street"])
	assert.Equal(t, MsgAreaRequired, result.Errors["area"])
	assert.Equal(t, MsgWardRequired, result.Errors["ward"])
	assert.Equal(t, MsgCityRequired, result.Errors["city"])
	assert.Equal(t, MsgPincodeRequired, result.Errors["pincode"])
	assert.Equal(t, MsgGenderInvalid, result.Errors["gender"])
	assert.Equal(t, MsgServiceTypeRequired, result.Errors["serviceType"])
	assert.Equal(t, MsgBusinessNameMinLength, result.Errors["businessName"])
	assert.Equal(t, MsgServicePhoneDigits, result.Errors["servicePhone"])
	assert.Equal(t, MsgDescriptionMaxLength, result.Errors["serviceDescription"])
}

func TestValidateProfile_ServiceFieldsIgnoredWhenNotOffered(t *testing.T) {
	form := validProfileForm()
	form.BusinessName = "A"

	assert.True(t, ValidateProfile(form).IsValid)
}

func TestValidateNeedHelp(t *testing.T) {
	result := ValidateNeedHelp(models.NeedHelpForm{})
	assert.Equal(t, map[string]string{"helpType": MsgRequired, "description": MsgRequired}, result.Errors)

	result = ValidateNeedHelp(models.NeedHelpForm{HelpType: "Groceries", Description: "short"})
	assert.Equal(t, map[string]string{"description": MsgHelpDescMinLength}, result.Errors)

	result = ValidateNeedHelp(models.NeedHelpForm{HelpType: "Groceries", Description: "Need groceries for two weeks"})
	assert.True(t, result.IsValid)
}

func TestValidateOfferHelp(t *testing.T) {
	result := ValidateOfferHelp(models.OfferHelpForm{HelpCategory: "Pet Care", Description: "Can walk dogs on weekends"})
	assert.Equal(t, map[string]string{"consent": MsgConsentRequired}, result.Errors)

	result = ValidateOfferHelp(models.OfferHelpForm{HelpCategory: "Pet Care", Description: "Can walk dogs on weekends", Consent: true})
	assert.True(t, result.IsValid)
}
