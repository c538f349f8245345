package models

// PasswordValidation holds the result of each password composition rule
type PasswordValidation struct {
	MinLength bool `json:"minLength"`
	MaxLength bool `json:"maxLength"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Number    bool `json:"number"`
	Special   bool `json:"special"`
	NoSpaces  bool `json:"noSpaces"`
}

// Passed returns how many of the seven rules hold
func (v PasswordValidation) Passed() int {
	count := 0
	for _, ok := range []bool{v.MinLength, v.MaxLength, v.Uppercase, v.Lowercase, v.Number, v.Special, v.NoSpaces} {
		if ok {
			count++
		}
	}
	return count
}

// AllPassed reports whether every rule holds
func (v PasswordValidation) AllPassed() bool {
	return v.Passed() == 7
}

// PasswordStrength is the cosmetic strength label shown under the password field
type PasswordStrength string

const (
	PasswordStrengthWeak   PasswordStrength = "weak"
	PasswordStrengthMedium PasswordStrength = "medium"
	PasswordStrengthStrong PasswordStrength = "strong"
)

// InputMethod is how the user identifies on the credential screens
type InputMethod string

const (
	InputMethodPhone InputMethod = "phone"
	InputMethodEmail InputMethod = "email"
)

// IsValid reports whether m is a known input method
func (m InputMethod) IsValid() bool {
	return m == InputMethodPhone || m == InputMethodEmail
}
