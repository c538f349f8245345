package models

// Language is one of the supported UI languages
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTamil   Language = "ta"
	LanguageHindi   Language = "hi"
)

// DefaultLanguage is used until the user picks one
const DefaultLanguage = LanguageEnglish

// SupportedLanguages returns the languages offered on the selection screen
func SupportedLanguages() []Language {
	return []Language{LanguageEnglish, LanguageTamil, LanguageHindi}
}

// IsValid reports whether l is a supported language code
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageTamil, LanguageHindi:
		return true
	}
	return false
}

// NativeName returns the language name as shown on the selection screen
func (l Language) NativeName() string {
	switch l {
	case LanguageTamil:
		return "தமிழ்"
	case LanguageHindi:
		return "हिंदी"
	}
	return "English"
}
