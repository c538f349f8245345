// Package i18n resolves message keys into English, Tamil or Hindi text.
package i18n

import (
	"github.com/myarea/app-myarea/internal/models"
	"golang.org/x/text/language"
)

var dictionaries = map[models.Language]map[string]string{
	models.LanguageEnglish: english,
	models.LanguageTamil:   tamil,
	models.LanguageHindi:   hindi,
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Tamil,
	language.Hindi,
})

// T returns the text for key in lang, falling back to English and then to the key itself
func T(lang models.Language, key string) string {
	if dict, ok := dictionaries[lang]; ok {
		if text, ok := dict[key]; ok {
			return text
		}
	}
	if text, ok := english[key]; ok {
		return text
	}
	return key
}

// For returns a translate function bound to lang
func For(lang models.Language) func(key string) string {
	return func(key string) string {
		return T(lang, key)
	}
}

// Dictionary returns every key resolved for lang, including English fallbacks
func Dictionary(lang models.Language) map[string]string {
	out := make(map[string]string, len(english))
	for key := range english {
		out[key] = T(lang, key)
	}
	return out
}

// Has reports whether key exists in the English dictionary
func Has(key string) bool {
	_, ok := english[key]
	return ok
}

// MatchAcceptLanguage picks the best supported language for an Accept-Language header
func MatchAcceptLanguage(header string) models.Language {
	if header == "" {
		return models.DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return models.DefaultLanguage
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return models.DefaultLanguage
	}
	return models.SupportedLanguages()[index]
}
