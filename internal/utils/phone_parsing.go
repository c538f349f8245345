package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region used for numbers entered without a country code
const DefaultRegion = "IN"

// PhoneComponents represents the parsed components of a phone number
type PhoneComponents struct {
	CountryCode string `json:"country_code"`
	National    string `json:"national"`
	E164        string `json:"e164"`
}

// ParsePhoneNumber parses a phone number, assuming India when no country code is given
func ParsePhoneNumber(phoneString string) (*PhoneComponents, error) {
	clean := strings.TrimSpace(phoneString)
	if clean == "" {
		return nil, fmt.Errorf("empty phone number")
	}

	num, err := phonenumbers.Parse(clean, DefaultRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("invalid phone number: %s", phoneString)
	}

	return &PhoneComponents{
		CountryCode: fmt.Sprintf("%d", num.GetCountryCode()),
		National:    phonenumbers.GetNationalSignificantNumber(num),
		E164:        phonenumbers.Format(num, phonenumbers.E164),
	}, nil
}

// NormalizeIdentifier returns the canonical form used to key an identity:
// E.164 for phone numbers and the lower-cased address for emails.
func NormalizeIdentifier(identifier string) string {
	if strings.Contains(identifier, "@") {
		return strings.ToLower(strings.TrimSpace(identifier))
	}
	components, err := ParsePhoneNumber(identifier)
	if err != nil {
		return strings.TrimSpace(identifier)
	}
	return components.E164
}
