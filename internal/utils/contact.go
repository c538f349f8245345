package utils

import (
	"net/url"
	"strings"
)

// TelURI builds a tel: link for a displayed phone number
func TelURI(number string) string {
	replacer := strings.NewReplacer(" ", "", "\t", "")
	return "tel:" + replacer.Replace(number)
}

// MailtoURI builds a mailto: link with an optional subject. Spaces are
// written as %20 since mail clients do not decode '+' in hfields.
func MailtoURI(address, subject string) string {
	uri := "mailto:" + address
	if subject != "" {
		q := url.Values{"subject": {subject}}.Encode()
		uri += "?" + strings.ReplaceAll(q, "+", "%20")
	}
	return uri
}
