package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTelURI(t *testing.T) {
	assert.Equal(t, "tel:100", TelURI("100"))
	assert.Equal(t, "tel:+919876543211", TelURI("+91 98765 43211"))
	assert.Equal(t, "tel:1800-123-4567", TelURI("1800-123-4567"))
}

func TestMailtoURI(t *testing.T) {
	assert.Equal(t, "mailto:support@myarea.gov.in", MailtoURI("support@myarea.gov.in", ""))
	assert.Equal(t, "mailto:support@myarea.gov.in?subject=Need%20help", MailtoURI("support@myarea.gov.in", "Need help"))
	assert.Equal(t, "mailto:support@myarea.gov.in?subject=Q%26A%3Dhelp%3Fnow", MailtoURI("support@myarea.gov.in", "Q&A=help?now"))
	assert.Equal(t, "mailto:support@myarea.gov.in?subject=1%2B1%20%23tag", MailtoURI("support@myarea.gov.in", "1+1 #tag"))
}
