package observability

import (
	"strings"

	"github.com/myarea/app-myarea/internal/logging"
	"go.uber.org/zap"
)

// Logger returns the global logger instance
func Logger() *zap.Logger {
	return logging.Logger
}

// MaskPhone keeps the last four digits of a phone number
func MaskPhone(phone string) string {
	if len(phone) < 4 {
		return "******"
	}
	return "******" + phone[len(phone)-4:]
}

// MaskEmail keeps the first character of the local part and the domain
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// MaskIdentifier masks a login identifier, email or phone
func MaskIdentifier(identifier string) string {
	if strings.Contains(identifier, "@") {
		return MaskEmail(identifier)
	}
	return MaskPhone(identifier)
}

// MaskSensitiveData masks sensitive data in a map
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	sensitiveFields := []string{"password", "code", "phone", "phoneOrEmail", "email"}
	masked := make(map[string]interface{})

	for k, v := range data {
		if contains(sensitiveFields, k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
