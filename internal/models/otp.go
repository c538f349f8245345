package models

// OTP challenge configuration
const (
	OTPCodeLength            = 6
	OTPResendSeconds         = 30
	OTPMaxResends            = 3
	OTPAutoSubmitDelayMillis = 300
)

// OTPState is the phase of the OTP sub-flow on the credential screens
type OTPState string

const (
	OTPStateComposing    OTPState = "composing"
	OTPStateAwaitingCode OTPState = "awaiting_code"
	OTPStateVerifying    OTPState = "verifying"
	OTPStateVerified     OTPState = "verified"
)

// OTPView is the client-facing snapshot of an OTP challenge
type OTPView struct {
	State     OTPState `json:"state"`
	Cells     []string `json:"cells"`
	Focus     int      `json:"focus"`
	Timer     int      `json:"timer"`
	Attempts  int      `json:"attempts"`
	CanResend bool     `json:"canResend"`
}
