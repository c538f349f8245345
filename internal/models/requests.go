package models

// NavigateRequest asks the navigation controller to change screen
type NavigateRequest struct {
	Screen Screen           `json:"screen" binding:"required"`
	Params NavigationParams `json:"params"`
}

// LanguageRequest selects the UI language
type LanguageRequest struct {
	Language Language `json:"language" binding:"required"`
}

// PasswordCheckRequest asks for live password feedback
type PasswordCheckRequest struct {
	Password   string `json:"password"`
	Identifier string `json:"identifier"`
}

// PasswordCheckResponse carries the password checklist and strength
type PasswordCheckResponse struct {
	Validation PasswordValidation `json:"validation"`
	Strength   PasswordStrength   `json:"strength"`
	Valid      bool               `json:"valid"`
	Message    string             `json:"message,omitempty"`
}

// PhoneCheckRequest validates a phone identifier
type PhoneCheckRequest struct {
	Phone string `json:"phone"`
}

// PhoneCheckResponse returns the phone validation outcome
type PhoneCheckResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	E164    string `json:"e164,omitempty"`
}

// SendOTPRequest submits credentials on the login or signup screen
type SendOTPRequest struct {
	InputMethod InputMethod `json:"inputMethod"`
	Identifier  string      `json:"identifier"`
	Password    string      `json:"password"`
}

// OTPDigitRequest fills one OTP cell
type OTPDigitRequest struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// OTPBackspaceRequest reports a backspace key press on a cell
type OTPBackspaceRequest struct {
	Index int `json:"index"`
}

// VoteRequest casts a vote on a poll option
type VoteRequest struct {
	Option int `json:"option"`
}

// ConfirmRequest carries an explicit user confirmation
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// AuthChoiceRequest picks login or signup on the auth choice screen
type AuthChoiceRequest struct {
	Flow AuthFlow `json:"flow" binding:"required"`
}

// InputMethodRequest switches the credential form between phone and email
type InputMethodRequest struct {
	InputMethod InputMethod `json:"inputMethod" binding:"required"`
}

// NoticePDFResponse links the document of a notice
type NoticePDFResponse struct {
	URL string `json:"url"`
}
