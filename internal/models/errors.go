package models

import "errors"

// Session and navigation errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
	ErrNoBackTarget    = errors.New("screen has no back target")
	ErrInvalidScreen   = errors.New("invalid screen")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrWrongScreen     = errors.New("action not available on current screen")
)

// OTP challenge errors
var (
	ErrNoChallenge            = errors.New("no otp challenge in progress")
	ErrChallengeState         = errors.New("otp challenge is not accepting input")
	ErrInvalidCellIndex       = errors.New("otp cell index out of range")
	ErrInvalidDigit           = errors.New("otp cell accepts a single digit")
	ErrIncompleteCode         = errors.New("otp code is incomplete")
	ErrResendNotAvailable     = errors.New("otp resend not available yet")
	ErrResendLimitReached     = errors.New("maximum resend attempts reached")
	ErrInvalidCode            = errors.New("invalid otp code")
	ErrInvalidInputMethod     = errors.New("invalid input method")
	ErrValidationFailed       = errors.New("validation failed")
	ErrAuthBackendUnavailable = errors.New("auth backend unavailable")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

// Catalog and community errors
var (
	ErrPollNotFound       = errors.New("poll not found")
	ErrPollClosed         = errors.New("poll is not active")
	ErrAlreadyVoted       = errors.New("already voted in this poll")
	ErrInvalidOption      = errors.New("invalid poll option")
	ErrEventNotFound      = errors.New("event not found")
	ErrNoticeNotFound     = errors.New("notice not found")
	ErrAlreadyJoined      = errors.New("already joined this event")
	ErrNoEventSelected    = errors.New("no event selected")
	ErrConfirmationNeeded = errors.New("confirmation required")
)
