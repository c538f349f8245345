package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/i18n"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/screens"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request. Fields carries the
// localized message of each invalid form field; Blocking marks notices the
// client must show as a modal.
type ErrorResponse struct {
	Error    string            `json:"error"`
	Code     string            `json:"code,omitempty"`
	Message  string            `json:"message,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Blocking bool              `json:"blocking,omitempty"`
}

// SuccessResponse acknowledges a request without a body of its own
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports the state of the service dependencies
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

type errorMapping struct {
	err        error
	status     int
	code       string
	messageKey string
}

// errorMappings is checked in order with errors.Is
var errorMappings = []errorMapping{
	{models.ErrResendLimitReached, http.StatusTooManyRequests, "resend_limit_reached", "otp.maxResendReached"},
	{models.ErrResendNotAvailable, http.StatusConflict, "resend_not_available", "otp.resendNotAvailable"},
	{models.ErrIncompleteCode, http.StatusBadRequest, "incomplete_code", "otp.incomplete"},
	{models.ErrInvalidCode, http.StatusUnauthorized, "invalid_code", "otp.invalid"},
	{models.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials", ""},
	{models.ErrAuthBackendUnavailable, http.StatusServiceUnavailable, "auth_backend_unavailable", "common.error"},

	{models.ErrSessionNotFound, http.StatusNotFound, "session_not_found", ""},
	{models.ErrPollNotFound, http.StatusNotFound, "poll_not_found", ""},
	{models.ErrEventNotFound, http.StatusNotFound, "event_not_found", "event.notFound"},
	{models.ErrNoticeNotFound, http.StatusNotFound, "notice_not_found", "notice.notFound"},

	{models.ErrWrongScreen, http.StatusConflict, "wrong_screen", ""},
	{models.ErrSessionClosed, http.StatusConflict, "session_closed", ""},
	{models.ErrNoBackTarget, http.StatusConflict, "no_back_target", ""},
	{models.ErrNoChallenge, http.StatusConflict, "no_challenge", ""},
	{models.ErrChallengeState, http.StatusConflict, "challenge_state", ""},
	{models.ErrPollClosed, http.StatusConflict, "poll_closed", ""},
	{models.ErrAlreadyVoted, http.StatusConflict, "already_voted", ""},
	{models.ErrAlreadyJoined, http.StatusConflict, "already_joined", ""},
	{models.ErrNoEventSelected, http.StatusConflict, "no_event_selected", ""},

	{models.ErrInvalidScreen, http.StatusBadRequest, "invalid_screen", ""},
	{models.ErrInvalidLanguage, http.StatusBadRequest, "invalid_language", ""},
	{models.ErrInvalidInputMethod, http.StatusBadRequest, "invalid_input_method", ""},
	{models.ErrInvalidCellIndex, http.StatusBadRequest, "invalid_cell_index", ""},
	{models.ErrInvalidDigit, http.StatusBadRequest, "invalid_digit", ""},
	{models.ErrInvalidOption, http.StatusBadRequest, "invalid_option", ""},
	{models.ErrConfirmationNeeded, http.StatusBadRequest, "confirmation_required", ""},
}

// errorBody maps err to its status and response body in lang
func errorBody(lang models.Language, err error) (int, ErrorResponse) {
	if result, ok := screens.IsValidationError(err); ok {
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:  models.ErrValidationFailed.Error(),
			Code:   "validation_failed",
			Fields: result.Localize(i18n.For(lang)),
		}
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.err) {
			continue
		}
		body := ErrorResponse{Error: err.Error(), Code: m.code}
		if m.messageKey != "" {
			body.Message = i18n.T(lang, m.messageKey)
		}
		body.Blocking = m.status == http.StatusTooManyRequests
		return m.status, body
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error:   "internal error",
		Code:    "internal",
		Message: i18n.T(lang, "common.error"),
	}
}

// writeError responds with the mapped error. Unmapped errors are logged,
// since the client only sees a generic message for them.
func writeError(c *gin.Context, lang models.Language, err error) {
	status, body := errorBody(lang, err)
	if status == http.StatusInternalServerError {
		observability.Logger().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(status, body)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  "bad_request",
	})
}
