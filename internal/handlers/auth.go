package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/session"
)

// ChooseAuth godoc
// @Summary Choose login or signup
// @Tags auth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.AuthChoiceRequest true "login or signup"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/auth/choice [post]
func (h *SessionHandlers) ChooseAuth(c *gin.Context) {
	var req models.AuthChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.ChooseAuth(ctx, st, req.Flow)
	})
}

// SetInputMethod godoc
// @Summary Switch between phone and email
// @Tags auth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.InputMethodRequest true "phone or email"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/auth/method [put]
func (h *SessionHandlers) SetInputMethod(c *gin.Context) {
	var req models.InputMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.SetInputMethod(ctx, st, req.InputMethod)
	})
}

// UpdatePassword godoc
// @Summary Live password feedback
// @Description Records the password being typed on the credential screen and returns its checklist and strength
// @Tags auth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.PasswordCheckRequest true "Password and identifier"
// @Success 200 {object} models.PasswordCheckResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/auth/password [post]
func (h *SessionHandlers) UpdatePassword(c *gin.Context) {
	var req models.PasswordCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	st, ok := current(c)
	if !ok {
		return
	}
	resp, err := h.app.UpdatePassword(c.Request.Context(), st, req)
	if err != nil {
		writeError(c, st.Snapshot().Language, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SendOTP godoc
// @Summary Submit credentials and send a code
// @Description Validates the credentials and starts the one-time code challenge with its resend countdown
// @Tags auth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.SendOTPRequest true "Credentials"
// @Success 200 {object} screens.View
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /sessions/{id}/auth/otp/send [post]
func (h *SessionHandlers) SendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.SendOTP(ctx, st, req)
	})
}

// EnterDigit godoc
// @Summary Fill a code cell
// @Description Fills one cell. Completing all six schedules the auto-submit.
// @Tags auth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.OTPDigitRequest true "Cell index and digit"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/auth/otp/digit [post]
func (h *SessionHandlers) EnterDigit(c *gin.Context) {
	var req models.OTPDigitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.EnterDigit(ctx, st, req.Index, req.Value)
	})
}

// Backspace godoc
// @Summary Backspace on a code cell
// @Tags auth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.OTPBackspaceRequest true "Cell index"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/auth/otp/backspace [post]
func (h *SessionHandlers) Backspace(c *gin.Context) {
	var req models.OTPBackspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.Backspace(ctx, st, req.Index)
	})
}

// ResendOTP godoc
// @Summary Resend the code
// @Description Available once the countdown is over. Past the limit it answers 429 with a blocking notice.
// @Tags auth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /sessions/{id}/auth/otp/resend [post]
func (h *SessionHandlers) ResendOTP(c *gin.Context) {
	h.act(c, h.app.ResendOTP)
}

// VerifyOTP godoc
// @Summary Verify the code
// @Tags auth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/auth/otp/verify [post]
func (h *SessionHandlers) VerifyOTP(c *gin.Context) {
	h.act(c, h.app.VerifyOTP)
}

// CancelOTP godoc
// @Summary Leave code entry
// @Description Discards the challenge and its timers and returns to the credential form
// @Tags auth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/auth/otp/cancel [post]
func (h *SessionHandlers) CancelOTP(c *gin.Context) {
	h.act(c, h.app.CancelOTP)
}
