package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/session"
)

// SubmitProfile godoc
// @Summary Complete the profile
// @Description Validates the profile form and submits it for verification
// @Tags profile
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.ProfileForm true "Profile form"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/profile [post]
func (h *SessionHandlers) SubmitProfile(c *gin.Context) {
	var form models.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.SubmitProfile(ctx, st, form)
	})
}

// ApproveVerification godoc
// @Summary Approve the pending verification
// @Tags profile
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/verification/approve [post]
func (h *SessionHandlers) ApproveVerification(c *gin.Context) {
	h.act(c, h.app.ApproveVerification)
}

// ContinueToHome godoc
// @Summary Continue to home
// @Tags profile
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/verification/continue [post]
func (h *SessionHandlers) ContinueToHome(c *gin.Context) {
	h.act(c, h.app.ContinueToHome)
}

// OpenAlert godoc
// @Summary Open an alert
// @Tags community
// @Produce json
// @Param id path string true "Session ID"
// @Param alertId path string true "Alert ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/alerts/{alertId}/open [post]
func (h *SessionHandlers) OpenAlert(c *gin.Context) {
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.OpenAlert(ctx, st, c.Param("alertId"))
	})
}

// OpenNotice godoc
// @Summary Open a notice
// @Tags community
// @Produce json
// @Param id path string true "Session ID"
// @Param noticeId path string true "Notice ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/notices/{noticeId}/open [post]
func (h *SessionHandlers) OpenNotice(c *gin.Context) {
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.OpenNotice(ctx, st, c.Param("noticeId"))
	})
}

// NoticePDF godoc
// @Summary Download the notice document
// @Tags community
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.NoticePDFResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/notice/pdf [get]
func (h *SessionHandlers) NoticePDF(c *gin.Context) {
	st, ok := current(c)
	if !ok {
		return
	}
	url, err := h.app.DownloadNoticePDF(c.Request.Context(), st)
	if err != nil {
		writeError(c, st.Snapshot().Language, err)
		return
	}
	c.JSON(http.StatusOK, models.NoticePDFResponse{URL: url})
}

// OpenService godoc
// @Summary Open a service provider
// @Tags community
// @Produce json
// @Param id path string true "Session ID"
// @Param serviceId path string true "Service ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/services/{serviceId}/open [post]
func (h *SessionHandlers) OpenService(c *gin.Context) {
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.OpenService(ctx, st, c.Param("serviceId"))
	})
}

// SelectEvent godoc
// @Summary Open a volunteer event
// @Tags community
// @Produce json
// @Param id path string true "Session ID"
// @Param eventId path string true "Event ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/events/{eventId}/select [post]
func (h *SessionHandlers) SelectEvent(c *gin.Context) {
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.SelectEvent(ctx, st, c.Param("eventId"))
	})
}

// JoinEvent godoc
// @Summary Join the selected event
// @Tags community
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} screens.View
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/events/join [post]
func (h *SessionHandlers) JoinEvent(c *gin.Context) {
	h.act(c, h.app.JoinEvent)
}

// SubmitNeedHelp godoc
// @Summary Ask for help
// @Tags community
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.NeedHelpForm true "Help request"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/help/need [post]
func (h *SessionHandlers) SubmitNeedHelp(c *gin.Context) {
	var form models.NeedHelpForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.SubmitNeedHelp(ctx, st, form)
	})
}

// SubmitOfferHelp godoc
// @Summary Offer help
// @Tags community
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.OfferHelpForm true "Help offer"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/help/offer [post]
func (h *SessionHandlers) SubmitOfferHelp(c *gin.Context) {
	var form models.OfferHelpForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.SubmitOfferHelp(ctx, st, form)
	})
}

// Vote godoc
// @Summary Vote in a poll
// @Tags community
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param pollId path string true "Poll ID"
// @Param data body models.VoteRequest true "Option index"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/polls/{pollId}/vote [post]
func (h *SessionHandlers) Vote(c *gin.Context) {
	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.Vote(ctx, st, c.Param("pollId"), req.Option)
	})
}

// SendSOS godoc
// @Summary Raise an SOS alert
// @Description Requires confirm=true
// @Tags community
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.ConfirmRequest true "Confirmation"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/sos [post]
func (h *SessionHandlers) SendSOS(c *gin.Context) {
	var req models.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.SendSOS(ctx, st, req.Confirm)
	})
}

// Logout godoc
// @Summary Log out
// @Description Requires confirm=true. Clears the session and returns to the language screen.
// @Tags profile
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.ConfirmRequest true "Confirmation"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/logout [post]
func (h *SessionHandlers) Logout(c *gin.Context) {
	var req models.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.Logout(ctx, st, req.Confirm)
	})
}
