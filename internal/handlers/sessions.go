package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/i18n"
	"github.com/myarea/app-myarea/internal/middleware"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/screens"
	"github.com/myarea/app-myarea/internal/session"
	"go.uber.org/zap"
)

// SessionHandlers serves the session lifecycle and every screen action
type SessionHandlers struct {
	manager *session.Manager
	app     *screens.App
}

// NewSessionHandlers creates the session handlers
func NewSessionHandlers(manager *session.Manager, app *screens.App) *SessionHandlers {
	return &SessionHandlers{manager: manager, app: app}
}

// current returns the session loaded by the middleware, answering 404 when
// there is none
func current(c *gin.Context) (*session.State, bool) {
	st, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: models.ErrSessionNotFound.Error(),
			Code:  "session_not_found",
		})
	}
	return st, ok
}

// act runs action on the request session and answers with the rendered
// screen, or with the mapped error in the session language
func (h *SessionHandlers) act(c *gin.Context, action func(ctx context.Context, st *session.State) error) {
	st, ok := current(c)
	if !ok {
		return
	}
	if err := action(c.Request.Context(), st); err != nil {
		writeError(c, st.Snapshot().Language, err)
		return
	}
	h.respondView(c, st, http.StatusOK)
}

func (h *SessionHandlers) respondView(c *gin.Context, st *session.State, status int) {
	view, err := h.app.Render(c.Request.Context(), st)
	if err != nil {
		writeError(c, models.DefaultLanguage, err)
		return
	}
	c.JSON(status, view)
}

// CreateSession godoc
// @Summary Create a session
// @Description Starts a client session on the language screen. The language matching Accept-Language is preselected.
// @Tags sessions
// @Produce json
// @Param Accept-Language header string false "Preferred languages"
// @Success 201 {object} screens.View
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandlers) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.manager.Create(ctx)
	if err != nil {
		writeError(c, models.DefaultLanguage, err)
		return
	}

	if lang := i18n.MatchAcceptLanguage(c.GetHeader("Accept-Language")); lang != models.DefaultLanguage {
		if err := h.app.PreferLanguage(ctx, st, lang); err != nil {
			observability.Logger().Warn("failed to preselect language",
				zap.String("session_id", st.ID()), zap.Error(err))
		}
	}
	h.respondView(c, st, http.StatusCreated)
}

// GetSession godoc
// @Summary Get session state
// @Description Returns the persisted state of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandlers) GetSession(c *gin.Context) {
	if st, ok := current(c); ok {
		c.JSON(http.StatusOK, st.Snapshot())
	}
}

// DeleteSession godoc
// @Summary Delete a session
// @Description Closes a session, stopping its timers, and drops its snapshot
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandlers) DeleteSession(c *gin.Context) {
	if err := h.manager.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, models.DefaultLanguage, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetScreen godoc
// @Summary Render the current screen
// @Description Returns the view of the current screen. Detail screens with an unknown id render not_found with a back target.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} screens.View
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/screen [get]
func (h *SessionHandlers) GetScreen(c *gin.Context) {
	if st, ok := current(c); ok {
		h.respondView(c, st, http.StatusOK)
	}
}

// Navigate godoc
// @Summary Navigate to a screen
// @Description Overwrites the given selector ids and changes screen. Unknown screens fall back to the language screen.
// @Tags navigation
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.NavigateRequest true "Target screen and params"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/navigate [post]
func (h *SessionHandlers) Navigate(c *gin.Context) {
	var req models.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.Navigate(ctx, st, req.Screen, req.Params)
	})
}

// Back godoc
// @Summary Go back
// @Description Moves to the fixed predecessor of the current screen
// @Tags navigation
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/back [post]
func (h *SessionHandlers) Back(c *gin.Context) {
	h.act(c, h.app.Back)
}

// SelectLanguage godoc
// @Summary Select the language
// @Description Stores the language chosen on the language screen and continues to the auth choice
// @Tags navigation
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param data body models.LanguageRequest true "Language code"
// @Success 200 {object} screens.View
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/language [put]
func (h *SessionHandlers) SelectLanguage(c *gin.Context) {
	var req models.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.act(c, func(ctx context.Context, st *session.State) error {
		return h.app.SelectLanguage(ctx, st, req.Language)
	})
}

// ChangeLanguage godoc
// @Summary Change the language
// @Description Opens the language screen from the profile settings
// @Tags profile
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} screens.View
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/profile/language [post]
func (h *SessionHandlers) ChangeLanguage(c *gin.Context) {
	h.act(c, h.app.ChangeLanguage)
}
