package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/session"
	"go.uber.org/zap"
)

const sessionKey = "session"

// SessionLoader resolves the :id path parameter to a live session. Unknown
// ids are rejected with 404 before any handler runs.
func SessionLoader(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
			return
		}

		st, err := manager.Get(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, models.ErrSessionNotFound) {
				observability.Logger().Error("failed to load session", zap.String("session_id", id), zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": models.ErrSessionNotFound.Error()})
			return
		}

		c.Set(sessionKey, st)
		c.Next()
	}
}

// SessionFrom returns the session loaded by SessionLoader
func SessionFrom(c *gin.Context) (*session.State, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	st, ok := v.(*session.State)
	return st, ok
}
