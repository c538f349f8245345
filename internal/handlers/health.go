package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/redisclient"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthHandlers pings the optional backing stores
type HealthHandlers struct {
	mongo *mongo.Database
	redis *redisclient.Client
}

// NewHealthHandlers creates the health handlers. Either store may be nil
// when the service runs on its in-memory fallbacks.
func NewHealthHandlers(db *mongo.Database, redis *redisclient.Client) *HealthHandlers {
	return &HealthHandlers{mongo: db, redis: redis}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports the state of MongoDB and Redis. Stores that are not configured report "disabled".
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	ctx, span := observability.Tracer("handlers").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]string{"mongodb": "disabled", "redis": "disabled"},
	}

	if h.mongo != nil {
		health.Services["mongodb"] = "healthy"
		if err := h.mongo.Client().Ping(ctx, readpref.Primary()); err != nil {
			observability.Logger().Error("mongodb health check failed", zap.Error(err))
			health.Services["mongodb"] = "unhealthy"
			health.Status = "unhealthy"
		}
	}
	if h.redis != nil {
		health.Services["redis"] = "healthy"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			observability.Logger().Error("redis health check failed", zap.Error(err))
			health.Services["redis"] = "unhealthy"
			health.Status = "unhealthy"
		}
	}

	span.SetAttributes(attribute.String("health.status", health.Status))
	if health.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
