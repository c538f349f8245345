package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Buckets of clients idle
// for ten minutes are dropped. A non-positive rps disables limiting.
func RateLimiter(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiters := cache.New(10*time.Minute, 5*time.Minute)
	retryAfter := strconv.Itoa(int(math.Ceil(1 / rps)))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		var limiter *rate.Limiter
		if v, found := limiters.Get(ip); found {
			limiter = v.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			// Add loses to a concurrent first request from the same ip; use its bucket
			if err := limiters.Add(ip, limiter, cache.DefaultExpiration); err != nil {
				if v, found := limiters.Get(ip); found {
					limiter = v.(*rate.Limiter)
				}
			}
		}

		if !limiter.Allow() {
			observability.Logger().Debug("rate limit exceeded", zap.String("ip", ip))
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
			return
		}
		c.Next()
	}
}
