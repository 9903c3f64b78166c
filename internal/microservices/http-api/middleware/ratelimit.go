package middleware

import (
	"placehub/internal/apperror"
	"placehub/internal/metrics"
	"placehub/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects callers exceeding the limiter with 429, keyed by client IP.
// A nil limiter lets everything through.
func RateLimit(limiter *ratelimit.KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		metrics.RecordRateLimited(c.GetString(ContextProcedure))
		AbortWithError(c, apperror.ErrRateLimited)
	}
}
