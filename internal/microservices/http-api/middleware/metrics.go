package middleware

import (
	"time"

	"placehub/internal/metrics"

	"github.com/gin-gonic/gin"
)

// ContextProcedure holds the name of the procedure being served.
const ContextProcedure = "procedure"

// Metrics records call count and latency per procedure.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		c.Next()

		metrics.RecordProcedure(c.GetString(ContextProcedure), c.Writer.Status(), time.Since(start))
	}
}
