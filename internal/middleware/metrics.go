package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/observability"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency per matched route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.ObserveHTTPRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
