package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/observability"
	"github.com/gin-gonic/gin"
)

// Metrics returns Gin middleware for Prometheus instrumentation.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		c.Next()

		path := c.FullPath() // Route pattern, e.g. "/accounts/:accountID"
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		observability.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		observability.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	}
}
