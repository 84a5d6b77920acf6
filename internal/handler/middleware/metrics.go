package middleware

import (
	"time"

	"shareit/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records count and latency per route template, so
// /bookings/1 and /bookings/2 share a series.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
