package middleware

import (
	"strconv"
	"time"

	"portfolio-contact/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency per route template. Unmatched paths
// (static files, 404s) share one label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
