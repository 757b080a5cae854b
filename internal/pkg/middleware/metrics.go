package middleware

import (
	"time"

	"community_api/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware 记录请求指标
// Unmatched routes are grouped under one label to keep cardinality bounded.
func MetricsMiddleware(m *metrics.MetricsCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start), c.Writer.Size())
	}
}
