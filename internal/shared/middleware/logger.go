package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"library-admin/pkg/logger"
)

// Logger ghi access log qua cùng zerolog facade với phần còn lại
// của gateway. Path được giữ lại trước c.Next() vì handler có thể
// rewrite request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP request", map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		})
	}
}
