package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veaveberg/qreate/pkg/log"
)

// Logger writes one structured entry per request. The level follows the
// response status.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		logFields := log.Fields{
			log.RequestIDKey: GetRequestID(c),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"query_length":   len(c.Request.URL.RawQuery),
			"status":         status,
			"latency_ms":     time.Since(start).Milliseconds(),
			"ip":             c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
			"response_size":  c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			logFields["errors"] = c.Errors.String()
		}

		switch {
		case status >= 500:
			log.Error(logFields, "Server error")
		case status >= 400:
			log.Warn(logFields, "Client error")
		default:
			log.Info(logFields, "Success")
		}
	}
}
