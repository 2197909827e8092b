package middleware

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/veaveberg/qreate/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

func newRequestID(t time.Time) (string, error) {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// RequestID reuses the caller's X-Request-ID or assigns a ULID, echoes it
// back and stores it on both the gin and the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID, _ = newRequestID(time.Now())
		}

		c.Set(log.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.RequestIDKey, requestID))

		c.Next()
	}
}

// GetRequestID returns the ID set by RequestID, or "unknown".
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(log.RequestIDKey); id != "" {
		return id
	}
	return "unknown"
}
