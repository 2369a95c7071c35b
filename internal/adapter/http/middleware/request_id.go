package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-Id"
	ctxRequestID    = "request_id"
)

// RequestID propagates the caller's X-Request-Id or generates a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}
