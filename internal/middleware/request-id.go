package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	ctxKeyRequestID = "request_id"
)

// RequestID tags every request with an id, minting one when the client did
// not send its own, and echoes it on the response. Downstream code reads it
// back through RequestIDFrom.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(ctxKeyRequestID, id)
		c.Header(headerRequestID, id)

		c.Next()
	}
}

// RequestIDFrom returns the id assigned by the RequestID middleware, or ""
// when it did not run.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}
