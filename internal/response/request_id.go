package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key under which the request ID is
// stored; buildMetadata reads it when assembling the envelope.
const ContextKeyRequestID = "request_id"

// RequestIDMiddleware tags every request with an ID so a response envelope
// can be matched to its server logs. An inbound X-Request-ID is honored,
// letting the board UI correlate across its own retries; otherwise a fresh
// UUID is issued. The ID is echoed back in the response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
