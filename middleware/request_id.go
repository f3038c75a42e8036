package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an ID (reusing the client's header when
// present) and stores a logger carrying that ID under the "logger" key.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(RequestIDHeader, id)
		c.Set("requestID", id)
		c.Set("logger", base.With(
			zap.String("request_id", id),
			zap.String("ip", c.ClientIP()),
		))
		c.Next()
	}
}
