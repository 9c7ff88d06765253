package middleware

import (
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, honoring one supplied by the
// caller so ids survive proxy hops.
func RequestID() gin.HandlerFunc {
  return func(c *gin.Context) {
    id := c.GetHeader(RequestIDHeader)
    if id == "" {
      id = uuid.New().String()
    }
    c.Set("request_id", id)
    c.Writer.Header().Set(RequestIDHeader, id)
    c.Next()
  }
}
