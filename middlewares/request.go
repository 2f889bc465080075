package middlewares

import (
	"fmt"
	"net/http"

	"github.com/Sharmela-S/Farm-AI/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// BodyLimit caps the request body at limit bytes. Requests declaring a
// larger Content-Length are refused up front; reads past the limit on
// streamed bodies fail with *http.MaxBytesError.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > limit {
			utils.RespondError(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Image exceeds the %d MB upload limit", limit>>20), "")
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
