package utils

import (
	"time"

	"github.com/Sharmela-S/Farm-AI/models"
	"github.com/gin-gonic/gin"
)

// Timestamp formats now the way every response reports time.
func Timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// RespondError aborts the request with a structured error body.
func RespondError(c *gin.Context, status int, errMsg, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Status:    "error",
		Error:     errMsg,
		Message:   message,
		Timestamp: Timestamp(),
	})
}
