package reportserver

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode identifies API error responses.
type ErrorCode string

const (
	ErrorCodeRunNotFound   ErrorCode = "RUN_NOT_FOUND"
	ErrorCodeNoDatabase    ErrorCode = "DATABASE_NOT_CONFIGURED"
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// APIError is the JSON body of every non-2xx API response.
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// sendError writes a standardized error response.
func sendError(c *gin.Context, status int, code ErrorCode, message string) {
	c.JSON(status, APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	})
}
