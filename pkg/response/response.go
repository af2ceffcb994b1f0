package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint returns. Success responses carry
// data (and count for lists); error responses carry error plus the status code
// mirrored in the body, with optional field-level details on validation
// failures.
type APIResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Tokens     interface{} `json:"tokens,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    interface{} `json:"details,omitempty"`
	Status     int         `json:"status,omitempty"`
	RetryAfter int         `json:"retry_after,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse{Success: true, Message: message, Data: data})
}

// SuccessWithTokens writes a success envelope that also carries a token set,
// used by the login, register and refresh endpoints.
func SuccessWithTokens(c *gin.Context, status int, data interface{}, tokens interface{}, message string) {
	c.JSON(status, APIResponse{Success: true, Message: message, Data: data, Tokens: tokens})
}

// List writes a 200 with data and an explicit element count.
func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Count: &count})
}

func Error(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, APIResponse{Success: false, Error: message, Status: status})
}

// ValidationError writes a 400 with the field->message map from the binding
// layer attached as details.
func ValidationError(c *gin.Context, details interface{}) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error:   "Validation error",
		Details: details,
		Status:  http.StatusBadRequest,
	})
}

// Abort writes an error envelope and stops the handler chain. Used by
// middleware.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, APIResponse{Success: false, Error: message, Status: status})
}

// RateLimited writes the 429 envelope with the fixed retry-after hint.
func RateLimited(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, APIResponse{
		Success:    false,
		Error:      "Rate limit exceeded",
		Status:     http.StatusTooManyRequests,
		RetryAfter: 60,
	})
}
