package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

// ErrorResponse is the wire shape of every error: a human-readable message
// plus the underlying error text.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, message string, err error) {
	detail := http.StatusText(status)
	if err != nil {
		detail = err.Error()
	}

	fields := map[string]any{
		"status":     status,
		"message":    message,
		"error":      detail,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Message: message,
		Error:   detail,
	})
}
