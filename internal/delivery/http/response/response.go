package response

import (
	"portfolio-contact/internal/domain"

	"github.com/gin-gonic/gin"
)

// MessageBody is the success shape of the contact relay
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the failure shape; clients render its text directly
type ErrorBody struct {
	Error string `json:"error"`
}

// Success sends {"message": ...}
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, MessageBody{Message: message})
}

// Error sends {"error": ...}
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// Relay writes a RelayResult as {statusCode, body}
func Relay(c *gin.Context, result domain.RelayResult) {
	if result.Succeeded() {
		Success(c, result.StatusCode, result.Message)
		return
	}
	Error(c, result.StatusCode, result.Error)
}

// JSON sends an arbitrary payload, used by health
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}
