package middleware

import (
	"errors"
	"net/http"

	"portfolio-contact/internal/delivery/http/response"
	"portfolio-contact/internal/domain"
	"portfolio-contact/pkg/apperror"
	"portfolio-contact/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with c.Error as {"error": ...}.
// Error text is passed through to the caller; the contact relay reports
// provider and parse failures verbatim.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(RequestIDKey)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("Request failed",
				"request_id", reqID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", appErr.Code,
				"error", err,
			)
		}

		response.Relay(c, domain.RelayFailure(appErr.Code, appErr))
	}
}
