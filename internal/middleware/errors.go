package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	"github.com/Tushar3330/Mytube/internal/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error as the error envelope.
// It must be registered before any handler that reports errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperrors.AsAppError(c.Errors.Last().Err)
		logger := GetLoggerFromCtx(c.Request.Context())
		if appErr.StatusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Int("status", appErr.StatusCode), slog.String("error", appErr.Error()))
		} else {
			logger.Info("Request rejected", slog.Int("status", appErr.StatusCode), slog.String("error", appErr.Error()))
		}

		c.JSON(appErr.StatusCode, dto.NewAPIErrorResponse(appErr))
	}
}

// Recovery converts panics into the generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Panic recovered", slog.Any("panic", recovered))
		appErr := apperrors.Internal("Internal server error", nil)
		c.AbortWithStatusJSON(appErr.StatusCode, dto.NewAPIErrorResponse(appErr))
	})
}
