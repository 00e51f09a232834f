package middleware

import (
	"log/slog"
	"strings"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	portssvc "github.com/Tushar3330/Mytube/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the cookie carrying the access token.
const AccessTokenCookie = "accessToken"

// unauthorizedMessage is the single outward message for every gate failure.
const unauthorizedMessage = "Unauthorized request"

// AuthMiddleware creates a Gin middleware handler that validates access tokens.
// The token is read from the accessToken cookie, falling back to a Bearer
// Authorization header. Every failure ends in the same 401; the reason is only logged.
func AuthMiddleware(tokens portssvc.TokenSvcFacade, users portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		reject := func(reason string, err error) {
			attrs := []any{slog.String("reason", reason)}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.Warn("Authentication failed", attrs...)
			_ = c.Error(apperrors.Unauthorized(unauthorizedMessage, apperrors.ErrUnauthorized))
			c.Abort()
		}

		tokenString := extractToken(c)
		if tokenString == "" {
			reject("missing_token", nil)
			return
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			reject("invalid_token", err)
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			reject("unknown_user", err)
			return
		}

		ctx := WithUser(c.Request.Context(), user)
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", user.UserID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return ""
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
