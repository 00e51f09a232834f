package handlers

import (
	"net/http"
	"time"

	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/Tushar3330/Mytube/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RefreshTokenCookie is the cookie carrying the refresh token.
const RefreshTokenCookie = "refreshToken"

// cookieWriter sets and clears the session cookies.
type cookieWriter struct {
	secure bool
	now    func() time.Time
}

func (w cookieWriter) apply(c *gin.Context) {
	if w.secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
}

func (w cookieWriter) setTokens(c *gin.Context, pair domain.TokenPair) {
	w.apply(c)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken, w.maxAge(pair.AccessTokenExpiresAt), "/", "", w.secure, true)
	c.SetCookie(RefreshTokenCookie, pair.RefreshToken, w.maxAge(pair.RefreshTokenExpiresAt), "/", "", w.secure, true)
}

func (w cookieWriter) clearTokens(c *gin.Context) {
	w.apply(c)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", w.secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", w.secure, true)
}

// maxAge converts an absolute expiry into cookie seconds, never less than one.
func (w cookieWriter) maxAge(expiresAt time.Time) int {
	secs := int(expiresAt.Sub(w.now()).Seconds())
	if secs < 1 {
		return 1
	}
	return secs
}
