package handlers

import (
	"net/http"
	"time"

	"github.com/Tushar3330/Mytube/cmd/docs"
	"github.com/Tushar3330/Mytube/internal/apperrors"
	portssvc "github.com/Tushar3330/Mytube/internal/core/ports/services"
	"github.com/Tushar3330/Mytube/internal/middleware"
	"github.com/Tushar3330/Mytube/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter may be nil, in which case login is not rate limited.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1")
	registerUserRoutes(v1, cfg, services, loginLimiter)

	// Unmatched paths and methods still go through ErrorHandler.
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("Route not found", apperrors.ErrNotFound))
	})
	r.NoMethod(func(c *gin.Context) {
		_ = c.Error(apperrors.NewAppError(http.StatusMethodNotAllowed, "Method not allowed", nil))
	})

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerUserRoutes registers the account and session routes under /users.
func registerUserRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	uploads := uploadStager{dir: cfg.UploadTempDir, maxBytes: cfg.MaxUploadBytes}
	cookies := cookieWriter{secure: cfg.CookieSecure, now: time.Now}

	ah := newAuthHandler(services.Auth, cookies, uploads)
	uh := newUserHandler(services.User, uploads)
	requireAuth := middleware.AuthMiddleware(services.Token, services.User)

	loginChain := []gin.HandlerFunc{}
	if loginLimiter != nil {
		loginChain = append(loginChain, middleware.RateLimit(loginLimiter))
	}
	loginChain = append(loginChain, ah.login)

	users := rg.Group("/users")
	{
		users.POST("/register", ah.register)
		users.POST("/login", loginChain...)
		users.POST("/refresh-token", ah.refreshToken)
	}

	secured := users.Group("", requireAuth)
	{
		secured.POST("/logout", ah.logout)
		secured.POST("/change-password", ah.changePassword)
		secured.GET("/current-user", uh.getCurrentUser)
		secured.PATCH("/update-account-details", uh.updateAccountDetails)
		secured.PATCH("/update-avatar", uh.updateAvatar)
		secured.PATCH("/update-cover-image", uh.updateCoverImage)
		secured.GET("/channel-profile/", uh.getChannelProfile)
		secured.GET("/channel-profile/:username", uh.getChannelProfile)
		secured.GET("/watch-history", uh.getWatchHistory)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
