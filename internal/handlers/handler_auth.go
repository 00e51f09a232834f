package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	portssvc "github.com/Tushar3330/Mytube/internal/core/ports/services"
	"github.com/Tushar3330/Mytube/internal/dto"
	"github.com/Tushar3330/Mytube/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and the session lifecycle.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cookies     cookieWriter
	uploads     uploadStager
}

func newAuthHandler(as portssvc.AuthSvcFacade, cookies cookieWriter, uploads uploadStager) *authHandler {
	return &authHandler{
		authService: as,
		cookies:     cookies,
		uploads:     uploads,
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account. Avatar is required, cover image optional.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "Full name"
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 409 {object} dto.APIErrorResponse "Username or email taken"
// @Failure 500 {object} dto.APIErrorResponse
// @Router /users/register [post]
func (h *authHandler) register(c *gin.Context) {
	h.uploads.limitBody(c, 2)

	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		if tooLarge(err) {
			_ = c.Error(bodyTooLargeError(err))
			return
		}
		_ = c.Error(bindingError(err))
		return
	}

	avatar, cleanupAvatar, err := h.uploads.stage(c, "avatar")
	defer cleanupAvatar()
	if err != nil {
		_ = c.Error(err)
		return
	}
	cover, cleanupCover, err := h.uploads.stage(c, "coverImage")
	defer cleanupCover()
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req, avatar, cover)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(http.StatusCreated, dto.ToUserResponse(user), "User registered successfully"))
}

// login godoc
// @Summary User login
// @Description Authenticates with username or email and sets the session cookies.
// @Tags users
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Failure 429 {object} dto.APIErrorResponse
// @Router /users/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.cookies.setTokens(c, result.Tokens)
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(result.User),
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}, "User logged in successfully"))
}

// logout godoc
// @Summary User logout
// @Description Clears the stored refresh token and the session cookies.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized("Unauthorized request", apperrors.ErrUnauthorized))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		_ = c.Error(err)
		return
	}

	h.cookies.clearTokens(c)
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, gin.H{}, "User logged out"))
}

// refreshToken godoc
// @Summary Refresh access token
// @Description Rotates both tokens. The refresh token is read from the refreshToken cookie or the JSON body.
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} dto.APIResponse{data=dto.RefreshTokenResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/refresh-token [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	token, _ := c.Cookie(RefreshTokenCookie)
	if token == "" {
		var body dto.RefreshTokenRequest
		// An empty or non-JSON body simply means no token was sent.
		_ = c.ShouldBindJSON(&body)
		token = body.RefreshToken
	}

	pair, err := h.authService.Refresh(c.Request.Context(), token)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.cookies.setTokens(c, *pair)
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Access token refreshed"))
}

// changePassword godoc
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized("Unauthorized request", apperrors.ErrUnauthorized))
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		_ = c.Error(err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Password change completed", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, gin.H{}, "Password changed successfully"))
}
