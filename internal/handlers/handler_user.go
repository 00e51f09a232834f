package handlers

import (
	"context"
	"net/http"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	"github.com/Tushar3330/Mytube/internal/core/domain"
	portssvc "github.com/Tushar3330/Mytube/internal/core/ports/services"
	"github.com/Tushar3330/Mytube/internal/dto"
	"github.com/Tushar3330/Mytube/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to the authenticated user's profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
	uploads     uploadStager
}

func newUserHandler(us portssvc.UserSvcFacade, uploads uploadStager) *userHandler {
	return &userHandler{
		userService: us,
		uploads:     uploads,
	}
}

// getCurrentUser godoc
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/current-user [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized("Unauthorized request", apperrors.ErrUnauthorized))
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, dto.ToUserResponse(user), "Current user fetched successfully"))
}

// updateAccountDetails godoc
// @Summary Update account details
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.UpdateAccountRequest true "New profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 409 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/update-account-details [patch]
func (h *userHandler) updateAccountDetails(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized("Unauthorized request", apperrors.ErrUnauthorized))
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	user, err := h.userService.UpdateAccountDetails(c.Request.Context(), userID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, dto.ToUserResponse(user), "Account details updated successfully"))
}

// updateAvatar godoc
// @Summary Update avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIErrorResponse "Upload failed"
// @Failure 401 {object} dto.APIErrorResponse "File missing or unauthorized"
// @Security BearerAuth
// @Router /users/update-avatar [patch]
func (h *userHandler) updateAvatar(c *gin.Context) {
	h.replaceImage(c, "avatar", h.userService.UpdateAvatar, "Avatar image updated successfully")
}

// updateCoverImage godoc
// @Summary Update cover image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIErrorResponse "Upload failed"
// @Failure 401 {object} dto.APIErrorResponse "File missing or unauthorized"
// @Security BearerAuth
// @Router /users/update-cover-image [patch]
func (h *userHandler) updateCoverImage(c *gin.Context) {
	h.replaceImage(c, "coverImage", h.userService.UpdateCoverImage, "Cover image updated successfully")
}

type imageUpdater func(ctx context.Context, userID string, file *domain.UploadedFile) (*domain.User, error)

func (h *userHandler) replaceImage(c *gin.Context, field string, update imageUpdater, message string) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized("Unauthorized request", apperrors.ErrUnauthorized))
		return
	}

	h.uploads.limitBody(c, 1)
	file, cleanup, err := h.uploads.stage(c, field)
	defer cleanup()
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := update(c.Request.Context(), userID, file)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, dto.ToUserResponse(user), message))
}

// getChannelProfile godoc
// @Summary Get channel profile
// @Description Returns a user's channel with subscriber counts and whether the caller is subscribed.
// @Tags users
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} dto.APIResponse{data=dto.ChannelProfileResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/channel-profile/{username} [get]
func (h *userHandler) getChannelProfile(c *gin.Context) {
	viewerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized("Unauthorized request", apperrors.ErrUnauthorized))
		return
	}

	profile, err := h.userService.GetChannelProfile(c.Request.Context(), c.Param("username"), viewerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, dto.ToChannelProfileResponse(profile), "User channel fetched successfully"))
}

// getWatchHistory godoc
// @Summary Get watch history
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.WatchHistoryItemResponse}
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/watch-history [get]
func (h *userHandler) getWatchHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized("Unauthorized request", apperrors.ErrUnauthorized))
		return
	}

	history, err := h.userService.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(http.StatusOK, dto.ToWatchHistoryResponse(history), "Watch history fetched successfully"))
}
