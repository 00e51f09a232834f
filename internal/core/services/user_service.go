package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/Tushar3330/Mytube/internal/core/ports"
	portsrepo "github.com/Tushar3330/Mytube/internal/core/ports/repositories"
	portssvc "github.com/Tushar3330/Mytube/internal/core/ports/services"
	"github.com/Tushar3330/Mytube/internal/dto"
)

type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	channelRepo portsrepo.ChannelReader
	storage     ports.AssetStorage
	now         func() time.Time
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, channelRepo portsrepo.ChannelReader, storage ports.AssetStorage) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		channelRepo: channelRepo,
		storage:     storage,
		now:         time.Now,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("User not found", err)
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user.Sanitized(), nil
}

func (s *userService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := normalizeHandle(req.Email)
	username := normalizeHandle(req.Username)
	if fullName == "" || email == "" || username == "" {
		return nil, apperrors.BadRequest("All fields are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.UpdateAccountDetails(ctx, userID, fullName, email, username, s.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.Conflict("Username or email is already taken", err)
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NotFound("User not found", err)
		}
		return nil, fmt.Errorf("failed to update account details: %w", err)
	}

	s.LogInfo(ctx, "Account details updated", slog.String("user_id", userID))
	return user.Sanitized(), nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID string, file *domain.UploadedFile) (*domain.User, error) {
	if file == nil {
		return nil, apperrors.Unauthorized("Avatar file is missing", apperrors.ErrValidation)
	}
	url, err := s.upload(ctx, domain.AvatarFolder, *file)
	if err != nil {
		return nil, apperrors.BadRequest("Error while uploading avatar", err)
	}
	return s.storeAsset(ctx, userID, func(now time.Time) (*domain.User, error) {
		return s.userRepo.UpdateAvatar(ctx, userID, url, now)
	})
}

func (s *userService) UpdateCoverImage(ctx context.Context, userID string, file *domain.UploadedFile) (*domain.User, error) {
	if file == nil {
		return nil, apperrors.Unauthorized("Cover image file is missing", apperrors.ErrValidation)
	}
	url, err := s.upload(ctx, domain.CoverImageFolder, *file)
	if err != nil {
		return nil, apperrors.BadRequest("Error while uploading cover image", err)
	}
	return s.storeAsset(ctx, userID, func(now time.Time) (*domain.User, error) {
		return s.userRepo.UpdateCoverImage(ctx, userID, url, now)
	})
}

// upload pushes one file and tags failures with ErrUpload.
func (s *userService) upload(ctx context.Context, folder domain.AssetFolder, file domain.UploadedFile) (string, error) {
	url, err := s.storage.Upload(ctx, folder, file)
	if err != nil {
		s.LogError(ctx, err, "Asset upload failed", slog.String("folder", string(folder)))
		return "", errors.Join(apperrors.ErrUpload, err)
	}
	if url == "" {
		return "", apperrors.ErrUpload
	}
	return url, nil
}

func (s *userService) storeAsset(ctx context.Context, userID string, update func(time.Time) (*domain.User, error)) (*domain.User, error) {
	user, err := update(s.now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("User not found", err)
		}
		return nil, fmt.Errorf("failed to store asset url: %w", err)
	}
	return user.Sanitized(), nil
}

func (s *userService) GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	username = normalizeHandle(username)
	if username == "" {
		return nil, apperrors.BadRequest("Username is missing", apperrors.ErrValidation)
	}

	profile, err := s.channelRepo.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Channel does not exist", err)
		}
		return nil, fmt.Errorf("failed to load channel profile: %w", err)
	}
	return profile, nil
}

func (s *userService) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error) {
	history, err := s.channelRepo.GetWatchHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load watch history: %w", err)
	}
	if history == nil {
		history = []domain.WatchedVideo{}
	}
	return history, nil
}
