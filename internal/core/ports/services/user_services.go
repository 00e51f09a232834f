package services

import (
	"context"

	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/Tushar3330/Mytube/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a sanitized user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserProfileSvc defines profile updates for the authenticated user.
type UserProfileSvc interface {
	// UpdateAccountDetails changes full name, email and username.
	UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error)

	// UpdateAvatar uploads a new avatar and stores its URL.
	UpdateAvatar(ctx context.Context, userID string, file *domain.UploadedFile) (*domain.User, error)

	// UpdateCoverImage uploads a new cover image and stores its URL.
	UpdateCoverImage(ctx context.Context, userID string, file *domain.UploadedFile) (*domain.User, error)
}

// ChannelSvc defines the aggregation reads.
type ChannelSvc interface {
	// GetChannelProfile returns the channel page for username as seen by viewerID.
	GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error)

	// GetWatchHistory returns the videos userID has watched, with owner summaries.
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserProfileSvc
	ChannelSvc
}
