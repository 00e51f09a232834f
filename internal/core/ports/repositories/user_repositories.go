package repositories

import (
	"context"
	"time"

	"github.com/Tushar3330/Mytube/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsernameOrEmail retrieves the user matching either value.
	// Empty values never match.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username or email is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateAccountDetails changes the profile fields and returns the updated user.
	UpdateAccountDetails(ctx context.Context, userID, fullName, email, username string, updatedAt time.Time) (*domain.User, error)

	// UpdatePasswordHash writes only the password column.
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error

	// UpdateAvatar sets the avatar URL and returns the updated user.
	UpdateAvatar(ctx context.Context, userID, avatarURL string, updatedAt time.Time) (*domain.User, error)

	// UpdateCoverImage sets the cover image URL and returns the updated user.
	UpdateCoverImage(ctx context.Context, userID, coverImageURL string, updatedAt time.Time) (*domain.User, error)
}

// UserSessionStore manages the single refresh token slot on a user.
type UserSessionStore interface {
	// SetRefreshToken overwrites the stored refresh token, ending any previous session.
	SetRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiresAt time.Time) error

	// RotateRefreshToken replaces oldHash with newHash in one statement.
	// It returns false when the stored value no longer equals oldHash.
	RotateRefreshToken(ctx context.Context, userID, oldHash, newHash string, expiresAt time.Time) (bool, error)

	// ClearRefreshToken removes the stored refresh token. Clearing an empty slot is not an error.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserSessionStore
}
