package services

import (
	"context"
	"time"

	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/Tushar3330/Mytube/internal/dto"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// IssueAccessToken signs a short-lived token carrying the user's profile claims.
	IssueAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// IssueRefreshToken signs a long-lived token carrying only the user ID.
	// The caller is responsible for persisting it.
	IssueRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// Verify checks signature, issuer and validity window using the secret for kind.
	// Failures wrap apperrors.ErrInvalidToken.
	Verify(token string, kind domain.TokenKind) (*domain.TokenClaims, error)

	VerifyAccessToken(token string) (*domain.TokenClaims, error)
	VerifyRefreshToken(token string) (*domain.TokenClaims, error)
}

// SessionSvc defines the login/logout/refresh state machine.
type SessionSvc interface {
	// Login verifies credentials, issues both tokens and stores the refresh token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error)

	// Logout clears the stored refresh token. Logging out twice is not an error.
	Logout(ctx context.Context, userID string) error

	// Refresh rotates both tokens when the presented refresh token equals the stored one.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}

// CredentialSvc defines account creation and password changes.
type CredentialSvc interface {
	// Register creates a user, uploading the avatar and optional cover image first.
	Register(ctx context.Context, req dto.RegisterRequest, avatar, coverImage *domain.UploadedFile) (*domain.User, error)

	// ChangePassword re-hashes and stores a new password after verifying the current one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
}

// AuthSvcFacade combines all authentication related service interfaces
type AuthSvcFacade interface {
	SessionSvc
	CredentialSvc
}
