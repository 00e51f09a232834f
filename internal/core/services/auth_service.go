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
	"github.com/Tushar3330/Mytube/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// authService drives registration, login, logout, refresh and password changes.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvcFacade
	storage  ports.AssetStorage
	now      func() time.Time
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade, storage ports.AssetStorage) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		storage:  storage,
		now:      time.Now,
	}
}

// Register validates the form, rejects taken usernames/emails, hashes the
// password, uploads the images and only then persists the user.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest, avatar, coverImage *domain.UploadedFile) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	username := normalizeHandle(req.Username)
	email := normalizeHandle(req.Email)

	if fullName == "" || username == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.BadRequest("All fields are required", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("User with email or username already exists", apperrors.ErrDuplicate)
	}

	if avatar == nil {
		return nil, apperrors.BadRequest("Avatar file is required", apperrors.ErrValidation)
	}

	now := s.now().UTC()
	user := domain.User{
		UserID:    uuid.NewString(),
		Username:  username,
		Email:     email,
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, passwordError(err, "Something went wrong while registering the user")
	}

	var avatarURL, coverURL string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := s.storage.Upload(gctx, domain.AvatarFolder, *avatar)
		if err != nil {
			return fmt.Errorf("avatar: %w", err)
		}
		avatarURL = url
		return nil
	})
	if coverImage != nil {
		g.Go(func() error {
			url, err := s.storage.Upload(gctx, domain.CoverImageFolder, *coverImage)
			if err != nil {
				return fmt.Errorf("cover image: %w", err)
			}
			coverURL = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to upload registration images", slog.String("username", username))
		return nil, apperrors.BadRequest("Error while uploading images", errors.Join(apperrors.ErrUpload, err))
	}

	user.AvatarURL = avatarURL
	user.CoverImageURL = coverURL

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Conflict("User with email or username already exists", err)
		}
		return nil, apperrors.Internal("Something went wrong while registering the user", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("username", username))
	return user.Sanitized(), nil
}

// Login checks credentials and starts a new session, replacing any previous one.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	username := normalizeHandle(req.Username)
	email := normalizeHandle(req.Email)
	if username == "" && email == "" {
		return nil, apperrors.BadRequest("Username or email is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("User does not exist", err)
		}
		return nil, fmt.Errorf("failed to find user for login: %w", err)
	}

	if !user.VerifyPassword(req.Password) {
		s.LogWarn(ctx, "Login with invalid password", slog.String("user_id", user.UserID))
		return nil, apperrors.Unauthorized("Invalid user credentials", apperrors.ErrUnauthorized)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.UserID, utils.HashRefreshToken(pair.RefreshToken), pair.RefreshTokenExpiresAt); err != nil {
		return nil, apperrors.Internal("Something went wrong while generating tokens", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResult{User: user.Sanitized(), Tokens: *pair}, nil
}

// Logout clears the stored refresh token.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	s.LogInfo(ctx, "User logged out", slog.String("user_id", userID))
	return nil
}

// Refresh exchanges the stored refresh token for a new pair. The stored value is
// swapped atomically, so a token that was already rotated out can never win.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, apperrors.BadRequest("Refresh token is required", apperrors.ErrValidation)
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		s.LogWarn(ctx, "Refresh token rejected", slog.String("error", err.Error()))
		return nil, apperrors.Unauthorized("Invalid refresh token", err)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("Invalid refresh token", err)
		}
		return nil, fmt.Errorf("failed to load user for refresh: %w", err)
	}

	if !user.HasActiveSession() || !utils.CompareRefreshTokenHash(refreshToken, *user.RefreshTokenHash) {
		s.LogWarn(ctx, "Refresh token does not match stored value", slog.String("user_id", user.UserID))
		return nil, apperrors.Unauthorized("Refresh token is expired or used", apperrors.ErrRefreshTokenMismatch)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	swapped, err := s.userRepo.RotateRefreshToken(ctx, user.UserID, *user.RefreshTokenHash, utils.HashRefreshToken(pair.RefreshToken), pair.RefreshTokenExpiresAt)
	if err != nil {
		return nil, apperrors.Internal("Something went wrong while generating tokens", err)
	}
	if !swapped {
		s.LogWarn(ctx, "Refresh token rotated concurrently", slog.String("user_id", user.UserID))
		return nil, apperrors.Unauthorized("Refresh token is expired or used", apperrors.ErrRefreshTokenMismatch)
	}

	return pair, nil
}

// ChangePassword verifies the current password and stores a hash of the new one.
func (s *authService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.BadRequest("Current password and new password are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("User not found", err)
		}
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if !user.VerifyPassword(req.CurrentPassword) {
		return apperrors.BadRequest("Invalid current password", apperrors.ErrUnauthorized)
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return passwordError(err, "Something went wrong while changing the password")
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, userID, user.PasswordHash, s.now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("User not found", err)
		}
		return fmt.Errorf("failed to store new password: %w", err)
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

// issueTokenPair signs both tokens. Signing failures are internal and never leak.
func (s *authService) issueTokenPair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	accessToken, accessExp, err := s.tokens.IssueAccessToken(ctx, user)
	if err != nil {
		return nil, apperrors.Internal("Something went wrong while generating tokens", err)
	}
	refreshToken, refreshExp, err := s.tokens.IssueRefreshToken(ctx, user)
	if err != nil {
		return nil, apperrors.Internal("Something went wrong while generating tokens", err)
	}
	return &domain.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

// passwordError maps hashing failures caused by the input to a 400.
func passwordError(err error, internalMsg string) *apperrors.AppError {
	if errors.Is(err, utils.ErrPasswordTooLong) {
		msg := fmt.Sprintf("Password must be at most %d bytes", utils.MaxPasswordBytes)
		return apperrors.BadRequest(msg, errors.Join(apperrors.ErrValidation, err))
	}
	return apperrors.Internal(internalMsg, err)
}

// normalizeHandle trims and lower-cases usernames and emails.
func normalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
