package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	"github.com/Tushar3330/Mytube/internal/core/domain"
	portssvc "github.com/Tushar3330/Mytube/internal/core/ports/services"
	"github.com/Tushar3330/Mytube/internal/platform/config"
	"github.com/Tushar3330/Mytube/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService implements the TokenSvcFacade for signing and verifying JWTs.
// Access and refresh tokens use separate secrets so one can never stand in for the other.
type tokenService struct {
	accessSecret  string
	accessTTL     time.Duration
	refreshSecret string
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// TokenServiceOption configures optional tokenService settings.
type TokenServiceOption func(*tokenService)

// WithTokenClock overrides the clock used for issuing and validating tokens.
func WithTokenClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, opts ...TokenServiceOption) portssvc.TokenSvcFacade {
	s := &tokenService{
		accessSecret:  cfg.AccessTokenSecret,
		accessTTL:     cfg.AccessTokenExpiry,
		refreshSecret: cfg.RefreshTokenSecret,
		refreshTTL:    cfg.RefreshTokenExpiry,
		issuer:        cfg.JWTIssuer,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueAccessToken creates a new JWT access token for the given user.
func (s *tokenService) IssueAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	if user == nil || user.UserID == "" {
		return "", time.Time{}, errors.New("cannot issue access token without a user id")
	}
	profile := utils.ProfileClaims{
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
	}
	token, exp, err := utils.GenerateJWT(user.UserID, profile, s.accessSecret, s.accessTTL, s.issuer, s.now())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, exp, nil
}

// IssueRefreshToken creates a new JWT refresh token carrying only the user ID.
func (s *tokenService) IssueRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	if user == nil || user.UserID == "" {
		return "", time.Time{}, errors.New("cannot issue refresh token without a user id")
	}
	token, exp, err := utils.GenerateJWT(user.UserID, utils.ProfileClaims{}, s.refreshSecret, s.refreshTTL, s.issuer, s.now())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return token, exp, nil
}

// Verify parses token with the secret belonging to kind and maps library errors
// onto the apperrors token taxonomy.
func (s *tokenService) Verify(token string, kind domain.TokenKind) (*domain.TokenClaims, error) {
	var secret string
	switch kind {
	case domain.AccessToken:
		secret = s.accessSecret
	case domain.RefreshToken:
		secret = s.refreshSecret
	default:
		return nil, fmt.Errorf("unknown token kind %q: %w", kind, apperrors.ErrInvalidToken)
	}

	claims, err := utils.ParseAndValidateJWT(token, secret, s.issuer, s.now)
	if err != nil {
		return nil, fmt.Errorf("%s token: %w", kind, classifyJWTError(err))
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%s token without subject: %w", kind, apperrors.ErrTokenSignature)
	}

	out := &domain.TokenClaims{
		Kind:     kind,
		UserID:   claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
		FullName: claims.FullName,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func (s *tokenService) VerifyAccessToken(token string) (*domain.TokenClaims, error) {
	return s.Verify(token, domain.AccessToken)
}

func (s *tokenService) VerifyRefreshToken(token string) (*domain.TokenClaims, error) {
	return s.Verify(token, domain.RefreshToken)
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return apperrors.ErrTokenNotValidYet
	case errors.Is(err, jwt.ErrTokenMalformed):
		return apperrors.ErrTokenMalformed
	default:
		return apperrors.ErrTokenSignature
	}
}
