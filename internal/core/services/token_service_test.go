package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/Tushar3330/Mytube/internal/core/services"
	"github.com/Tushar3330/Mytube/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenSecret:  "test-access-secret-0123456789",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenSecret: "test-refresh-secret-0123456789",
		RefreshTokenExpiry: 240 * time.Hour,
		JWTIssuer:          "mytube-test",
	}
}

func testUser() *domain.User {
	return &domain.User{
		UserID:   "6f1c1a9e-8d0f-4bd4-a7f4-2f3c8b1e9a10",
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice A",
	}
}

func TestTokenService_AccessRoundTrip(t *testing.T) {
	svc := services.NewTokenService(testConfig())
	user := testUser()

	token, exp, err := svc.IssueAccessToken(context.Background(), user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessToken, claims.Kind)
	assert.Equal(t, user.UserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice A", claims.FullName)
	assert.NotEmpty(t, claims.TokenID)
}

func TestTokenService_RefreshCarriesOnlyUserID(t *testing.T) {
	svc := services.NewTokenService(testConfig())

	token, exp, err := svc.IssueRefreshToken(context.Background(), testUser())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(240*time.Hour), exp, 5*time.Second)

	claims, err := svc.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, testUser().UserID, claims.UserID)
	assert.Empty(t, claims.Username)
	assert.Empty(t, claims.Email)
}

func TestTokenService_KindsAreNotInterchangeable(t *testing.T) {
	svc := services.NewTokenService(testConfig())
	ctx := context.Background()

	access, _, err := svc.IssueAccessToken(ctx, testUser())
	require.NoError(t, err)
	refresh, _, err := svc.IssueRefreshToken(ctx, testUser())
	require.NoError(t, err)

	_, err = svc.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenSignature)
	_, err = svc.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, apperrors.ErrTokenSignature)
}

func TestTokenService_Expired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	issuer := services.NewTokenService(testConfig(), services.WithTokenClock(func() time.Time { return issuedAt }))
	verifier := services.NewTokenService(testConfig())

	token, _, err := issuer.IssueAccessToken(context.Background(), testUser())
	require.NoError(t, err)

	_, err = verifier.VerifyAccessToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenService_VerifyFailures(t *testing.T) {
	svc := services.NewTokenService(testConfig())

	otherCfg := testConfig()
	otherCfg.AccessTokenSecret = "some-other-access-secret-987654"
	foreign, _, err := services.NewTokenService(otherCfg).IssueAccessToken(context.Background(), testUser())
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", apperrors.ErrTokenMalformed},
		{"garbage", "not-a-jwt", apperrors.ErrTokenMalformed},
		{"foreign secret", foreign, apperrors.ErrTokenSignature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccessToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		})
	}
}

func TestTokenService_UnknownKind(t *testing.T) {
	svc := services.NewTokenService(testConfig())
	_, err := svc.Verify("anything", domain.TokenKind("session"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenService_IssueRequiresUserID(t *testing.T) {
	svc := services.NewTokenService(testConfig())
	_, _, err := svc.IssueAccessToken(context.Background(), &domain.User{})
	assert.Error(t, err)
	_, _, err = svc.IssueRefreshToken(context.Background(), nil)
	assert.Error(t, err)
}

func TestTokenService_SameSecondTokensDiffer(t *testing.T) {
	fixed := time.Now()
	svc := services.NewTokenService(testConfig(), services.WithTokenClock(func() time.Time { return fixed }))

	first, _, err := svc.IssueRefreshToken(context.Background(), testUser())
	require.NoError(t, err)
	second, _, err := svc.IssueRefreshToken(context.Background(), testUser())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
