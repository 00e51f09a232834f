package domain

import "time"

// TokenKind selects which secret a token is signed and verified with.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// TokenClaims is the verified content of an access or refresh token.
// Refresh tokens only carry UserID and TokenID.
type TokenClaims struct {
	Kind      TokenKind
	UserID    string
	Username  string
	Email     string
	FullName  string
	TokenID   string
	ExpiresAt time.Time
}

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	AccessToken           string    `json:"accessToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}
