package dto

import "github.com/Tushar3330/Mytube/internal/core/domain"

// LoginRequest accepts either a username or an email with the password.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the optional JSON body of /refresh-token.
// The refreshToken cookie takes precedence.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is what the session service returns on a successful login.
type LoginResult struct {
	User   *domain.User
	Tokens domain.TokenPair
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
