package domain

import (
	"errors"
	"time"

	"github.com/Tushar3330/Mytube/internal/utils"
)

// User represents a registered account in the domain.
type User struct {
	UserID        string `json:"userID"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	AvatarURL     string `json:"avatar"`
	CoverImageURL string `json:"coverImage"`

	// Credential and session fields. Never serialized.
	PasswordHash          string     `json:"-"`
	RefreshTokenHash      *string    `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetPassword replaces the stored hash. Hashing happens here, once per change,
// so persisting an unchanged user never re-hashes.
func (u *User) SetPassword(plaintext string) error {
	if plaintext == "" {
		return errors.New("password must not be empty")
	}
	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
func (u *User) VerifyPassword(plaintext string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return utils.CheckPasswordHash(plaintext, u.PasswordHash)
}

// HasActiveSession reports whether a refresh token is currently stored.
func (u *User) HasActiveSession() bool {
	return u.RefreshTokenHash != nil && *u.RefreshTokenHash != ""
}

// Sanitized returns a copy without the password hash and refresh token.
func (u User) Sanitized() *User {
	u.PasswordHash = ""
	u.RefreshTokenHash = nil
	u.RefreshTokenExpiresAt = nil
	return &u
}
