package models

import (
	"database/sql"
	"time"
)

// User is the row shape of the users table.
type User struct {
	UserID        string `db:"user_id"`
	Username      string `db:"username"`
	Email         string `db:"email"`
	FullName      string `db:"full_name"`
	PasswordHash  string `db:"password_hash"`
	AvatarURL     string `db:"avatar_url"`
	CoverImageURL string `db:"cover_image_url"`

	// Refresh Token Fields
	RefreshTokenHash      sql.NullString `db:"refresh_token_hash"`       // Store hash of the refresh token
	RefreshTokenExpiresAt sql.NullTime   `db:"refresh_token_expires_at"` // Expiry of the stored refresh token

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
