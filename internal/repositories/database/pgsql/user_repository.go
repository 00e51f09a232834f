package pgsql

import (
	"context"
	"time"

	"github.com/Tushar3330/Mytube/internal/core/domain"
	portsrepo "github.com/Tushar3330/Mytube/internal/core/ports/repositories"
	"github.com/Tushar3330/Mytube/internal/models"
	"github.com/Tushar3330/Mytube/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, email, full_name, password_hash, avatar_url, cover_image_url,
	refresh_token_hash, refresh_token_expires_at, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FullName,
		&m.PasswordHash,
		&m.AvatarURL,
		&m.CoverImageURL,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiresAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, username, email, full_name, password_hash, avatar_url, cover_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.FullName,
		m.PasswordHash,
		m.AvatarURL,
		m.CoverImageURL,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return mapError(err, "failed to save user")
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, mapError(err, "failed to find user by ID")
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::text <> '' AND username = $1::text)
		   OR ($2::text <> '' AND email = $2::text)
		ORDER BY created_at
		LIMIT 1;
	`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, username, email))
	if err != nil {
		return nil, mapError(err, "failed to find user by username or email")
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateAccountDetails(ctx context.Context, userID, fullName, email, username string, updatedAt time.Time) (*domain.User, error) {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, username = $4, updated_at = $5
		WHERE user_id = $1
		RETURNING ` + userColumns + `;
	`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID, fullName, email, username, updatedAt))
	if err != nil {
		return nil, mapError(err, "failed to update account details")
	}
	return user, nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error {
	query := `UPDATE users SET password_hash = $2, updated_at = $3 WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID, passwordHash, updatedAt)
	if err != nil {
		return mapError(err, "failed to update password")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to update password")
	}
	return nil
}

func (r *PgxUserRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string, updatedAt time.Time) (*domain.User, error) {
	query := `
		UPDATE users SET avatar_url = $2, updated_at = $3
		WHERE user_id = $1
		RETURNING ` + userColumns + `;
	`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID, avatarURL, updatedAt))
	if err != nil {
		return nil, mapError(err, "failed to update avatar")
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateCoverImage(ctx context.Context, userID, coverImageURL string, updatedAt time.Time) (*domain.User, error) {
	query := `
		UPDATE users SET cover_image_url = $2, updated_at = $3
		WHERE user_id = $1
		RETURNING ` + userColumns + `;
	`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID, coverImageURL, updatedAt))
	if err != nil {
		return nil, mapError(err, "failed to update cover image")
	}
	return user, nil
}

func (r *PgxUserRepository) SetRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $2, refresh_token_expires_at = $3
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, refreshTokenHash, expiresAt)
	if err != nil {
		return mapError(err, "failed to store refresh token")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to store refresh token")
	}
	return nil
}

// RotateRefreshToken is a compare-and-swap on refresh_token_hash.
func (r *PgxUserRepository) RotateRefreshToken(ctx context.Context, userID, oldHash, newHash string, expiresAt time.Time) (bool, error) {
	query := `
		UPDATE users
		SET refresh_token_hash = $3, refresh_token_expires_at = $4
		WHERE user_id = $1 AND refresh_token_hash = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, oldHash, newHash, expiresAt)
	if err != nil {
		return false, mapError(err, "failed to rotate refresh token")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET refresh_token_hash = NULL, refresh_token_expires_at = NULL
		WHERE user_id = $1;
	`
	_, err := r.Pool.Exec(ctx, query, userID)
	return mapError(err, "failed to clear refresh token")
}
