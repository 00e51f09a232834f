package mapping_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/Tushar3330/Mytube/internal/models"
	"github.com/Tushar3330/Mytube/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMapping_NullableSession(t *testing.T) {
	m := models.User{UserID: "u1", Username: "alice", PasswordHash: "hash"}
	d := mapping.ToDomainUser(m)
	assert.Nil(t, d.RefreshTokenHash)
	assert.Nil(t, d.RefreshTokenExpiresAt)
	assert.False(t, d.HasActiveSession())

	exp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.RefreshTokenHash = sql.NullString{String: "digest", Valid: true}
	m.RefreshTokenExpiresAt = sql.NullTime{Time: exp, Valid: true}
	d = mapping.ToDomainUser(m)
	require.NotNil(t, d.RefreshTokenHash)
	assert.Equal(t, "digest", *d.RefreshTokenHash)
	assert.Equal(t, exp, *d.RefreshTokenExpiresAt)

	back := mapping.ToModelUser(d)
	assert.Equal(t, m, back)
}

func TestWatchHistoryMapping_MissingOwner(t *testing.T) {
	rows := []models.WatchHistoryRow{
		{VideoID: "v1", Title: "one", OwnerUsername: sql.NullString{String: "bob", Valid: true}},
		{VideoID: "v2", Title: "two"},
	}
	got := mapping.ToDomainWatchedVideoSlice(rows)
	require.Len(t, got, 2)
	assert.Equal(t, domain.VideoOwner{Username: "bob"}, got[0].Owner)
	assert.Equal(t, domain.VideoOwner{}, got[1].Owner)
	assert.Equal(t, "v2", got[1].VideoID)
}
