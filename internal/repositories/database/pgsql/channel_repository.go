package pgsql

import (
	"context"

	"github.com/Tushar3330/Mytube/internal/core/domain"
	portsrepo "github.com/Tushar3330/Mytube/internal/core/ports/repositories"
	"github.com/Tushar3330/Mytube/internal/models"
	"github.com/Tushar3330/Mytube/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChannelRepository struct {
	BaseRepository
}

func newPgxChannelRepository(db *pgxpool.Pool) *PgxChannelRepository {
	return &PgxChannelRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ChannelReader = (*PgxChannelRepository)(nil)

func (r *PgxChannelRepository) GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	query := `
		SELECT
			u.user_id, u.username, u.email, u.full_name, u.avatar_url, u.cover_image_url,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id) AS subscribers_count,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.user_id) AS channels_subscribed_to_count,
			EXISTS (
				SELECT 1 FROM subscriptions s
				WHERE s.channel_id = u.user_id AND s.subscriber_id = $2
			) AS is_subscribed
		FROM users u
		WHERE u.username = $1;
	`
	var m models.ChannelProfile
	err := r.Pool.QueryRow(ctx, query, username, viewerID).Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FullName,
		&m.AvatarURL,
		&m.CoverImageURL,
		&m.SubscribersCount,
		&m.ChannelsSubscribedToCount,
		&m.IsSubscribed,
	)
	if err != nil {
		return nil, mapError(err, "failed to load channel profile")
	}
	profile := mapping.ToDomainChannelProfile(m)
	return &profile, nil
}

func (r *PgxChannelRepository) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error) {
	query := `
		SELECT
			v.video_id, v.video_file, v.thumbnail, v.title, v.description, v.duration, v.views,
			v.is_published, v.created_at, wh.watched_at,
			o.username, o.full_name, o.avatar_url
		FROM watch_history wh
		JOIN videos v ON v.video_id = wh.video_id
		LEFT JOIN users o ON o.user_id = v.owner_id
		WHERE wh.user_id = $1
		ORDER BY wh.watched_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err, "failed to query watch history")
	}
	defer rows.Close()

	var history []models.WatchHistoryRow
	for rows.Next() {
		var m models.WatchHistoryRow
		if err := rows.Scan(
			&m.VideoID,
			&m.VideoFile,
			&m.Thumbnail,
			&m.Title,
			&m.Description,
			&m.Duration,
			&m.Views,
			&m.IsPublished,
			&m.CreatedAt,
			&m.WatchedAt,
			&m.OwnerUsername,
			&m.OwnerFullName,
			&m.OwnerAvatarURL,
		); err != nil {
			return nil, mapError(err, "failed to scan watch history row")
		}
		history = append(history, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating watch history rows")
	}

	return mapping.ToDomainWatchedVideoSlice(history), nil
}
