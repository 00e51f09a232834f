package models

import (
	"database/sql"
	"time"
)

// ChannelProfile is the result row of the channel aggregation query.
type ChannelProfile struct {
	UserID                    string `db:"user_id"`
	Username                  string `db:"username"`
	Email                     string `db:"email"`
	FullName                  string `db:"full_name"`
	AvatarURL                 string `db:"avatar_url"`
	CoverImageURL             string `db:"cover_image_url"`
	SubscribersCount          int64  `db:"subscribers_count"`
	ChannelsSubscribedToCount int64  `db:"channels_subscribed_to_count"`
	IsSubscribed              bool   `db:"is_subscribed"`
}

// WatchHistoryRow is one joined row of watch_history, videos and the video owner.
type WatchHistoryRow struct {
	VideoID        string         `db:"video_id"`
	VideoFile      string         `db:"video_file"`
	Thumbnail      string         `db:"thumbnail"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	Duration       float64        `db:"duration"`
	Views          int64          `db:"views"`
	IsPublished    bool           `db:"is_published"`
	CreatedAt      time.Time      `db:"created_at"`
	WatchedAt      time.Time      `db:"watched_at"`
	OwnerUsername  sql.NullString `db:"owner_username"`
	OwnerFullName  sql.NullString `db:"owner_full_name"`
	OwnerAvatarURL sql.NullString `db:"owner_avatar_url"`
}
