package repositories

import (
	"context"

	"github.com/Tushar3330/Mytube/internal/core/domain"
)

// ChannelReader runs the aggregation queries over users, subscriptions and videos.
type ChannelReader interface {
	// GetChannelProfile returns the channel owned by username with subscription counts.
	// viewerID is used to compute IsSubscribed.
	GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error)

	// GetWatchHistory returns the user's watched videos, most recent first.
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error)
}
