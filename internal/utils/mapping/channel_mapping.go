package mapping

import (
	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/Tushar3330/Mytube/internal/models"
)

// ToDomainChannelProfile converts an aggregation row to a domain ChannelProfile
func ToDomainChannelProfile(m models.ChannelProfile) domain.ChannelProfile {
	return domain.ChannelProfile{
		UserID:                    m.UserID,
		Username:                  m.Username,
		Email:                     m.Email,
		FullName:                  m.FullName,
		AvatarURL:                 m.AvatarURL,
		CoverImageURL:             m.CoverImageURL,
		SubscribersCount:          m.SubscribersCount,
		ChannelsSubscribedToCount: m.ChannelsSubscribedToCount,
		IsSubscribed:              m.IsSubscribed,
	}
}

// ToDomainWatchedVideo converts a joined watch history row. A video whose owner
// was removed keeps an empty Owner.
func ToDomainWatchedVideo(m models.WatchHistoryRow) domain.WatchedVideo {
	return domain.WatchedVideo{
		VideoID:     m.VideoID,
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Views:       m.Views,
		IsPublished: m.IsPublished,
		Owner: domain.VideoOwner{
			Username:  m.OwnerUsername.String,
			FullName:  m.OwnerFullName.String,
			AvatarURL: m.OwnerAvatarURL.String,
		},
		CreatedAt: m.CreatedAt,
		WatchedAt: m.WatchedAt,
	}
}

// ToDomainWatchedVideoSlice converts a slice of rows, preserving order.
func ToDomainWatchedVideoSlice(ms []models.WatchHistoryRow) []domain.WatchedVideo {
	ds := make([]domain.WatchedVideo, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWatchedVideo(m)
	}
	return ds
}
