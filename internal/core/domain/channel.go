package domain

import "time"

// ChannelProfile is a user's public page along with subscription counts.
type ChannelProfile struct {
	UserID                    string
	Username                  string
	Email                     string
	FullName                  string
	AvatarURL                 string
	CoverImageURL             string
	SubscribersCount          int64
	ChannelsSubscribedToCount int64
	IsSubscribed              bool
}

// VideoOwner is the projection of a user embedded in watch history entries.
type VideoOwner struct {
	Username  string
	FullName  string
	AvatarURL string
}

// WatchedVideo is one entry of a user's watch history.
type WatchedVideo struct {
	VideoID     string
	VideoFile   string
	Thumbnail   string
	Title       string
	Description string
	Duration    float64
	Views       int64
	IsPublished bool
	Owner       VideoOwner
	CreatedAt   time.Time
	WatchedAt   time.Time
}
