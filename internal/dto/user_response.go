package dto

import (
	"time"

	"github.com/Tushar3330/Mytube/internal/core/domain"
)

// UserResponse is the sanitized view of a user returned to clients.
// It deliberately has no password or refresh token fields.
type UserResponse struct {
	UserID     string    `json:"_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.AvatarURL,
		CoverImage: user.CoverImageURL,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// ChannelProfileResponse is the channel page with subscription counts.
type ChannelProfileResponse struct {
	UserID                    string `json:"_id"`
	Username                  string `json:"username"`
	Email                     string `json:"email"`
	FullName                  string `json:"fullName"`
	Avatar                    string `json:"avatar"`
	CoverImage                string `json:"coverImage"`
	SubscribersCount          int64  `json:"subscribersCount"`
	ChannelsSubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
}

func ToChannelProfileResponse(p *domain.ChannelProfile) ChannelProfileResponse {
	return ChannelProfileResponse{
		UserID:                    p.UserID,
		Username:                  p.Username,
		Email:                     p.Email,
		FullName:                  p.FullName,
		Avatar:                    p.AvatarURL,
		CoverImage:                p.CoverImageURL,
		SubscribersCount:          p.SubscribersCount,
		ChannelsSubscribedToCount: p.ChannelsSubscribedToCount,
		IsSubscribed:              p.IsSubscribed,
	}
}

// VideoOwnerResponse is the owner projection embedded in watch history.
type VideoOwnerResponse struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// WatchHistoryItemResponse is one watched video.
type WatchHistoryItemResponse struct {
	VideoID     string             `json:"_id"`
	VideoFile   string             `json:"videoFile"`
	Thumbnail   string             `json:"thumbnail"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    float64            `json:"duration"`
	Views       int64              `json:"views"`
	IsPublished bool               `json:"isPublished"`
	Owner       VideoOwnerResponse `json:"owner"`
	CreatedAt   time.Time          `json:"createdAt"`
	WatchedAt   time.Time          `json:"watchedAt"`
}

func ToWatchHistoryResponse(videos []domain.WatchedVideo) []WatchHistoryItemResponse {
	items := make([]WatchHistoryItemResponse, len(videos))
	for i, v := range videos {
		items[i] = WatchHistoryItemResponse{
			VideoID:     v.VideoID,
			VideoFile:   v.VideoFile,
			Thumbnail:   v.Thumbnail,
			Title:       v.Title,
			Description: v.Description,
			Duration:    v.Duration,
			Views:       v.Views,
			IsPublished: v.IsPublished,
			Owner: VideoOwnerResponse{
				Username: v.Owner.Username,
				FullName: v.Owner.FullName,
				Avatar:   v.Owner.AvatarURL,
			},
			CreatedAt: v.CreatedAt,
			WatchedAt: v.WatchedAt,
		}
	}
	return items
}
