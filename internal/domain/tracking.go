package domain

import "time"

// TrackingStatus mirrors the is_deleted column of channel_setting and
// keyword_setting.
type TrackingStatus int

const (
	TrackingDeleted TrackingStatus = 1
	TrackingActive  TrackingStatus = 2
)

func (s TrackingStatus) Valid() bool {
	return s == TrackingDeleted || s == TrackingActive
}

type TrackedChannel struct {
	ID          int64          `json:"id"`
	ChannelID   string         `json:"channel_id"`
	ChannelName string         `json:"channel_name"`
	IsDeleted   TrackingStatus `json:"is_deleted"`
	CreatedAt   time.Time      `json:"created_at"`
}

type TrackedKeyword struct {
	ID        int64          `json:"id"`
	Keyword   string         `json:"keyword"`
	IsDeleted TrackingStatus `json:"is_deleted"`
	CreatedAt time.Time      `json:"created_at"`
}

type CreateTrackedChannelRequest struct {
	ChannelID   string `json:"channelId"`
	ChannelName string `json:"channelName"`
}

type CreateTrackedKeywordRequest struct {
	Keyword string `json:"keyword"`
}

type UpdateTrackingStatusRequest struct {
	IsDeleted TrackingStatus `json:"isDeleted"`
}
