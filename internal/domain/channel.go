package domain

import "time"

type Channel struct {
	ChannelID    string     `json:"channel_id"`
	Name         string     `json:"channel_name"`
	CreatedAt    *time.Time `json:"channel_created_at"`
	Description  string     `json:"channel_description"`
	ThumbnailURL string     `json:"channel_thumbnail_url"`
}

// ChannelStatistics is a daily snapshot, unique per (ChannelID, SnapshotDate).
type ChannelStatistics struct {
	ChannelID       string `json:"channel_id"`
	SnapshotDate    string `json:"snapshot_date"`
	SubscriberCount uint64 `json:"subscriber_count"`
	ViewCount       uint64 `json:"view_count"`
	VideoCount      uint64 `json:"video_count"`
}

// ChannelDetails is one normalized channels.list item.
type ChannelDetails struct {
	Channel    *Channel
	Statistics *ChannelStatistics
}
