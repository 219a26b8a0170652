package domain

import "time"

type Video struct {
	ChannelID       string     `json:"channel_id"`
	VideoID         string     `json:"video_id"`
	Title           string     `json:"video_title"`
	PublishedAt     *time.Time `json:"video_published_at"`
	ThumbnailURL    string     `json:"video_thumbnail_url"`
	Duration        string     `json:"video_duration"`
	DurationSeconds int64      `json:"video_duration_seconds"`
	CategoryID      string     `json:"video_category_id"`
}

// VideoStatistics is a daily snapshot, unique per (VideoID, SnapshotDate).
type VideoStatistics struct {
	ChannelID      string `json:"channel_id"`
	VideoID        string `json:"video_id"`
	SnapshotDate   string `json:"snapshot_date"`
	TotalViews     uint64 `json:"total_views"`
	TotalLikes     uint64 `json:"total_likes"`
	TotalFavorites uint64 `json:"total_favorites"`
	TotalComments  uint64 `json:"total_comments"`
}

// VideoDetails is one normalized videos.list item.
type VideoDetails struct {
	Video      *Video
	Statistics *VideoStatistics
}

// KeywordVideo links a tracked keyword to a video found by searching it.
type KeywordVideo struct {
	KeywordID int64  `json:"keyword_id"`
	VideoID   string `json:"video_id"`
}
