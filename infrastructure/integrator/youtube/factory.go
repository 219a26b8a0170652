package youtube

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sosodev/duration"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	ytapi "google.golang.org/api/youtube/v3"
)

func FactorySearchPage(resp *ytapi.SearchListResponse) *domain.SearchPage {
	page := &domain.SearchPage{}
	if resp == nil {
		return page
	}

	page.NextCursor = resp.NextPageToken
	page.Items = make([]domain.SearchItem, 0, len(resp.Items))

	for _, item := range resp.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}

		searchItem := domain.SearchItem{VideoID: item.Id.VideoId}
		if item.Snippet != nil {
			searchItem.ChannelID = item.Snippet.ChannelId
		}
		page.Items = append(page.Items, searchItem)
	}

	return page
}

func FactoryVideoDetails(resp *ytapi.VideoListResponse, snapshotDate string) []*domain.VideoDetails {
	if resp == nil {
		return nil
	}

	details := make([]*domain.VideoDetails, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil || item.Id == "" || item.Snippet == nil {
			logrus.Warn("youtube: skipping video without id or snippet")
			continue
		}

		video := &domain.Video{
			ChannelID:    item.Snippet.ChannelId,
			VideoID:      item.Id,
			Title:        item.Snippet.Title,
			PublishedAt:  parseTimestamp(item.Snippet.PublishedAt),
			ThumbnailURL: defaultThumbnail(item.Snippet.Thumbnails),
			CategoryID:   item.Snippet.CategoryId,
		}

		if item.ContentDetails != nil {
			video.Duration = item.ContentDetails.Duration
			video.DurationSeconds = durationSeconds(item.ContentDetails.Duration)
		}

		stats := &domain.VideoStatistics{
			ChannelID:    video.ChannelID,
			VideoID:      video.VideoID,
			SnapshotDate: snapshotDate,
		}
		if item.Statistics != nil {
			stats.TotalViews = item.Statistics.ViewCount
			stats.TotalLikes = item.Statistics.LikeCount
			stats.TotalFavorites = item.Statistics.FavoriteCount
			stats.TotalComments = item.Statistics.CommentCount
		}

		details = append(details, &domain.VideoDetails{Video: video, Statistics: stats})
	}

	return details
}

func FactoryChannelDetails(resp *ytapi.ChannelListResponse, snapshotDate string) []*domain.ChannelDetails {
	if resp == nil {
		return nil
	}

	details := make([]*domain.ChannelDetails, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil || item.Id == "" || item.Snippet == nil {
			logrus.Warn("youtube: skipping channel without id or snippet")
			continue
		}

		channel := &domain.Channel{
			ChannelID:    item.Id,
			Name:         item.Snippet.Title,
			CreatedAt:    parseTimestamp(item.Snippet.PublishedAt),
			Description:  item.Snippet.Description,
			ThumbnailURL: defaultThumbnail(item.Snippet.Thumbnails),
		}

		stats := &domain.ChannelStatistics{
			ChannelID:    item.Id,
			SnapshotDate: snapshotDate,
		}
		if item.Statistics != nil {
			stats.SubscriberCount = item.Statistics.SubscriberCount
			stats.ViewCount = item.Statistics.ViewCount
			stats.VideoCount = item.Statistics.VideoCount
		}

		details = append(details, &domain.ChannelDetails{Channel: channel, Statistics: stats})
	}

	return details
}

func defaultThumbnail(thumbnails *ytapi.ThumbnailDetails) string {
	if thumbnails == nil || thumbnails.Default == nil {
		return ""
	}
	return thumbnails.Default.Url
}

// parseTimestamp returns nil for a missing or malformed value so the column
// is stored as NULL.
func parseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logrus.WithField("value", value).Warn("youtube: invalid timestamp")
		return nil
	}
	return &t
}

// durationSeconds converts an ISO-8601 duration such as PT4M13S. Unparseable
// values count as zero.
func durationSeconds(value string) int64 {
	if value == "" {
		return 0
	}

	d, err := duration.Parse(value)
	if err != nil {
		logrus.WithField("value", value).Warn("youtube: invalid video duration")
		return 0
	}
	return int64(d.ToTimeDuration().Seconds())
}
