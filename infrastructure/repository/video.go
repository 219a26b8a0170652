package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/youtube-data-api/infrastructure/database/postgres"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

type VideoRepository interface {
	UpsertVideos(ctx context.Context, videos []*domain.Video) error
	UpsertVideoStatistics(ctx context.Context, stats []*domain.VideoStatistics) error
	UpsertKeywordVideoLinks(ctx context.Context, links []domain.KeywordVideo) error
}

type videoRepository struct {
	conn *postgres.Connection
}

func NewVideoRepository(conn *postgres.Connection) VideoRepository {
	return &videoRepository{
		conn: conn,
	}
}

func (r *videoRepository) UpsertVideos(ctx context.Context, videos []*domain.Video) error {
	videos = dedupe(videos, func(v *domain.Video) string { return v.VideoID })
	if len(videos) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("yt_video").
		Columns(
			"channel_id",
			"video_id",
			"video_title",
			"video_published_at",
			"video_thumbnail_url",
			"video_duration",
			"video_duration_seconds",
			"video_category_id",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, v := range videos {
		query = query.Values(
			v.ChannelID,
			v.VideoID,
			v.Title,
			v.PublishedAt,
			v.ThumbnailURL,
			v.Duration,
			v.DurationSeconds,
			v.CategoryID,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (video_id) DO UPDATE SET
			video_title = EXCLUDED.video_title,
			video_thumbnail_url = EXCLUDED.video_thumbnail_url,
			video_duration = EXCLUDED.video_duration,
			video_duration_seconds = EXCLUDED.video_duration_seconds,
			video_category_id = EXCLUDED.video_category_id
	`)

	return execInsert(ctx, r.conn, query)
}

func (r *videoRepository) UpsertVideoStatistics(ctx context.Context, stats []*domain.VideoStatistics) error {
	stats = dedupe(stats, func(s *domain.VideoStatistics) string { return s.VideoID + "|" + s.SnapshotDate })
	if len(stats) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("yt_video_statistics").
		Columns("channel_id", "video_id", "snapshot_date", "total_views", "total_likes", "total_favorites", "total_comments").
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range stats {
		query = query.Values(s.ChannelID, s.VideoID, s.SnapshotDate, s.TotalViews, s.TotalLikes, s.TotalFavorites, s.TotalComments)
	}

	query = query.Suffix(`
		ON CONFLICT (video_id, snapshot_date) DO UPDATE SET
			total_views = EXCLUDED.total_views,
			total_likes = EXCLUDED.total_likes,
			total_favorites = EXCLUDED.total_favorites,
			total_comments = EXCLUDED.total_comments
	`)

	return execInsert(ctx, r.conn, query)
}

// UpsertKeywordVideoLinks records which videos a keyword search surfaced.
func (r *videoRepository) UpsertKeywordVideoLinks(ctx context.Context, links []domain.KeywordVideo) error {
	links = dedupe(links, func(l domain.KeywordVideo) string { return l.VideoID + "|" + itoa(l.KeywordID) })
	if len(links) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("keywords_videos").
		Columns("keyword_id", "video_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, l := range links {
		query = query.Values(l.KeywordID, l.VideoID)
	}

	query = query.Suffix("ON CONFLICT (video_id, keyword_id) DO NOTHING")

	return execInsert(ctx, r.conn, query)
}
