package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/youtube-data-api/infrastructure/database/postgres"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

type ChannelRepository interface {
	UpsertChannels(ctx context.Context, channels []*domain.Channel) error
	UpsertChannelStatistics(ctx context.Context, stats []*domain.ChannelStatistics) error
}

type channelRepository struct {
	conn *postgres.Connection
}

func NewChannelRepository(conn *postgres.Connection) ChannelRepository {
	return &channelRepository{
		conn: conn,
	}
}

func (r *channelRepository) UpsertChannels(ctx context.Context, channels []*domain.Channel) error {
	channels = dedupe(channels, func(c *domain.Channel) string { return c.ChannelID })
	if len(channels) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("yt_channel").
		Columns("channel_id", "channel_name", "channel_created_at", "channel_description", "channel_thumbnail_url").
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range channels {
		query = query.Values(c.ChannelID, c.Name, c.CreatedAt, c.Description, c.ThumbnailURL)
	}

	query = query.Suffix(`
		ON CONFLICT (channel_id) DO UPDATE SET
			channel_name = EXCLUDED.channel_name,
			channel_description = EXCLUDED.channel_description,
			channel_thumbnail_url = EXCLUDED.channel_thumbnail_url
	`)

	return execInsert(ctx, r.conn, query)
}

func (r *channelRepository) UpsertChannelStatistics(ctx context.Context, stats []*domain.ChannelStatistics) error {
	stats = dedupe(stats, func(s *domain.ChannelStatistics) string { return s.ChannelID + "|" + s.SnapshotDate })
	if len(stats) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("yt_channel_statistics").
		Columns("channel_id", "snapshot_date", "subscriber_count", "view_count", "video_count").
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range stats {
		query = query.Values(s.ChannelID, s.SnapshotDate, s.SubscriberCount, s.ViewCount, s.VideoCount)
	}

	query = query.Suffix(`
		ON CONFLICT (channel_id, snapshot_date) DO UPDATE SET
			subscriber_count = EXCLUDED.subscriber_count,
			view_count = EXCLUDED.view_count,
			video_count = EXCLUDED.video_count
	`)

	return execInsert(ctx, r.conn, query)
}
