package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

func TestVideoRepository_UpsertVideos(t *testing.T) {
	published := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty batch does not touch the database", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewVideoRepository(conn)

		require.NoError(t, repo.UpsertVideos(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeated video ids collapse to the last occurrence", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewVideoRepository(conn)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO yt_video (channel_id,video_id,video_title,video_published_at,video_thumbnail_url,video_duration,video_duration_seconds,video_category_id) VALUES ($1,$2,$3,$4,$5,$6,$7,$8),($9,$10,$11,$12,$13,$14,$15,$16)")+`\s+ON CONFLICT \(video_id\) DO UPDATE SET`).
			WithArgs(
				"UC1", "v1", "second title", published, "t1", "PT1M", int64(60), "10",
				"UC1", "v2", "other", published, "t2", "PT2M", int64(120), "10",
			).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.UpsertVideos(context.Background(), []*domain.Video{
			{ChannelID: "UC1", VideoID: "v1", Title: "first title", PublishedAt: &published, ThumbnailURL: "t1", Duration: "PT1M", DurationSeconds: 60, CategoryID: "10"},
			{ChannelID: "UC1", VideoID: "v2", Title: "other", PublishedAt: &published, ThumbnailURL: "t2", Duration: "PT2M", DurationSeconds: 120, CategoryID: "10"},
			{ChannelID: "UC1", VideoID: "v1", Title: "second title", PublishedAt: &published, ThumbnailURL: "t1", Duration: "PT1M", DurationSeconds: 60, CategoryID: "10"},
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing publish time is written as NULL", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewVideoRepository(conn)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO yt_video")).
			WithArgs("UC1", "v3", "no date", nil, "", "", int64(0), "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpsertVideos(context.Background(), []*domain.Video{
			{ChannelID: "UC1", VideoID: "v3", Title: "no date"},
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVideoRepository_UpsertVideoStatistics(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewVideoRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (video_id, snapshot_date) DO UPDATE SET")).
		WithArgs("UC1", "v1", "2026-10-18", uint64(1000), uint64(10), uint64(0), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertVideoStatistics(context.Background(), []*domain.VideoStatistics{
		{ChannelID: "UC1", VideoID: "v1", SnapshotDate: "2026-10-18", TotalViews: 1000, TotalLikes: 10, TotalComments: 3},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_UpsertKeywordVideoLinks(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewVideoRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO keywords_videos (keyword_id,video_id) VALUES ($1,$2),($3,$4) ON CONFLICT (video_id, keyword_id) DO NOTHING")).
		WithArgs(int64(3), "v1", int64(3), "v2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.UpsertKeywordVideoLinks(context.Background(), []domain.KeywordVideo{
		{KeywordID: 3, VideoID: "v1"},
		{KeywordID: 3, VideoID: "v2"},
		{KeywordID: 3, VideoID: "v1"},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
