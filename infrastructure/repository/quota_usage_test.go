package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/youtube-data-api/infrastructure/database/postgres"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

func newMockConn(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

var usageColumns = []string{"id", "google_api_key_id", "usage_date", "quota_limit", "quota_used", "last_used_at", "updated_at"}

func TestQuotaUsageRepository_FindAvailable(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	t.Run("returns the least recently used record with headroom", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewQuotaUsageRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE gak.is_active = $1 AND gau.usage_date = $2 AND gau.quota_limit - gau.quota_used > $3 ORDER BY gau.last_used_at ASC LIMIT 1")).
			WithArgs(true, "2026-10-18", 40).
			WillReturnRows(sqlmock.NewRows([]string{"id", "google_api_key_id", "api_key", "usage_date", "quota_limit", "quota_used", "last_used_at", "updated_at"}).
				AddRow(7, 3, "key-a", "2026-10-18", 10000, 9950, now, now))

		record, err := repo.FindAvailable(context.Background(), "2026-10-18", 40)

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, int64(7), record.ID)
		assert.Equal(t, "key-a", record.APIKey)
		assert.Equal(t, 50, record.Remaining())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil when no record qualifies", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewQuotaUsageRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("gau.quota_limit - gau.quota_used > $3")).
			WithArgs(true, "2026-10-18", 100).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		record, err := repo.FindAvailable(context.Background(), "2026-10-18", 100)

		require.NoError(t, err)
		assert.Nil(t, record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewQuotaUsageRepository(conn)

		mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

		record, err := repo.FindAvailable(context.Background(), "2026-10-18", 100)

		assert.Error(t, err)
		assert.Nil(t, record)
	})
}

func TestQuotaUsageRepository_Provision(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	selectKey := regexp.QuoteMeta("ORDER BY gak.created_at ASC LIMIT 1 FOR UPDATE SKIP LOCKED")
	insertUsage := regexp.QuoteMeta("INSERT INTO google_api_usage")

	t.Run("creates a record for the oldest key without one", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewQuotaUsageRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(selectKey).
			WithArgs(true, "2026-10-18").
			WillReturnRows(sqlmock.NewRows([]string{"id", "api_key"}).AddRow(1, "oldest-key"))
		mock.ExpectQuery(insertUsage).
			WithArgs(int64(1), "2026-10-18", 10000, 0).
			WillReturnRows(sqlmock.NewRows(usageColumns).AddRow(11, 1, "2026-10-18", 10000, 0, now, now))
		mock.ExpectCommit()

		record, err := repo.Provision(context.Background(), "2026-10-18", 10000)

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, int64(11), record.ID)
		assert.Equal(t, "oldest-key", record.APIKey)
		assert.Equal(t, 0, record.QuotaUsed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil when every key already has a record", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewQuotaUsageRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(selectKey).WillReturnRows(sqlmock.NewRows([]string{"id", "api_key"}))
		mock.ExpectCommit()

		record, err := repo.Provision(context.Background(), "2026-10-18", 10000)

		require.NoError(t, err)
		assert.Nil(t, record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a unique violation to a provisioning conflict and rolls back", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewQuotaUsageRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(selectKey).
			WillReturnRows(sqlmock.NewRows([]string{"id", "api_key"}).AddRow(1, "oldest-key"))
		mock.ExpectQuery(insertUsage).WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		record, err := repo.Provision(context.Background(), "2026-10-18", 10000)

		assert.ErrorIs(t, err, domain.ErrProvisioningConflict)
		assert.Nil(t, record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuotaUsageRepository_Reserve(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	update := regexp.QuoteMeta("UPDATE google_api_usage SET quota_used = quota_used + $1, last_used_at = NOW(), updated_at = NOW() WHERE id = $2 AND quota_limit - quota_used > $3")

	t.Run("debits when headroom is still available", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewQuotaUsageRepository(conn)

		mock.ExpectQuery(update).
			WithArgs(100, int64(7), 100).
			WillReturnRows(sqlmock.NewRows(usageColumns).AddRow(7, 3, "2026-10-18", 10000, 600, now, now))

		record, err := repo.Reserve(context.Background(), 7, 100)

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, 600, record.QuotaUsed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil when the headroom was consumed concurrently", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewQuotaUsageRepository(conn)

		mock.ExpectQuery(update).
			WithArgs(100, int64(7), 100).
			WillReturnRows(sqlmock.NewRows(usageColumns))

		record, err := repo.Reserve(context.Background(), 7, 100)

		require.NoError(t, err)
		assert.Nil(t, record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuotaUsageRepository_DebitAndMarkExhausted(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewQuotaUsageRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE google_api_usage SET quota_used = quota_used + $1, last_used_at = NOW(), updated_at = NOW() WHERE id = $2")).
		WithArgs(25, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE google_api_usage SET quota_used = quota_limit, updated_at = NOW() WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Debit(context.Background(), 7, 25))
	require.NoError(t, repo.MarkExhausted(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuotaUsageRepository_ListUsage(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewQuotaUsageRepository(conn)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM google_api_usage gau JOIN google_api_keys gak ON gak.id = gau.google_api_key_id WHERE (gak.api_key ILIKE $1 AND gau.usage_date >= $2)")).
		WithArgs("%abc%", "2026-10-01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY gau.usage_date DESC, gak.api_key ASC LIMIT 5 OFFSET 5")).
		WithArgs("%abc%", "2026-10-01").
		WillReturnRows(sqlmock.NewRows([]string{"api_key", "usage_date", "quota_limit", "quota_used", "last_used_at"}).
			AddRow("abc-1", "2026-10-18", 10000, 300, now))

	usage, total, err := repo.ListUsage(context.Background(), domain.QuotaUsageFilters{
		APIKey:     "abc",
		StartDate:  &start,
		Pagination: domain.Pagination{Page: 2, Limit: 5},
	})

	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, usage, 1)
	assert.Equal(t, "abc-1", usage[0].APIKey)
	assert.Equal(t, 300, usage[0].QuotaUsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
