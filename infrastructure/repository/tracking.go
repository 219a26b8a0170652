package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/youtube-data-api/infrastructure/database/postgres"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

const (
	channelSettingTable = "channel_setting"
	keywordSettingTable = "keyword_setting"
)

// TrackingRepository manages the channels and keywords the ingestion follows.
type TrackingRepository interface {
	ListActiveChannelIDs(ctx context.Context) ([]string, error)
	ListActiveKeywords(ctx context.Context) ([]*domain.TrackedKeyword, error)

	ListChannels(ctx context.Context, pagination domain.Pagination) ([]*domain.TrackedChannel, int, error)
	InsertChannel(ctx context.Context, req *domain.CreateTrackedChannelRequest) (*domain.TrackedChannel, error)
	UpdateChannelStatus(ctx context.Context, id int64, status domain.TrackingStatus) error

	ListKeywords(ctx context.Context, pagination domain.Pagination) ([]*domain.TrackedKeyword, int, error)
	InsertKeyword(ctx context.Context, req *domain.CreateTrackedKeywordRequest) (*domain.TrackedKeyword, error)
	UpdateKeywordStatus(ctx context.Context, id int64, status domain.TrackingStatus) error
}

type trackingRepository struct {
	conn *postgres.Connection
}

func NewTrackingRepository(conn *postgres.Connection) TrackingRepository {
	return &trackingRepository{
		conn: conn,
	}
}

func (r *trackingRepository) ListActiveChannelIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("channel_id").
		From(channelSettingTable).
		Where(squirrel.Eq{"is_deleted": domain.TrackingActive}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan channel id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate channels: %w", err)
	}

	return ids, nil
}

func (r *trackingRepository) ListActiveKeywords(ctx context.Context) ([]*domain.TrackedKeyword, error) {
	return r.listKeywords(ctx, squirrel.Eq{"is_deleted": domain.TrackingActive}, nil)
}

func (r *trackingRepository) ListChannels(ctx context.Context, pagination domain.Pagination) ([]*domain.TrackedChannel, int, error) {
	total, err := r.count(ctx, channelSettingTable)
	if err != nil {
		return nil, 0, err
	}

	p := pagination.Normalize()
	query, args, err := squirrel.
		Select("id", "channel_id", "channel_name", "is_deleted", "created_at").
		From(channelSettingTable).
		OrderBy("created_at DESC").
		Limit(uint64(p.Limit)).
		Offset(p.Offset()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, execError(err)
	}
	defer rows.Close()

	channels := make([]*domain.TrackedChannel, 0)
	for rows.Next() {
		c := &domain.TrackedChannel{}
		if err := rows.Scan(&c.ID, &c.ChannelID, &c.ChannelName, &c.IsDeleted, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate channels: %w", err)
	}

	return channels, total, nil
}

// InsertChannel starts tracking a channel. Tracking an already known channel
// reactivates it.
func (r *trackingRepository) InsertChannel(ctx context.Context, req *domain.CreateTrackedChannelRequest) (*domain.TrackedChannel, error) {
	query, args, err := squirrel.
		Insert(channelSettingTable).
		Columns("channel_id", "channel_name", "is_deleted").
		Values(req.ChannelID, req.ChannelName, domain.TrackingActive).
		Suffix(`
			ON CONFLICT (channel_id) DO UPDATE SET
				channel_name = COALESCE(NULLIF(EXCLUDED.channel_name, ''), channel_setting.channel_name),
				is_deleted = EXCLUDED.is_deleted
			RETURNING id, channel_id, channel_name, is_deleted, created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	c := &domain.TrackedChannel{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.ChannelID, &c.ChannelName, &c.IsDeleted, &c.CreatedAt)
	if err != nil {
		return nil, execError(err)
	}

	return c, nil
}

func (r *trackingRepository) UpdateChannelStatus(ctx context.Context, id int64, status domain.TrackingStatus) error {
	return r.updateStatus(ctx, channelSettingTable, id, status)
}

func (r *trackingRepository) ListKeywords(ctx context.Context, pagination domain.Pagination) ([]*domain.TrackedKeyword, int, error) {
	total, err := r.count(ctx, keywordSettingTable)
	if err != nil {
		return nil, 0, err
	}

	p := pagination.Normalize()
	keywords, err := r.listKeywords(ctx, nil, &p)
	if err != nil {
		return nil, 0, err
	}

	return keywords, total, nil
}

// InsertKeyword starts tracking a keyword, reactivating it if it was deleted.
func (r *trackingRepository) InsertKeyword(ctx context.Context, req *domain.CreateTrackedKeywordRequest) (*domain.TrackedKeyword, error) {
	query, args, err := squirrel.
		Insert(keywordSettingTable).
		Columns("keyword", "is_deleted").
		Values(req.Keyword, domain.TrackingActive).
		Suffix(`
			ON CONFLICT (keyword) DO UPDATE SET
				is_deleted = EXCLUDED.is_deleted
			RETURNING id, keyword, is_deleted, created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	k := &domain.TrackedKeyword{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&k.ID, &k.Keyword, &k.IsDeleted, &k.CreatedAt)
	if err != nil {
		return nil, execError(err)
	}

	return k, nil
}

func (r *trackingRepository) UpdateKeywordStatus(ctx context.Context, id int64, status domain.TrackingStatus) error {
	return r.updateStatus(ctx, keywordSettingTable, id, status)
}

func (r *trackingRepository) listKeywords(ctx context.Context, where squirrel.Sqlizer, p *domain.Pagination) ([]*domain.TrackedKeyword, error) {
	builder := squirrel.
		Select("id", "keyword", "is_deleted", "created_at").
		From(keywordSettingTable).
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where).OrderBy("created_at ASC")
	} else {
		builder = builder.OrderBy("created_at DESC")
	}

	if p != nil {
		builder = builder.Limit(uint64(p.Limit)).Offset(p.Offset())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	keywords := make([]*domain.TrackedKeyword, 0)
	for rows.Next() {
		k := &domain.TrackedKeyword{}
		if err := rows.Scan(&k.ID, &k.Keyword, &k.IsDeleted, &k.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}
		keywords = append(keywords, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keywords: %w", err)
	}

	return keywords, nil
}

func (r *trackingRepository) count(ctx context.Context, table string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, execError(err)
	}

	return total, nil
}

func (r *trackingRepository) updateStatus(ctx context.Context, table string, id int64, status domain.TrackingStatus) error {
	query, args, err := squirrel.
		Update(table).
		Set("is_deleted", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return execError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrTrackingNotFound
	}

	return nil
}
