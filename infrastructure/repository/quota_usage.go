package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/youtube-data-api/infrastructure/database/postgres"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

const (
	apiUsageTable = "google_api_usage gau"
	apiKeysTable  = "google_api_keys gak"

	usageDateColumn  = "to_char(gau.usage_date, 'YYYY-MM-DD')"
	usageReturning   = "RETURNING id, google_api_key_id, to_char(usage_date, 'YYYY-MM-DD'), quota_limit, quota_used, last_used_at, updated_at"
	usageHeadroomSQL = "quota_limit - quota_used > ?"
	// joined with google_api_keys, both columns qualified
	joinedHeadroomSQL = "gau.quota_limit - gau.quota_used > ?"
)

// QuotaUsageRepository stores the per key, per day quota ledger.
type QuotaUsageRepository interface {
	FindAvailable(ctx context.Context, usageDate string, cost int) (*domain.QuotaRecord, error)
	Provision(ctx context.Context, usageDate string, quotaLimit int) (*domain.QuotaRecord, error)
	Reserve(ctx context.Context, recordID int64, cost int) (*domain.QuotaRecord, error)
	Debit(ctx context.Context, recordID int64, amount int) error
	MarkExhausted(ctx context.Context, recordID int64) error
	ListUsage(ctx context.Context, filters domain.QuotaUsageFilters) ([]*domain.QuotaUsage, int, error)
}

type quotaUsageRepository struct {
	conn *postgres.Connection
}

func NewQuotaUsageRepository(conn *postgres.Connection) QuotaUsageRepository {
	return &quotaUsageRepository{
		conn: conn,
	}
}

// FindAvailable returns today's record of an active key with strictly more
// headroom than cost, least recently used first. It returns nil when none
// qualifies.
func (r *quotaUsageRepository) FindAvailable(ctx context.Context, usageDate string, cost int) (*domain.QuotaRecord, error) {
	query, args, err := squirrel.
		Select(
			"gau.id",
			"gau.google_api_key_id",
			"gak.api_key",
			usageDateColumn,
			"gau.quota_limit",
			"gau.quota_used",
			"gau.last_used_at",
			"gau.updated_at",
		).
		From(apiUsageTable).
		Join("google_api_keys gak ON gak.id = gau.google_api_key_id").
		Where(squirrel.Eq{"gak.is_active": true, "gau.usage_date": usageDate}).
		Where(joinedHeadroomSQL, cost).
		OrderBy("gau.last_used_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	record := &domain.QuotaRecord{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.APIKeyID,
		&record.APIKey,
		&record.UsageDate,
		&record.QuotaLimit,
		&record.QuotaUsed,
		&record.LastUsedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, execError(err)
	}

	return record, nil
}

// Provision creates today's record for the oldest active key that has none
// yet. The select and the insert share one transaction; a concurrent insert
// of the same key-day surfaces as domain.ErrProvisioningConflict. It returns
// nil when every active key already has a record for usageDate.
func (r *quotaUsageRepository) Provision(ctx context.Context, usageDate string, quotaLimit int) (*domain.QuotaRecord, error) {
	var record *domain.QuotaRecord

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		selectSQL, selectArgs, err := squirrel.
			Select("gak.id", "gak.api_key").
			From(apiKeysTable).
			Where(squirrel.Eq{"gak.is_active": true}).
			Where("NOT EXISTS (SELECT 1 FROM google_api_usage gau WHERE gau.google_api_key_id = gak.id AND gau.usage_date = ?)", usageDate).
			OrderBy("gak.created_at ASC").
			Limit(1).
			Suffix("FOR UPDATE SKIP LOCKED").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		var (
			keyID  int64
			apiKey string
		)
		if err := tx.QueryRowContext(ctx, selectSQL, selectArgs...).Scan(&keyID, &apiKey); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return execError(err)
		}

		insertSQL, insertArgs, err := squirrel.
			Insert("google_api_usage").
			Columns("google_api_key_id", "usage_date", "quota_limit", "quota_used", "last_used_at", "updated_at").
			Values(keyID, usageDate, quotaLimit, 0, squirrel.Expr("NOW()"), squirrel.Expr("NOW()")).
			Suffix(usageReturning).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		created, err := scanUsage(tx.QueryRowContext(ctx, insertSQL, insertArgs...))
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrProvisioningConflict
			}
			return execError(err)
		}

		created.APIKey = apiKey
		record = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Reserve debits cost only if the record still has strictly more headroom
// than cost. It returns nil when another caller consumed the headroom first.
func (r *quotaUsageRepository) Reserve(ctx context.Context, recordID int64, cost int) (*domain.QuotaRecord, error) {
	query, args, err := squirrel.
		Update("google_api_usage").
		Set("quota_used", squirrel.Expr("quota_used + ?", cost)).
		Set("last_used_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": recordID}).
		Where(usageHeadroomSQL, cost).
		Suffix(usageReturning).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	record, err := scanUsage(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, execError(err)
	}

	return record, nil
}

// Debit adds amount to the record unconditionally.
func (r *quotaUsageRepository) Debit(ctx context.Context, recordID int64, amount int) error {
	query, args, err := squirrel.
		Update("google_api_usage").
		Set("quota_used", squirrel.Expr("quota_used + ?", amount)).
		Set("last_used_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": recordID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return execError(err)
	}

	return nil
}

// MarkExhausted consumes all remaining headroom of the record.
func (r *quotaUsageRepository) MarkExhausted(ctx context.Context, recordID int64) error {
	query, args, err := squirrel.
		Update("google_api_usage").
		Set("quota_used", squirrel.Expr("quota_limit")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": recordID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return execError(err)
	}

	return nil
}

func (r *quotaUsageRepository) ListUsage(ctx context.Context, filters domain.QuotaUsageFilters) ([]*domain.QuotaUsage, int, error) {
	where := squirrel.And{}
	if filters.APIKey != "" {
		where = append(where, squirrel.ILike{"gak.api_key": "%" + filters.APIKey + "%"})
	}
	if filters.StartDate != nil {
		where = append(where, squirrel.GtOrEq{"gau.usage_date": filters.StartDate.Format("2006-01-02")})
	}
	if filters.EndDate != nil {
		where = append(where, squirrel.LtOrEq{"gau.usage_date": filters.EndDate.Format("2006-01-02")})
	}

	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(apiUsageTable).
		Join("google_api_keys gak ON gak.id = gau.google_api_key_id").
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, execError(err)
	}

	pagination := filters.Pagination.Normalize()
	listSQL, listArgs, err := squirrel.
		Select("gak.api_key", usageDateColumn, "gau.quota_limit", "gau.quota_used", "gau.last_used_at").
		From(apiUsageTable).
		Join("google_api_keys gak ON gak.id = gau.google_api_key_id").
		Where(where).
		OrderBy("gau.usage_date DESC", "gak.api_key ASC").
		Limit(uint64(pagination.Limit)).
		Offset(pagination.Offset()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, execError(err)
	}
	defer rows.Close()

	usage := make([]*domain.QuotaUsage, 0)
	for rows.Next() {
		u := &domain.QuotaUsage{}
		if err := rows.Scan(&u.APIKey, &u.UsageDate, &u.QuotaLimit, &u.QuotaUsed, &u.LastUsedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan usage: %w", err)
		}
		usage = append(usage, u)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate usage: %w", err)
	}

	return usage, total, nil
}

func scanUsage(row *sql.Row) (*domain.QuotaRecord, error) {
	record := &domain.QuotaRecord{}
	if err := row.Scan(
		&record.ID,
		&record.APIKeyID,
		&record.UsageDate,
		&record.QuotaLimit,
		&record.QuotaUsed,
		&record.LastUsedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return record, nil
}
