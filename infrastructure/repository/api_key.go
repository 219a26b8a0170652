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

const apiKeyColumns = "id, api_key, is_active, created_at, updated_at"

type APIKeyRepository interface {
	List(ctx context.Context, filters domain.APIKeyFilters) ([]*domain.APIKey, int, error)
	Insert(ctx context.Context, apiKey string) (*domain.APIKey, error)
	UpdateStatus(ctx context.Context, apiKey string, isActive bool) (*domain.APIKey, error)
}

type apiKeyRepository struct {
	conn *postgres.Connection
}

func NewAPIKeyRepository(conn *postgres.Connection) APIKeyRepository {
	return &apiKeyRepository{
		conn: conn,
	}
}

func (r *apiKeyRepository) List(ctx context.Context, filters domain.APIKeyFilters) ([]*domain.APIKey, int, error) {
	where := squirrel.And{}
	if filters.APIKey != "" {
		where = append(where, squirrel.ILike{"api_key": "%" + filters.APIKey + "%"})
	}

	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From("google_api_keys").
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
		Select(apiKeyColumns).
		From("google_api_keys").
		Where(where).
		OrderBy("created_at ASC").
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

	keys := make([]*domain.APIKey, 0)
	for rows.Next() {
		key := &domain.APIKey{}
		if err := rows.Scan(&key.ID, &key.Key, &key.IsActive, &key.CreatedAt, &key.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan api key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate api keys: %w", err)
	}

	return keys, total, nil
}

// Insert registers a new active key. It returns domain.ErrAPIKeyAlreadyExists
// when the key is already stored.
func (r *apiKeyRepository) Insert(ctx context.Context, apiKey string) (*domain.APIKey, error) {
	query, args, err := squirrel.
		Insert("google_api_keys").
		Columns("api_key", "is_active").
		Values(apiKey, true).
		Suffix("ON CONFLICT (api_key) DO NOTHING RETURNING " + apiKeyColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	key, err := scanAPIKey(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAPIKeyAlreadyExists
		}
		return nil, execError(err)
	}

	return key, nil
}

func (r *apiKeyRepository) UpdateStatus(ctx context.Context, apiKey string, isActive bool) (*domain.APIKey, error) {
	query, args, err := squirrel.
		Update("google_api_keys").
		Set("is_active", isActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"api_key": apiKey}).
		Suffix("RETURNING " + apiKeyColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	key, err := scanAPIKey(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAPIKeyNotFound
		}
		return nil, execError(err)
	}

	return key, nil
}

func scanAPIKey(row *sql.Row) (*domain.APIKey, error) {
	key := &domain.APIKey{}
	if err := row.Scan(&key.ID, &key.Key, &key.IsActive, &key.CreatedAt, &key.UpdatedAt); err != nil {
		return nil, err
	}
	return key, nil
}
