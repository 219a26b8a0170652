package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/youtube-data-api/infrastructure/database/postgres"
)

const uniqueViolation = "23505"

func execError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func execInsert(ctx context.Context, conn postgres.Queryer, query squirrel.InsertBuilder) error {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return execError(err)
	}

	return nil
}

// dedupe keeps the last occurrence of every key, preserving first-seen order.
// A single INSERT ... ON CONFLICT cannot touch the same row twice.
func dedupe[T any](items []T, key func(T) string) []T {
	index := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			out[i] = item
			continue
		}
		index[k] = len(out)
		out = append(out, item)
	}
	return out
}
