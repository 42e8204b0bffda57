// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

// sqlite accepts "?" placeholders, the squirrel default.
var lite = sq.StatementBuilder

type localStateRepository struct {
	*DB
}

// NewLocalStateRepository returns a SQLite-backed [KeyValueRepository] over
// the local_state table.
func NewLocalStateRepository(db *DB) KeyValueRepository {
	return &localStateRepository{DB: db}
}

func (l *localStateRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := lite.Select("value").From("local_state").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStateRepository.Get").Str("key", key).Msg("error reading local state")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (l *localStateRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := lite.
		Insert("local_state").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStateRepository.Set").Str("key", key).Msg("error writing local state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := lite.Delete("local_state").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStateRepository.Delete").Str("key", key).Msg("error deleting local state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStateRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := lite.
		Select("key").
		From("local_state").
		Where(sq.Expr("substr(key, 1, ?) = ?", len(prefix), prefix)).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStateRepository.Keys").Msg("error listing local state keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}
