// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/jackc/pgerrcode"
)

// execSingle runs a DML statement expected to touch exactly one row.
// Zero affected rows yields [ErrNotFound], a unique violation yields
// [ErrAlreadyExists].
func (db *DB) execSingle(ctx context.Context, funcName string, builder interface {
	ToSql() (string, []any, error)
}) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Warn().Str("func", funcName).Msg("record already exists")
			return ErrAlreadyExists
		}
		log.Err(err).Str("func", funcName).Stringer("class", db.classify(err)).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
