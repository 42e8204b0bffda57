// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
)

// ClientStorages groups the client-side storage used by the service layer.
type ClientStorages struct {
	// Persistence holds the admin session flag and reading progress.
	Persistence *PersistenceClient

	db *DB
}

// NewClientStorages opens the local state store described by cfg.
//
// An empty LocalDSN (or ":memory:") keeps state in process memory. Any other
// value is a SQLite file that is created if missing and migrated.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	if cfg.LocalDSN == "" || cfg.LocalDSN == ":memory:" {
		log.Debug().Str("func", "NewClientStorages").Msg("using in-memory local state")
		return &ClientStorages{
			Persistence: NewPersistenceClient(NewMemoryKeyValueRepository(), log),
		}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.LocalDSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Persistence: NewPersistenceClient(NewLocalStateRepository(db), log),
		db:          db,
	}, nil
}

// Close releases the local database, if one is open.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
