// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
)

// Storages groups the content repositories and the attachment storage used
// by the server service layer.
type Storages struct {
	ProfileRepository  ProfileRepository
	ProjectRepository  ProjectRepository
	ResourceRepository ResourceRepository
	MessageRepository  MessageRepository
	AttachmentStorage  AttachmentStorage

	conn *sql.DB
}

// NewStorages opens the content database selected by cfg.DB.DSN and the
// attachment directory.
//
// A postgres:// or postgresql:// DSN opens PostgreSQL through pgx and applies
// the goose migrations. Any other DSN is a SQLite file opened through gorm,
// whose schema is kept up to date by AutoMigrate.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	attachments, err := NewDiskAttachmentStorage(cfg.Files.AttachmentsDir, log)
	if err != nil {
		return nil, err
	}

	if isPostgresDSN(cfg.DB.DSN) {
		db, err := NewConnectPostgres(ctx, cfg.DB.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			ProfileRepository:  NewProfileRepository(db, log),
			ProjectRepository:  NewProjectRepository(db, log),
			ResourceRepository: NewResourceRepository(db, log),
			MessageRepository:  NewMessageRepository(db, log),
			AttachmentStorage:  attachments,
			conn:               db.DB,
		}, nil
	}

	if cfg.DB.DSN == "" {
		return nil, ErrUnsupportedDSN
	}

	gdb, err := NewConnectGormSQLite(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	conn, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &Storages{
		ProfileRepository:  NewGormProfileRepository(gdb),
		ProjectRepository:  NewGormProjectRepository(gdb),
		ResourceRepository: NewGormResourceRepository(gdb),
		MessageRepository:  NewGormMessageRepository(gdb),
		AttachmentStorage:  attachments,
		conn:               conn,
	}, nil
}

// Ping checks that the content database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.PingContext(ctx)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
