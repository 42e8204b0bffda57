// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_SQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Storage{
		DB:    config.DB{DSN: filepath.Join(dir, "portfolio.db")},
		Files: config.Files{AttachmentsDir: filepath.Join(dir, "files")},
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.ProjectRepository.Create(ctx, models.Project{ID: "01"}))

	projects, err := s.ProjectRepository.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.NotNil(t, s.AttachmentStorage)
	assert.DirExists(t, cfg.Files.AttachmentsDir)
}

func TestNewStorages_EmptyDSN(t *testing.T) {
	cfg := config.Storage{Files: config.Files{AttachmentsDir: t.TempDir()}}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://user@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://user@localhost/db"))
	assert.False(t, isPostgresDSN("portfolio.db"))
	assert.False(t, isPostgresDSN("sqlite://portfolio.db"))
}
