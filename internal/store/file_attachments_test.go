// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskAttachmentStorage_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "files")
	storage, err := NewDiskAttachmentStorage(dir, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	name, err := storage.Save(ctx, "../../Guide.PDF", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotContains(t, name, "/")
	assert.FileExists(t, filepath.Join(dir, name))

	other, err := storage.Save(ctx, "Guide.pdf", []byte("other"))
	require.NoError(t, err)
	assert.NotEqual(t, name, other)

	att, err := storage.Open(ctx, name)
	require.NoError(t, err)
	body, err := io.ReadAll(att)
	require.NoError(t, err)
	require.NoError(t, att.Close())
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.Equal(t, int64(8), att.Size)

	require.NoError(t, storage.Delete(ctx, name))
	assert.ErrorIs(t, storage.Delete(ctx, name), ErrNotFound)

	_, err = storage.Open(ctx, name)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskAttachmentStorage_RejectsPaths(t *testing.T) {
	storage, err := NewDiskAttachmentStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../secret", "a/b.pdf", `a\b.pdf`} {
		_, err := storage.Open(ctx, name)
		assert.ErrorIs(t, err, ErrInvalidFileName, name)
		assert.ErrorIs(t, storage.Delete(ctx, name), ErrInvalidFileName, name)
	}
}

func TestDiskAttachmentStorage_Canceled(t *testing.T) {
	storage, err := NewDiskAttachmentStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = storage.Save(ctx, "a.pdf", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
