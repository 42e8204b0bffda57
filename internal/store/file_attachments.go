// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
)

// Attachment is an opened stored document. Close it when done.
type Attachment struct {
	io.ReadSeekCloser
	Name    string
	Size    int64
	ModTime time.Time
}

// diskAttachmentStorage keeps resource documents as plain files in a single
// directory. Stored names are generated, so uploads never overwrite each
// other and user-supplied names never reach the filesystem unchecked.
type diskAttachmentStorage struct {
	dir    string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewDiskAttachmentStorage creates dir if needed and returns an
// [AttachmentStorage] rooted there.
func NewDiskAttachmentStorage(dir string, log *logger.Logger) (AttachmentStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "NewDiskAttachmentStorage").Str("dir", dir).Msg("error creating attachments directory")
		return nil, fmt.Errorf("error creating attachments directory: %w", err)
	}

	return &diskAttachmentStorage{dir: dir, ids: utils.NewUUIDGenerator(), logger: log}, nil
}

func (d *diskAttachmentStorage) Save(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stored := d.ids.Generate() + strings.ToLower(filepath.Ext(filepath.Base(name)))
	path := filepath.Join(d.dir, stored)

	if err := os.WriteFile(path, content, 0o644); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diskAttachmentStorage.Save").Str("file", stored).Msg("error writing attachment")
		return "", fmt.Errorf("error writing attachment: %w", err)
	}

	return stored, nil
}

func (d *diskAttachmentStorage) Open(ctx context.Context, name string) (Attachment, error) {
	path, err := d.path(name)
	if err != nil {
		return Attachment{}, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Attachment{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diskAttachmentStorage.Open").Str("file", name).Msg("error opening attachment")
		return Attachment{}, fmt.Errorf("error opening attachment: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return Attachment{}, fmt.Errorf("error reading attachment info: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return Attachment{}, ErrNotFound
	}

	return Attachment{ReadSeekCloser: f, Name: name, Size: info.Size(), ModTime: info.ModTime()}, nil
}

func (d *diskAttachmentStorage) Delete(ctx context.Context, name string) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diskAttachmentStorage.Delete").Str("file", name).Msg("error removing attachment")
		return fmt.Errorf("error removing attachment: %w", err)
	}

	return nil
}

// path resolves name inside the storage directory, rejecting anything that
// is not a bare file name.
func (d *diskAttachmentStorage) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidFileName
	}
	return filepath.Join(d.dir, name), nil
}
