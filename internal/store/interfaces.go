// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

// ProfileRepository stores the single portfolio profile record.
type ProfileRepository interface {
	// Get returns the stored profile, or nil when none was saved yet.
	Get(ctx context.Context) (*models.Profile, error)
	// Save replaces the stored profile.
	Save(ctx context.Context, profile models.Profile) error
}

// ProjectRepository stores case studies ordered by id.
type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (models.Project, error)
	Create(ctx context.Context, project models.Project) error
	Update(ctx context.Context, project models.Project) error
	Delete(ctx context.Context, id string) error
}

// ResourceRepository stores learning resources ordered by id.
type ResourceRepository interface {
	List(ctx context.Context) ([]models.Resource, error)
	Get(ctx context.Context, id string) (models.Resource, error)
	Create(ctx context.Context, resource models.Resource) error
	Update(ctx context.Context, resource models.Resource) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository stores contact form submissions, newest first.
type MessageRepository interface {
	List(ctx context.Context) ([]models.Message, error)
	Get(ctx context.Context, id string) (models.Message, error)
	Create(ctx context.Context, message models.Message) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// AttachmentStorage keeps uploaded resource documents.
type AttachmentStorage interface {
	// Save writes content under a generated name derived from name and
	// returns the stored name.
	Save(ctx context.Context, name string, content []byte) (string, error)
	// Open returns the stored file. The caller closes it.
	Open(ctx context.Context, name string) (Attachment, error)
	Delete(ctx context.Context, name string) error
}
