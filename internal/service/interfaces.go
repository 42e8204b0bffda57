// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

// ProfileService reads and replaces the portfolio profile.
type ProfileService interface {
	// Get returns nil when no profile has been saved yet.
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// ProjectService manages case studies.
type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, draft models.ProjectDraft) (models.Project, error)
	Update(ctx context.Context, id string, draft models.ProjectDraft) (models.Project, error)
	Delete(ctx context.Context, id string) error
}

// ResourceService manages learning resources and their documents.
type ResourceService interface {
	List(ctx context.Context) ([]models.Resource, error)
	// Create stores draft.Attachment, when present, and links it as FileURL.
	Create(ctx context.Context, draft models.ResourceDraft) (models.Resource, error)
	// Update keeps the current document unless draft.Attachment is set.
	Update(ctx context.Context, id string, draft models.ResourceDraft) (models.Resource, error)
	Delete(ctx context.Context, id string) error
	OpenFile(ctx context.Context, name string) (store.Attachment, error)
}

// MessageService manages contact form submissions.
type MessageService interface {
	List(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, req models.ContactRequest) (models.Message, error)
	MarkRead(ctx context.Context, id string) (models.Message, error)
	Delete(ctx context.Context, id string) error
}

// AuthService issues and verifies admin API tokens.
type AuthService interface {
	// Enabled reports whether write routes require a token.
	Enabled() bool
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes the server version and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator issues entity ids.
type IDGenerator interface {
	Generate() string
}

// ProjectServiceWrapper decorates a ProjectService, e.g. with validation.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}

// ResourceServiceWrapper decorates a ResourceService.
type ResourceServiceWrapper interface {
	Wrap(ResourceService) ResourceService
}

// MessageServiceWrapper decorates a MessageService.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService
}

// ProfileServiceWrapper decorates a ProfileService.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}
