// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the go-portfolio
// client and the content service.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// managers from the REST protocol. Failures come back as one of three typed
// errors so callers can tell a dead network from a rejected request:
//   - [TransportError]: the request never produced a response.
//   - [ResponseError]: the service answered with a non-2xx status.
//   - [DecodeError]: a 2xx body could not be decoded.
//
// [ResponseError] matches the status sentinels in errors.go with [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the remote content gateway. Every method is a single
// request; nothing is retried.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Login exchanges admin credentials for a bearer token and stores it.
	Login(ctx context.Context, login, password string) error

	// Version returns the service version string.
	Version(ctx context.Context) (string, error)

	// GetProfile returns nil without error when no profile has been saved.
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, draft models.ProjectDraft) (models.Project, error)
	UpdateProject(ctx context.Context, id string, draft models.ProjectDraft) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// CreateResource and UpdateResource send multipart/form-data when the
	// draft carries an attachment and JSON otherwise.
	ListResources(ctx context.Context) ([]models.Resource, error)
	CreateResource(ctx context.Context, draft models.ResourceDraft) (models.Resource, error)
	UpdateResource(ctx context.Context, id string, draft models.ResourceDraft) (models.Resource, error)
	DeleteResource(ctx context.Context, id string) error

	// DownloadFile fetches a resource document by its fileUrl.
	DownloadFile(ctx context.Context, fileURL string) ([]byte, error)

	SendMessage(ctx context.Context, req models.ContactRequest) (models.Message, error)
	ListMessages(ctx context.Context) ([]models.Message, error)
	MarkMessageRead(ctx context.Context, id string) (models.Message, error)
	DeleteMessage(ctx context.Context, id string) error
}
