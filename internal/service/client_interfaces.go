// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// EditMode is the state of a manager's add/edit form.
type EditMode int

const (
	EditIdle EditMode = iota
	EditAdding
	EditEditing
)

func (m EditMode) String() string {
	switch m {
	case EditAdding:
		return "adding"
	case EditEditing:
		return "editing"
	default:
		return "idle"
	}
}

// Notice is the last user-visible outcome of a manager operation.
type Notice struct {
	Text    string
	IsError bool
}

// ClientSessionGuard gates the admin area on a locally stored flag.
type ClientSessionGuard interface {
	// Authenticate compares login and password against the configured pair
	// and, on a match, stores the session flag. A mismatch returns
	// ErrInvalidCredentials without saying which value was wrong.
	Authenticate(ctx context.Context, login, password string) error

	// IsAuthenticated reports whether a valid session flag is stored.
	IsAuthenticated(ctx context.Context) bool

	// Logout removes the session flag.
	Logout(ctx context.Context)
}

// ClientProgressStore reads and writes per-resource reading progress.
type ClientProgressStore interface {
	Progress(ctx context.Context, resourceID string) (models.ReadingProgress, bool)
	SaveProgress(ctx context.Context, resourceID string, progress models.ReadingProgress)
	// AllProgress returns every stored progress record keyed by resource id.
	AllProgress(ctx context.Context) map[string]models.ReadingProgress
}

// ClientInboxRefresher reloads the admin inbox. It is run periodically by
// the client worker.
type ClientInboxRefresher interface {
	Refresh(ctx context.Context) error
}

// ClientRefreshJob runs a ClientInboxRefresher on a ticker.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. An interval of zero
	// or less defaults to one minute. A running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}
