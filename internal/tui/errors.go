// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/service"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns a service error into a line for the error overlay.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrRemoteUnavailable):
		return app.MsgServiceUnavailable
	case errors.Is(err, service.ErrMalformedResponse):
		return app.MsgUnexpectedResponse
	case errors.Is(err, service.ErrRemoteUnauthorized):
		return "Session expired on the content service, log in again"
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, service.ErrNoAttachment):
		return "This resource has no document attached"
	case errors.Is(err, service.ErrNavigationDisabled):
		return app.MsgNavigationDisabled
	default:
		return err.Error()
	}
}
