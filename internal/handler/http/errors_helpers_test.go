// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/validators"
)

func wrapNotFound() error {
	return fmt.Errorf("repo: %w", store.ErrNotFound)
}

func tooLargeErr() error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrAttachmentTooLarge)
}

func titleErr() error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyTitle)
}
