// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid id")
	ErrEmptyTitle         = errors.New("title is required")
	ErrInvalidCategory    = errors.New("invalid resource category")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyMessage       = errors.New("message is required")
	ErrInvalidURL         = errors.New("invalid url")
	ErrEmptyAttachment    = errors.New("attachment is empty")
	ErrAttachmentTooLarge = errors.New("attachment is too large")
)
