// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks portfolio content before it reaches storage.
//
// A [Validator] is injected into the service layer, where validation
// services wrap the content services and reject bad input with the
// sentinel errors declared in errors.go. Passing field names to Validate
// limits which checks run.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
