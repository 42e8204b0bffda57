// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AdminLoginCtxKey is the key used to store the authenticated admin login
// in the request context.
var AdminLoginCtxKey = contextKey("adminLogin")

// WithAdminLogin returns a copy of ctx carrying login.
func WithAdminLogin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, AdminLoginCtxKey, login)
}

// GetAdminLoginFromContext retrieves the admin login from the context.
//
// Returns ok == false when the value is missing, empty or has an
// unexpected type.
func GetAdminLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(AdminLoginCtxKey).(string)
	return login, ok && login != ""
}
