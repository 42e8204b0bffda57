// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ReadingProgress is the last position of the reader inside one resource
// document. At most one record exists per resource id.
type ReadingProgress struct {
	Page         int       `json:"page"`
	LastAccessed time.Time `json:"lastAccessed"`
	Zoom         int       `json:"zoom,omitempty"`
}

// AdminSession is the locally stored admin session flag.
type AdminSession struct {
	Token     string    `json:"token"`
	Timestamp time.Time `json:"timestamp"`
}

// LoginRequest carries admin credentials to the content service.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ErrorResponse is the JSON body written by the content service on failure.
type ErrorResponse struct {
	Message string `json:"message"`
}
