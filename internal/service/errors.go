// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Server-side service errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong login or password")

	ErrAuthDisabled            = errors.New("token authentication is disabled")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side service errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEditInProgress     = errors.New("another edit is in progress")
	ErrNoDraft            = errors.New("nothing is being added or edited")
	ErrUnknownEntity      = errors.New("entity is not in the local list")
	ErrNoAttachment       = errors.New("resource has no attached document")
	ErrNavigationDisabled = errors.New("page count is not known yet")
	ErrNoDocumentOpen     = errors.New("no document is open")

	ErrRemoteUnavailable  = errors.New("content service is unavailable")
	ErrRemoteRejected     = errors.New("content service rejected the request")
	ErrRemoteNotFound     = errors.New("content not found on the service")
	ErrRemoteUnauthorized = errors.New("content service requires authorization")
	ErrMalformedResponse  = errors.New("content service returned a malformed response")
)
