// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query or update targets a record that
	// does not exist.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when an INSERT collides with an existing
	// primary key.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrUnsupportedDSN is returned when the content database DSN names a
	// driver the server cannot open.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrInvalidFileName is returned when an attachment name would escape
	// the attachments directory.
	ErrInvalidFileName = errors.New("invalid attachment file name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
