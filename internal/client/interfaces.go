// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end. Run blocks until the user leaves.
type UI interface {
	Run(ctx context.Context) error
}

// BackgroundWorkers run for as long as the UI is open.
type BackgroundWorkers interface {
	Run(ctx context.Context)
	Stop()
}
