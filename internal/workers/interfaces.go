// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs as one group.
package workers

import "context"

// Worker is a background job. Run must not block; Stop waits until the job
// has finished.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
