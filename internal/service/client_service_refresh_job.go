// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
)

const defaultRefreshInterval = time.Minute

type clientRefreshJob struct {
	refresher ClientInboxRefresher
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a job that calls refresher.Refresh on a
// ticker. The job is idle until Start is called.
func NewClientRefreshJob(refresher ClientInboxRefresher, log *logger.Logger) ClientRefreshJob {
	if log == nil {
		log = logger.Nop()
	}
	return &clientRefreshJob{refresher: refresher, logger: log}
}

// Start stops any running job, then refreshes every interval until ctx is
// cancelled or Stop is called. Refresh errors are logged and the next tick
// tries again.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.refresher.Refresh(jobCtx); err != nil {
					j.logger.Warn().Err(err).Str("func", "*clientRefreshJob.Start").Msg("inbox refresh failed")
				}
			}
		}
	}()
}

// Stop is safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// adminOnlyRefresher skips the refresh while no admin session is stored;
// the inbox is not readable without one.
type adminOnlyRefresher struct {
	guard     ClientSessionGuard
	refresher ClientInboxRefresher
}

func (r adminOnlyRefresher) Refresh(ctx context.Context) error {
	if !r.guard.IsAuthenticated(ctx) {
		return nil
	}
	return r.refresher.Refresh(ctx)
}
