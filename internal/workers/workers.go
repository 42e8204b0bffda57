// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers registers the inbox refresh job of services.
func NewWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}
	if services != nil && services.RefreshJob != nil {
		w.workers = append(w.workers, &inboxRefreshWorker{job: services.RefreshJob, interval: cfg.RefreshInterval})
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	w.logger.Debug().Int("count", len(w.workers)).Msg("starting workers")
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.logger.Debug().Msg("workers stopped")
}

type inboxRefreshWorker struct {
	job      service.ClientRefreshJob
	interval time.Duration
}

func (w *inboxRefreshWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *inboxRefreshWorker) Stop() {
	w.job.Stop()
}
