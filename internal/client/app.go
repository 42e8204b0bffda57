// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/tui"
)

type App struct {
	ui      UI
	workers BackgroundWorkers
	logger  *logger.Logger
}

func NewApp(ui UI, workers BackgroundWorkers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	return &App{ui: ui, workers: workers, logger: logger}, nil
}

// Run starts the workers, hands the terminal to the UI and stops the
// workers once the UI returns. Quitting the UI is a clean exit.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.workers != nil {
		a.workers.Run(ctx)
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
