// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
)

// defaultMaxUploadSize bounds multipart bodies when no limit is configured.
const defaultMaxUploadSize = 32 << 20

// Options are the transport settings of the HTTP handler.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	MaxUploadSize  int64
}

// OptionsFromConfig collects the handler settings spread over cfg.
func OptionsFromConfig(cfg config.StructuredConfig) Options {
	return Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxUploadSize:  cfg.Storage.Files.MaxUploadSize,
	}
}

type Handler struct {
	services *service.Services
	options  Options

	logger *logger.Logger
}

func NewHandler(services *service.Services, options Options, logger *logger.Logger) *Handler {
	if options.MaxUploadSize <= 0 {
		options.MaxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		options:  options,
		logger:   logger,
	}
}
