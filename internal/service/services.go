// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

// Services groups the server-side services consumed by the HTTP handlers.
type Services struct {
	ProfileService  ProfileService
	ProjectService  ProjectService
	ResourceService ResourceService
	MessageService  MessageService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

// NewServices wires every content service on top of storages. Write paths
// are wrapped with input validation; reads share one list cache.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	cache := NewListCache(cfg.Cache)
	ids := utils.NewUUIDGenerator()

	return &Services{
		ProfileService: NewProfileValidationService().
			Wrap(NewProfileService(storages.ProfileRepository, cache)),
		ProjectService: NewProjectValidationService().
			Wrap(NewProjectService(storages.ProjectRepository, ids, cache)),
		ResourceService: NewResourceValidationService(cfg.Storage.Files.MaxUploadSize).
			Wrap(NewResourceService(storages.ResourceRepository, storages.AttachmentStorage, ids, cache)),
		MessageService: NewMessageValidationService().
			Wrap(NewMessageService(storages.MessageRepository, ids, cache)),
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
