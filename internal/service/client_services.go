// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
)

// ClientServices groups everything the terminal client drives.
type ClientServices struct {
	SessionGuard ClientSessionGuard
	Profile      *ProfileManager
	Projects     *ProjectManager
	Resources    *ResourceManager
	Messages     *MessageManager
	ContactForm  *ContactForm
	Progress     ClientProgressStore
	Viewer       *Viewer
	RefreshJob   ClientRefreshJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, log *logger.Logger) *ClientServices {
	progress := NewProgressStore(localStore.Persistence)
	messages := NewMessageManager(serverAdapter, log)
	guard := NewSessionGuard(localStore.Persistence, serverAdapter, cfg, log)

	return &ClientServices{
		SessionGuard: guard,
		Profile:      NewProfileManager(serverAdapter, log),
		Projects:     NewProjectManager(serverAdapter, log),
		Resources:    NewResourceManager(serverAdapter, log),
		Messages:     messages,
		ContactForm:  NewContactForm(serverAdapter, log),
		Progress:     progress,
		Viewer:       NewViewer(progress, log),
		RefreshJob:   NewClientRefreshJob(adminOnlyRefresher{guard: guard, refresher: messages}, log),
	}
}
