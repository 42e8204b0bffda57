// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultAdminLogin    = "admin"
	DefaultAdminPassword = "admin123"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AdminLogin:    DefaultAdminLogin,
			AdminPassword: DefaultAdminPassword,
			TokenIssuer:   "go-portfolio",
			TokenDuration: time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			Files: Files{
				AttachmentsDir: "files",
				MaxUploadSize:  32 << 20,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: 30 * time.Second,
		},
		Cache: Cache{
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
	}
}
