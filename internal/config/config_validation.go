// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the merged server configuration can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.AttachmentsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Cache.TTL <= 0 || cfg.Cache.CleanupInterval <= 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.App.TokenSignKey != "" {
		if cfg.App.TokenDuration <= 0 || cfg.App.AdminLogin == "" {
			return ErrInvalidAppConfigs
		}
		if cfg.App.AdminPasswordHash == "" && cfg.App.AdminPassword == "" {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.AdminLogin == "" || cfg.App.AdminPassword == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
