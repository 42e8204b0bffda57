// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"admin_login": "owner",
			"admin_password_hash": "$2a$10$hash",
			"token_sign_key": "jwt_secret",
			"token_duration": "1h"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"allowed_origins": ["http://site.test"]
		},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": "5s"},
		"workers": {"refresh_interval": "1m"},
		"cache": {"ttl": "2m", "cleanup_interval": "4m"},
		"storage": {
			"db": {"dsn": "portfolio.db", "local_dsn": "client.db"},
			"files": {"attachments_dir": "/var/data", "max_upload_size": 1024}
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "owner", cfg.App.AdminLogin)
	assert.Equal(t, "$2a$10$hash", cfg.App.AdminPasswordHash)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://site.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 4*time.Minute, cfg.Cache.CleanupInterval)
	assert.Equal(t, "portfolio.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "client.db", cfg.Storage.DB.LocalDSN)
	assert.Equal(t, "/var/data", cfg.Storage.Files.AttachmentsDir)
	assert.Equal(t, int64(1024), cfg.Storage.Files.MaxUploadSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "null", input: `null`, want: 0},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
