// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

// Local state keys.
const (
	SessionKey        = "admin-auth-token"
	SessionToken      = "admin-session-active"
	APITokenKey       = "admin-api-token"
	ProgressKeyPrefix = "pdf-progress-"
)

type sessionGuard struct {
	persistence *store.PersistenceClient
	gateway     adapter.ServerAdapter

	login    string
	password string

	now    func() time.Time
	logger *logger.Logger
}

// NewSessionGuard checks credentials against cfg. When the content service
// has token auth enabled the guard also obtains an API token for the
// write routes; a service without it is not an error.
func NewSessionGuard(persistence *store.PersistenceClient, gateway adapter.ServerAdapter, cfg config.ClientApp, log *logger.Logger) ClientSessionGuard {
	if log == nil {
		log = logger.Nop()
	}
	return &sessionGuard{
		persistence: persistence,
		gateway:     gateway,
		login:       cfg.AdminLogin,
		password:    cfg.AdminPassword,
		now:         time.Now,
		logger:      log,
	}
}

func (g *sessionGuard) Authenticate(ctx context.Context, login, password string) error {
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(g.login)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !loginOK || !passwordOK {
		g.logger.Warn().Str("func", "*sessionGuard.Authenticate").Msg("invalid credentials")
		return ErrInvalidCredentials
	}

	g.persistence.Set(ctx, SessionKey, models.AdminSession{Token: SessionToken, Timestamp: g.now().UTC()})

	if g.gateway != nil {
		if err := g.gateway.Login(ctx, login, password); err != nil {
			g.logger.Info().Err(err).Str("func", "*sessionGuard.Authenticate").Msg("content service issued no API token")
		} else {
			g.persistence.Set(ctx, APITokenKey, g.gateway.Token())
		}
	}

	return nil
}

// IsAuthenticated requires the stored flag to carry exactly SessionToken.
// It also restores a stored API token into the gateway.
func (g *sessionGuard) IsAuthenticated(ctx context.Context) bool {
	var session models.AdminSession
	if !g.persistence.Get(ctx, SessionKey, &session) {
		return false
	}
	if session.Token != SessionToken {
		return false
	}

	if g.gateway != nil && g.gateway.Token() == "" {
		var token string
		if g.persistence.Get(ctx, APITokenKey, &token) && token != "" {
			g.gateway.SetToken(token)
		}
	}
	return true
}

func (g *sessionGuard) Logout(ctx context.Context) {
	g.persistence.Remove(ctx, SessionKey)
	g.persistence.Remove(ctx, APITokenKey)
	if g.gateway != nil {
		g.gateway.SetToken("")
	}
}

// ── Reading progress ──

type progressStore struct {
	persistence *store.PersistenceClient
}

func NewProgressStore(persistence *store.PersistenceClient) ClientProgressStore {
	return &progressStore{persistence: persistence}
}

func progressKey(resourceID string) string {
	return ProgressKeyPrefix + resourceID
}

// Progress treats records with a page below 1 as absent.
func (p *progressStore) Progress(ctx context.Context, resourceID string) (models.ReadingProgress, bool) {
	var progress models.ReadingProgress
	if !p.persistence.Get(ctx, progressKey(resourceID), &progress) || progress.Page < 1 {
		return models.ReadingProgress{}, false
	}
	return progress, true
}

func (p *progressStore) SaveProgress(ctx context.Context, resourceID string, progress models.ReadingProgress) {
	p.persistence.Set(ctx, progressKey(resourceID), progress)
}

func (p *progressStore) AllProgress(ctx context.Context) map[string]models.ReadingProgress {
	out := make(map[string]models.ReadingProgress)
	for _, key := range p.persistence.KeysWithPrefix(ctx, ProgressKeyPrefix) {
		id := key[len(ProgressKeyPrefix):]
		if id == "" {
			continue
		}
		if progress, ok := p.Progress(ctx, id); ok {
			out[id] = progress
		}
	}
	return out
}
