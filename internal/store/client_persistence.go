// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-portfolio/internal/logger"
)

// PersistenceClient stores JSON values in a [KeyValueRepository].
//
// Local state is non-critical: every storage or decode failure is logged and
// reported to the caller as a miss. A client built without a repository
// turns every operation into a no-op.
type PersistenceClient struct {
	repo   KeyValueRepository
	logger *logger.Logger
}

// NewPersistenceClient wraps repo. repo may be nil.
func NewPersistenceClient(repo KeyValueRepository, log *logger.Logger) *PersistenceClient {
	if log == nil {
		log = logger.Nop()
	}
	return &PersistenceClient{repo: repo, logger: log}
}

// Available reports whether values are actually stored anywhere.
func (p *PersistenceClient) Available() bool {
	return p != nil && p.repo != nil
}

// Get decodes the value under key into dst and reports whether it was
// found. Malformed JSON counts as absent.
func (p *PersistenceClient) Get(ctx context.Context, key string, dst any) bool {
	if !p.Available() {
		return false
	}

	raw, ok, err := p.repo.Get(ctx, key)
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "*PersistenceClient.Get").Str("key", key).Msg("local state read failed")
		return false
	}
	if !ok {
		return false
	}

	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		p.logger.Warn().Err(err).Str("func", "*PersistenceClient.Get").Str("key", key).Msg("malformed local state value")
		return false
	}

	return true
}

// Set stores value as JSON under key.
func (p *PersistenceClient) Set(ctx context.Context, key string, value any) {
	if !p.Available() {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "*PersistenceClient.Set").Str("key", key).Msg("local state value not encodable")
		return
	}

	if err = p.repo.Set(ctx, key, string(raw)); err != nil {
		p.logger.Warn().Err(err).Str("func", "*PersistenceClient.Set").Str("key", key).Msg("local state write failed")
	}
}

// Remove deletes key.
func (p *PersistenceClient) Remove(ctx context.Context, key string) {
	if !p.Available() {
		return
	}

	if err := p.repo.Delete(ctx, key); err != nil {
		p.logger.Warn().Err(err).Str("func", "*PersistenceClient.Remove").Str("key", key).Msg("local state delete failed")
	}
}

// KeysWithPrefix lists stored keys that start with prefix.
func (p *PersistenceClient) KeysWithPrefix(ctx context.Context, prefix string) []string {
	if !p.Available() {
		return nil
	}

	keys, err := p.repo.Keys(ctx, prefix)
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "*PersistenceClient.KeysWithPrefix").Str("prefix", prefix).Msg("local state listing failed")
		return nil
	}

	return keys
}
