// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type profileService struct {
	repo  store.ProfileRepository
	cache *ListCache
}

func NewProfileService(repo store.ProfileRepository, cache *ListCache) ProfileService {
	return &profileService{repo: repo, cache: cache}
}

func (p *profileService) Get(ctx context.Context) (*models.Profile, error) {
	profile, err := getCachedData(p.cache, cacheKeyProfile, func() (*models.Profile, error) {
		return p.repo.Get(ctx)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.Get").Msg("error reading profile")
		return nil, fmt.Errorf("error reading profile: %w", err)
	}
	if profile == nil {
		return nil, nil
	}

	out := *profile
	return &out, nil
}

// Save replaces the whole profile and returns what was stored.
func (p *profileService) Save(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if err := p.repo.Save(ctx, profile); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.Save").Msg("error saving profile")
		return models.Profile{}, fmt.Errorf("error saving profile: %w", err)
	}
	p.cache.invalidate(cacheKeyProfile)

	return profile, nil
}
