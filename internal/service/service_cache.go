// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/patrickmn/go-cache"
)

// Cache keys for list responses.
const (
	cacheKeyProfile   = "profile"
	cacheKeyProjects  = "projects"
	cacheKeyResources = "resources"
	cacheKeyMessages  = "messages"
)

// ListCache keeps recently read collections. Writers invalidate the key of
// the collection they touched.
type ListCache struct {
	c *cache.Cache

	mu       sync.Mutex
	versions map[string]uint64
}

func NewListCache(cfg config.Cache) *ListCache {
	return &ListCache{
		c:        cache.New(cfg.TTL, cfg.CleanupInterval),
		versions: make(map[string]uint64),
	}
}

// getCachedData returns the cached value under key or calls fetch and caches
// its result. Errors are not cached. A result is dropped when key was
// invalidated while fetch was running.
func getCachedData[T any](lc *ListCache, key string, fetch func() (T, error)) (T, error) {
	var version uint64
	if lc != nil {
		if data, found := lc.c.Get(key); found {
			if typed, ok := data.(T); ok {
				return typed, nil
			}
		}
		version = lc.version(key)
	}

	data, err := fetch()
	if err != nil {
		return data, err
	}

	if lc != nil {
		lc.mu.Lock()
		if lc.versions[key] == version {
			lc.c.Set(key, data, cache.DefaultExpiration)
		}
		lc.mu.Unlock()
	}
	return data, nil
}

func (lc *ListCache) version(key string) uint64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.versions[key]
}

func (lc *ListCache) invalidate(key string) {
	if lc == nil {
		return
	}
	lc.mu.Lock()
	lc.versions[key]++
	lc.c.Delete(key)
	lc.mu.Unlock()
}
