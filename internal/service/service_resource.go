// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

// FileURLPrefix is prepended to stored attachment names to form a
// resource's fileUrl.
const FileURLPrefix = "/files/"

type resourceService struct {
	repo        store.ResourceRepository
	attachments store.AttachmentStorage
	ids         IDGenerator
	cache       *ListCache
}

func NewResourceService(repo store.ResourceRepository, attachments store.AttachmentStorage, ids IDGenerator, cache *ListCache) ResourceService {
	return &resourceService{repo: repo, attachments: attachments, ids: ids, cache: cache}
}

func (r *resourceService) List(ctx context.Context) ([]models.Resource, error) {
	resources, err := getCachedData(r.cache, cacheKeyResources, func() ([]models.Resource, error) {
		return r.repo.List(ctx)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resourceService.List").Msg("error listing resources")
		return nil, fmt.Errorf("error listing resources: %w", err)
	}

	return slices.Clone(resources), nil
}

func (r *resourceService) Create(ctx context.Context, draft models.ResourceDraft) (models.Resource, error) {
	log := logger.FromContext(ctx)

	resource := models.Resource{ID: r.ids.Generate(), ResourceDraft: draft}
	resource.Attachment = nil

	if draft.Attachment != nil {
		fileURL, err := r.storeAttachment(ctx, draft.Attachment)
		if err != nil {
			return models.Resource{}, err
		}
		resource.FileURL = fileURL
	}

	if err := r.repo.Create(ctx, resource); err != nil {
		log.Err(err).Str("func", "*resourceService.Create").Msg("error creating resource")
		r.removeAttachment(ctx, resource.FileURL)
		return models.Resource{}, fmt.Errorf("error creating resource: %w", err)
	}
	r.cache.invalidate(cacheKeyResources)

	return resource, nil
}

func (r *resourceService) Update(ctx context.Context, id string, draft models.ResourceDraft) (models.Resource, error) {
	log := logger.FromContext(ctx)

	current, err := r.repo.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*resourceService.Update").Str("id", id).Msg("error reading resource")
		return models.Resource{}, fmt.Errorf("error updating resource: %w", err)
	}

	resource := models.Resource{ID: id, ResourceDraft: draft, FileURL: current.FileURL}
	resource.Attachment = nil

	if draft.Attachment != nil {
		fileURL, err := r.storeAttachment(ctx, draft.Attachment)
		if err != nil {
			return models.Resource{}, err
		}
		resource.FileURL = fileURL
	}

	if err = r.repo.Update(ctx, resource); err != nil {
		log.Err(err).Str("func", "*resourceService.Update").Str("id", id).Msg("error updating resource")
		if resource.FileURL != current.FileURL {
			r.removeAttachment(ctx, resource.FileURL)
		}
		return models.Resource{}, fmt.Errorf("error updating resource: %w", err)
	}
	r.cache.invalidate(cacheKeyResources)

	if resource.FileURL != current.FileURL {
		r.removeAttachment(ctx, current.FileURL)
	}

	return resource, nil
}

func (r *resourceService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	current, err := r.repo.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*resourceService.Delete").Str("id", id).Msg("error reading resource")
		return fmt.Errorf("error deleting resource: %w", err)
	}

	if err = r.repo.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*resourceService.Delete").Str("id", id).Msg("error deleting resource")
		return fmt.Errorf("error deleting resource: %w", err)
	}
	r.cache.invalidate(cacheKeyResources)
	r.removeAttachment(ctx, current.FileURL)

	return nil
}

func (r *resourceService) OpenFile(ctx context.Context, name string) (store.Attachment, error) {
	att, err := r.attachments.Open(ctx, name)
	if err != nil {
		return store.Attachment{}, fmt.Errorf("error opening attachment: %w", err)
	}
	return att, nil
}

func (r *resourceService) storeAttachment(ctx context.Context, att *models.Attachment) (string, error) {
	name, err := r.attachments.Save(ctx, att.Name, att.Content)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resourceService.storeAttachment").Msg("error saving attachment")
		return "", fmt.Errorf("error saving attachment: %w", err)
	}
	return FileURLPrefix + name, nil
}

// removeAttachment deletes the file behind fileURL. Failures only leave an
// orphaned file, so they are logged and ignored.
func (r *resourceService) removeAttachment(ctx context.Context, fileURL string) {
	name, ok := strings.CutPrefix(fileURL, FileURLPrefix)
	if !ok || name == "" {
		return
	}

	if err := r.attachments.Delete(ctx, name); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*resourceService.removeAttachment").Str("file", name).Msg("error removing attachment")
	}
}
