// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type projectService struct {
	repo  store.ProjectRepository
	ids   IDGenerator
	cache *ListCache
}

func NewProjectService(repo store.ProjectRepository, ids IDGenerator, cache *ListCache) ProjectService {
	return &projectService{repo: repo, ids: ids, cache: cache}
}

func (p *projectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := getCachedData(p.cache, cacheKeyProjects, func() ([]models.Project, error) {
		return p.repo.List(ctx)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.List").Msg("error listing projects")
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	return slices.Clone(projects), nil
}

func (p *projectService) Create(ctx context.Context, draft models.ProjectDraft) (models.Project, error) {
	project := models.Project{ID: p.ids.Generate(), ProjectDraft: draft}

	if err := p.repo.Create(ctx, project); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.Create").Msg("error creating project")
		return models.Project{}, fmt.Errorf("error creating project: %w", err)
	}
	p.cache.invalidate(cacheKeyProjects)

	return project, nil
}

func (p *projectService) Update(ctx context.Context, id string, draft models.ProjectDraft) (models.Project, error) {
	project := models.Project{ID: id, ProjectDraft: draft}

	if err := p.repo.Update(ctx, project); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.Update").Str("id", id).Msg("error updating project")
		return models.Project{}, fmt.Errorf("error updating project: %w", err)
	}
	p.cache.invalidate(cacheKeyProjects)

	return project, nil
}

func (p *projectService) Delete(ctx context.Context, id string) error {
	if err := p.repo.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.Delete").Str("id", id).Msg("error deleting project")
		return fmt.Errorf("error deleting project: %w", err)
	}
	p.cache.invalidate(cacheKeyProjects)

	return nil
}
