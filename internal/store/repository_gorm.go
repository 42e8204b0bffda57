// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormError maps gorm sentinel errors to the store ones.
func gormError(err error, sentinel error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrAlreadyExists
	default:
		return fmt.Errorf("%w: %w", sentinel, err)
	}
}

// affectedOne turns a zero-row result into [ErrNotFound].
func affectedOne(tx *gorm.DB) error {
	if tx.Error != nil {
		return gormError(tx.Error, ErrExecutingStatement)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Profile ──

type gormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository returns a gorm-backed [ProfileRepository].
func NewGormProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (g *gormProfileRepository) Get(ctx context.Context) (*models.Profile, error) {
	var row profileRow
	err := g.db.WithContext(ctx).Take(&row, "id = ?", profileRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormProfileRepository.Get").Msg("error reading profile")
		return nil, gormError(err, ErrExecutingQuery)
	}

	return &row.Profile, nil
}

func (g *gormProfileRepository) Save(ctx context.Context, profile models.Profile) error {
	row := profileRow{ID: profileRowID, Profile: profile}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormProfileRepository.Save").Msg("error saving profile")
		return gormError(err, ErrExecutingStatement)
	}

	return nil
}

// ── Projects ──

type gormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository returns a gorm-backed [ProjectRepository].
func NewGormProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

func (g *gormProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := g.db.WithContext(ctx).Order("id").Find(&projects).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormProjectRepository.List").Msg("error listing projects")
		return nil, gormError(err, ErrExecutingQuery)
	}
	return projects, nil
}

func (g *gormProjectRepository) Get(ctx context.Context, id string) (models.Project, error) {
	var project models.Project
	if err := g.db.WithContext(ctx).Take(&project, "id = ?", id).Error; err != nil {
		return models.Project{}, gormError(err, ErrExecutingQuery)
	}
	return project, nil
}

func (g *gormProjectRepository) Create(ctx context.Context, project models.Project) error {
	if err := g.db.WithContext(ctx).Create(&project).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormProjectRepository.Create").Msg("error creating project")
		return gormError(err, ErrExecutingStatement)
	}
	return nil
}

func (g *gormProjectRepository) Update(ctx context.Context, project models.Project) error {
	return affectedOne(g.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"title":    project.Title,
			"problem":  project.Problem,
			"decision": project.Decision,
			"tradeoff": project.Tradeoff,
			"outcome":  project.Outcome,
		}))
}

func (g *gormProjectRepository) Delete(ctx context.Context, id string) error {
	return affectedOne(g.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id))
}

// ── Resources ──

type gormResourceRepository struct {
	db *gorm.DB
}

// NewGormResourceRepository returns a gorm-backed [ResourceRepository].
func NewGormResourceRepository(db *gorm.DB) ResourceRepository {
	return &gormResourceRepository{db: db}
}

func (g *gormResourceRepository) List(ctx context.Context) ([]models.Resource, error) {
	resources := make([]models.Resource, 0)
	if err := g.db.WithContext(ctx).Order("id").Find(&resources).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormResourceRepository.List").Msg("error listing resources")
		return nil, gormError(err, ErrExecutingQuery)
	}
	return resources, nil
}

func (g *gormResourceRepository) Get(ctx context.Context, id string) (models.Resource, error) {
	var resource models.Resource
	if err := g.db.WithContext(ctx).Take(&resource, "id = ?", id).Error; err != nil {
		return models.Resource{}, gormError(err, ErrExecutingQuery)
	}
	return resource, nil
}

func (g *gormResourceRepository) Create(ctx context.Context, resource models.Resource) error {
	if err := g.db.WithContext(ctx).Create(&resource).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormResourceRepository.Create").Msg("error creating resource")
		return gormError(err, ErrExecutingStatement)
	}
	return nil
}

func (g *gormResourceRepository) Update(ctx context.Context, resource models.Resource) error {
	return affectedOne(g.db.WithContext(ctx).
		Model(&models.Resource{}).
		Where("id = ?", resource.ID).
		Updates(map[string]any{
			"title":       resource.Title,
			"category":    resource.Category,
			"description": resource.Description,
			"file_url":    resource.FileURL,
		}))
}

func (g *gormResourceRepository) Delete(ctx context.Context, id string) error {
	return affectedOne(g.db.WithContext(ctx).Delete(&models.Resource{}, "id = ?", id))
}

// ── Messages ──

type gormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository returns a gorm-backed [MessageRepository].
func NewGormMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (g *gormMessageRepository) List(ctx context.Context) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	if err := g.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&messages).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormMessageRepository.List").Msg("error listing messages")
		return nil, gormError(err, ErrExecutingQuery)
	}
	return messages, nil
}

func (g *gormMessageRepository) Get(ctx context.Context, id string) (models.Message, error) {
	var message models.Message
	if err := g.db.WithContext(ctx).Take(&message, "id = ?", id).Error; err != nil {
		return models.Message{}, gormError(err, ErrExecutingQuery)
	}
	return message, nil
}

func (g *gormMessageRepository) Create(ctx context.Context, message models.Message) error {
	if err := g.db.WithContext(ctx).Create(&message).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormMessageRepository.Create").Msg("error creating message")
		return gormError(err, ErrExecutingStatement)
	}
	return nil
}

func (g *gormMessageRepository) MarkRead(ctx context.Context, id string) error {
	return affectedOne(g.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Update("is_read", true))
}

func (g *gormMessageRepository) Delete(ctx context.Context, id string) error {
	return affectedOne(g.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", id))
}
