// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	sq "github.com/Masterminds/squirrel"
)

var resourceColumns = []string{"id", "title", "category", "description", "file_url"}

type resourceRepository struct {
	*DB
	logger *logger.Logger
}

// NewResourceRepository returns a PostgreSQL-backed [ResourceRepository].
func NewResourceRepository(db *DB, log *logger.Logger) ResourceRepository {
	return &resourceRepository{DB: db, logger: log}
}

func scanResource(s interface{ Scan(dest ...any) error }) (models.Resource, error) {
	var resource models.Resource
	err := s.Scan(
		&resource.ID,
		&resource.Title,
		&resource.Category,
		&resource.Description,
		&resource.FileURL,
	)
	return resource, err
}

func (r *resourceRepository) List(ctx context.Context) ([]models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(resourceColumns...).From("resources").OrderBy("id").ToSql()
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.List").Stringer("class", r.classify(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	resources := make([]models.Resource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			log.Err(err).Str("func", "*resourceRepository.List").Msg("error scanning resource row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		resources = append(resources, resource)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*resourceRepository.List").Msg("error iterating resource rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resources, nil
}

func (r *resourceRepository) Get(ctx context.Context, id string) (models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(resourceColumns...).From("resources").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.Get").Msg("error building query")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	resource, err := scanResource(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.Get").Msg("error scanning resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return resource, nil
}

func (r *resourceRepository) Create(ctx context.Context, resource models.Resource) error {
	return r.execSingle(ctx, "*resourceRepository.Create", psql.
		Insert("resources").
		Columns(resourceColumns...).
		Values(resource.ID, resource.Title, resource.Category, resource.Description, resource.FileURL))
}

func (r *resourceRepository) Update(ctx context.Context, resource models.Resource) error {
	return r.execSingle(ctx, "*resourceRepository.Update", psql.
		Update("resources").
		Set("title", resource.Title).
		Set("category", resource.Category).
		Set("description", resource.Description).
		Set("file_url", resource.FileURL).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": resource.ID}))
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	return r.execSingle(ctx, "*resourceRepository.Delete", psql.Delete("resources").Where(sq.Eq{"id": id}))
}
