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

var projectColumns = []string{"id", "title", "problem", "decision", "tradeoff", "outcome"}

type projectRepository struct {
	*DB
	logger *logger.Logger
}

// NewProjectRepository returns a PostgreSQL-backed [ProjectRepository].
func NewProjectRepository(db *DB, log *logger.Logger) ProjectRepository {
	return &projectRepository{DB: db, logger: log}
}

func (p *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(projectColumns...).From("projects").OrderBy("id").ToSql()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.List").Stringer("class", p.classify(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var project models.Project
		if err = rows.Scan(
			&project.ID,
			&project.Title,
			&project.Problem,
			&project.Decision,
			&project.Tradeoff,
			&project.Outcome,
		); err != nil {
			log.Err(err).Str("func", "*projectRepository.List").Msg("error scanning project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, project)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.List").Msg("error iterating project rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

func (p *projectRepository) Get(ctx context.Context, id string) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(projectColumns...).From("projects").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.Get").Msg("error building query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var project models.Project
	err = p.QueryRowContext(ctx, query, args...).Scan(
		&project.ID,
		&project.Title,
		&project.Problem,
		&project.Decision,
		&project.Tradeoff,
		&project.Outcome,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.Get").Msg("error scanning project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return project, nil
}

func (p *projectRepository) Create(ctx context.Context, project models.Project) error {
	return p.execSingle(ctx, "*projectRepository.Create", psql.
		Insert("projects").
		Columns(projectColumns...).
		Values(project.ID, project.Title, project.Problem, project.Decision, project.Tradeoff, project.Outcome))
}

func (p *projectRepository) Update(ctx context.Context, project models.Project) error {
	return p.execSingle(ctx, "*projectRepository.Update", psql.
		Update("projects").
		Set("title", project.Title).
		Set("problem", project.Problem).
		Set("decision", project.Decision).
		Set("tradeoff", project.Tradeoff).
		Set("outcome", project.Outcome).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": project.ID}))
}

func (p *projectRepository) Delete(ctx context.Context, id string) error {
	return p.execSingle(ctx, "*projectRepository.Delete", psql.Delete("projects").Where(sq.Eq{"id": id}))
}
