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

// profileRowID is the primary key of the only row in the profile table.
const profileRowID = 1

type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository returns a PostgreSQL-backed [ProfileRepository].
func NewProfileRepository(db *DB, log *logger.Logger) ProfileRepository {
	return &profileRepository{DB: db, logger: log}
}

func (p *profileRepository) Get(ctx context.Context) (*models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("full_name", "role", "about", "current_focus", "skills", "linkedin", "github", "email").
		From("profile").
		Where(sq.Eq{"id": profileRowID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Get").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.Profile
	err = p.QueryRowContext(ctx, query, args...).Scan(
		&profile.FullName,
		&profile.Role,
		&profile.About,
		&profile.CurrentFocus,
		&profile.Skills,
		&profile.LinkedIn,
		&profile.GitHub,
		&profile.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Get").Stringer("class", p.classify(err)).Msg("error scanning profile")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &profile, nil
}

func (p *profileRepository) Save(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("profile").
		Columns("id", "full_name", "role", "about", "current_focus", "skills", "linkedin", "github", "email").
		Values(profileRowID, profile.FullName, profile.Role, profile.About, profile.CurrentFocus,
			profile.Skills, profile.LinkedIn, profile.GitHub, profile.Email).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			role = EXCLUDED.role,
			about = EXCLUDED.about,
			current_focus = EXCLUDED.current_focus,
			skills = EXCLUDED.skills,
			linkedin = EXCLUDED.linkedin,
			github = EXCLUDED.github,
			email = EXCLUDED.email,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*profileRepository.Save").Stringer("class", p.classify(err)).Msg("error saving profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
