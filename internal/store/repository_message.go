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

var messageColumns = []string{"id", "email", "message", "created_at", "is_read"}

type messageRepository struct {
	*DB
	logger *logger.Logger
}

// NewMessageRepository returns a PostgreSQL-backed [MessageRepository].
func NewMessageRepository(db *DB, log *logger.Logger) MessageRepository {
	return &messageRepository{DB: db, logger: log}
}

func (m *messageRepository) List(ctx context.Context) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select(messageColumns...).
		From("messages").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.List").Stringer("class", m.classify(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var message models.Message
		if err = rows.Scan(&message.ID, &message.Email, &message.Message, &message.Timestamp, &message.Read); err != nil {
			log.Err(err).Str("func", "*messageRepository.List").Msg("error scanning message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, message)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.List").Msg("error iterating message rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func (m *messageRepository) Get(ctx context.Context, id string) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(messageColumns...).From("messages").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.Get").Msg("error building query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var message models.Message
	err = m.QueryRowContext(ctx, query, args...).Scan(&message.ID, &message.Email, &message.Message, &message.Timestamp, &message.Read)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.Get").Msg("error scanning message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return message, nil
}

func (m *messageRepository) Create(ctx context.Context, message models.Message) error {
	return m.execSingle(ctx, "*messageRepository.Create", psql.
		Insert("messages").
		Columns(messageColumns...).
		Values(message.ID, message.Email, message.Message, message.Timestamp, message.Read))
}

func (m *messageRepository) MarkRead(ctx context.Context, id string) error {
	return m.execSingle(ctx, "*messageRepository.MarkRead", psql.
		Update("messages").
		Set("is_read", true).
		Where(sq.Eq{"id": id}))
}

func (m *messageRepository) Delete(ctx context.Context, id string) error {
	return m.execSingle(ctx, "*messageRepository.Delete", psql.Delete("messages").Where(sq.Eq{"id": id}))
}
