// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type messageService struct {
	repo  store.MessageRepository
	ids   IDGenerator
	cache *ListCache
	now   func() time.Time
}

func NewMessageService(repo store.MessageRepository, ids IDGenerator, cache *ListCache) MessageService {
	return &messageService{repo: repo, ids: ids, cache: cache, now: time.Now}
}

func (m *messageService) List(ctx context.Context) ([]models.Message, error) {
	messages, err := getCachedData(m.cache, cacheKeyMessages, func() ([]models.Message, error) {
		return m.repo.List(ctx)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.List").Msg("error listing messages")
		return nil, fmt.Errorf("error listing messages: %w", err)
	}

	return slices.Clone(messages), nil
}

// Create stores a contact submission as an unread message stamped with the
// current time.
func (m *messageService) Create(ctx context.Context, req models.ContactRequest) (models.Message, error) {
	message := models.Message{
		ID:        m.ids.Generate(),
		Email:     strings.TrimSpace(req.Email),
		Message:   req.Message,
		Timestamp: m.now().UTC().Truncate(time.Millisecond),
	}

	if err := m.repo.Create(ctx, message); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.Create").Msg("error creating message")
		return models.Message{}, fmt.Errorf("error creating message: %w", err)
	}
	m.cache.invalidate(cacheKeyMessages)

	return message, nil
}

func (m *messageService) MarkRead(ctx context.Context, id string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if err := m.repo.MarkRead(ctx, id); err != nil {
		log.Err(err).Str("func", "*messageService.MarkRead").Str("id", id).Msg("error marking message as read")
		return models.Message{}, fmt.Errorf("error marking message as read: %w", err)
	}
	m.cache.invalidate(cacheKeyMessages)

	message, err := m.repo.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*messageService.MarkRead").Str("id", id).Msg("error reading message")
		return models.Message{}, fmt.Errorf("error reading message: %w", err)
	}

	return message, nil
}

func (m *messageService) Delete(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.Delete").Str("id", id).Msg("error deleting message")
		return fmt.Errorf("error deleting message: %w", err)
	}
	m.cache.invalidate(cacheKeyMessages)

	return nil
}
