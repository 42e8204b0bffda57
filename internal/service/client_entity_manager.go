// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
)

// Entity is anything an [EntityManager] keeps in its list.
type Entity interface {
	EntityID() string
}

// EntityGateway is the set of remote calls an [EntityManager] drives. A nil
// Create or Update makes the corresponding manager method fail with
// [errors.ErrUnsupported].
type EntityGateway[T Entity, D any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, draft D) (T, error)
	Update func(ctx context.Context, id string, draft D) (T, error)
	Delete func(ctx context.Context, id string) error
}

// EntityNames are the singular and plural labels used in notices.
type EntityNames struct {
	Singular string
	Plural   string
}

// EntityManager keeps the local copy of one remote collection in sync with
// the content service, together with the add/edit form state.
//
// Remote calls run without holding the lock; their results are applied to
// whatever the list looks like when they complete. Local state changes only
// after the service confirms an operation.
type EntityManager[T Entity, D any] struct {
	gateway EntityGateway[T, D]
	draftOf func(T) D
	names   EntityNames
	logger  *logger.Logger

	mu        sync.RWMutex
	items     []T
	mode      EditMode
	editingID string
	draft     D
	// formGen changes whenever the form is opened, cancelled or reset. A
	// save only resets the form it was started from.
	formGen uint64
	notice  Notice
}

// NewEntityManager builds a manager over gateway. draftOf extracts the
// editable part of an entity when editing starts.
func NewEntityManager[T Entity, D any](gateway EntityGateway[T, D], draftOf func(T) D, names EntityNames, log *logger.Logger) *EntityManager[T, D] {
	if log == nil {
		log = logger.Nop()
	}
	return &EntityManager[T, D]{
		gateway: gateway,
		draftOf: draftOf,
		names:   names,
		logger:  log,
		items:   []T{},
	}
}

// Items returns a copy of the local list in service order.
func (m *EntityManager[T, D]) Items() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.items)
}

// Find returns the local entry with id.
func (m *EntityManager[T, D]) Find(id string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return m.items[idx], true
}

// Load replaces the local list with the service's. On failure the previous
// list is kept. Entries without an id are dropped.
func (m *EntityManager[T, D]) Load(ctx context.Context) error {
	items, err := m.gateway.List(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "*EntityManager.Load").Str("entity", m.names.Plural).Msg("error loading entities")
		m.setNotice(failureNotice(fmt.Sprintf(app.MsgLoadFailed, m.names.Plural), err))
		return mapGatewayError(err)
	}

	valid := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() == "" {
			m.logger.Warn().Str("func", "*EntityManager.Load").Str("entity", m.names.Plural).Msg("skipping entry without id")
			continue
		}
		valid = append(valid, item)
	}

	m.mu.Lock()
	m.items = valid
	m.mu.Unlock()

	return nil
}

// Create sends draft to the service and appends the returned entity.
func (m *EntityManager[T, D]) Create(ctx context.Context, draft D) (T, error) {
	return m.create(ctx, draft, m.generation())
}

func (m *EntityManager[T, D]) create(ctx context.Context, draft D, gen uint64) (T, error) {
	var zero T
	if m.gateway.Create == nil {
		return zero, errors.ErrUnsupported
	}

	created, err := m.gateway.Create(ctx, draft)
	if err != nil {
		m.logger.Err(err).Str("func", "*EntityManager.Create").Str("entity", m.names.Plural).Msg("error creating entity")
		m.setNotice(failureNotice(fmt.Sprintf(app.MsgCreateFailed, m.names.Singular), err))
		return zero, mapGatewayError(err)
	}
	if created.EntityID() == "" {
		m.logger.Error().Str("func", "*EntityManager.Create").Str("entity", m.names.Plural).Msg("service returned entity without id")
		m.setNotice(Notice{Text: fmt.Sprintf(app.MsgCreateFailed, m.names.Singular) + ": " + app.MsgUnexpectedResponse, IsError: true})
		return zero, ErrMalformedResponse
	}

	m.mu.Lock()
	m.items = append(m.items, created)
	m.finishEditLocked(gen)
	m.notice = Notice{Text: fmt.Sprintf(app.MsgCreated, m.names.Singular)}
	m.mu.Unlock()

	return created, nil
}

// Update sends draft for id and replaces the matching local entry with the
// service's copy. Nothing changes locally before the service answers.
func (m *EntityManager[T, D]) Update(ctx context.Context, id string, draft D) (T, error) {
	return m.update(ctx, id, draft, m.generation())
}

func (m *EntityManager[T, D]) update(ctx context.Context, id string, draft D, gen uint64) (T, error) {
	var zero T
	if m.gateway.Update == nil {
		return zero, errors.ErrUnsupported
	}

	updated, err := m.gateway.Update(ctx, id, draft)
	if err != nil {
		m.logger.Err(err).Str("func", "*EntityManager.Update").Str("entity", m.names.Plural).Str("id", id).Msg("error updating entity")
		m.setNotice(failureNotice(fmt.Sprintf(app.MsgUpdateFailed, m.names.Singular), err))
		return zero, mapGatewayError(err)
	}

	m.mu.Lock()
	m.replaceLocked(id, updated)
	m.finishEditLocked(gen)
	m.notice = Notice{Text: fmt.Sprintf(app.MsgUpdated, m.names.Singular)}
	m.mu.Unlock()

	return updated, nil
}

// Delete removes id on the service and prunes the local entry only after
// the service confirms. On failure the entry stays.
func (m *EntityManager[T, D]) Delete(ctx context.Context, id string) error {
	if err := m.gateway.Delete(ctx, id); err != nil {
		m.logger.Err(err).Str("func", "*EntityManager.Delete").Str("entity", m.names.Plural).Str("id", id).Msg("error deleting entity")
		m.setNotice(failureNotice(fmt.Sprintf(app.MsgDeleteFailed, m.names.Singular), err))
		return mapGatewayError(err)
	}

	m.mu.Lock()
	if idx := m.indexOf(id); idx >= 0 {
		m.items = slices.Delete(m.items, idx, idx+1)
	}
	if m.mode == EditEditing && m.editingID == id {
		m.resetEditLocked()
	}
	m.notice = Notice{Text: fmt.Sprintf(app.MsgDeleted, m.names.Singular)}
	m.mu.Unlock()

	return nil
}

// StartAdd opens an empty draft. It is a no-op while already adding and
// fails with [ErrEditInProgress] while editing.
func (m *EntityManager[T, D]) StartAdd() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.mode {
	case EditAdding:
		return nil
	case EditEditing:
		return ErrEditInProgress
	}

	var empty D
	m.mode = EditAdding
	m.editingID = ""
	m.draft = empty
	m.formGen++
	return nil
}

// StartEdit loads the entry with id into the draft. It may interrupt an add
// or another edit.
func (m *EntityManager[T, D]) StartEdit(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return ErrUnknownEntity
	}

	m.mode = EditEditing
	m.editingID = id
	m.draft = m.draftOf(m.items[idx])
	m.formGen++
	return nil
}

// CancelEdit discards the draft and returns to idle.
func (m *EntityManager[T, D]) CancelEdit() {
	m.mu.Lock()
	m.resetEditLocked()
	m.mu.Unlock()
}

// Mode returns the form state and, while editing, the id being edited.
func (m *EntityManager[T, D]) Mode() (EditMode, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.mode, m.editingID
}

func (m *EntityManager[T, D]) Draft() D {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.draft
}

// SetDraft replaces the draft while adding or editing; it is ignored when idle.
func (m *EntityManager[T, D]) SetDraft(draft D) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mode != EditIdle {
		m.draft = draft
	}
}

// Save submits the draft: Create while adding, Update while editing. If the
// form is cancelled or reopened while the call is in flight, the result
// still lands in the list but the newer form is left alone.
func (m *EntityManager[T, D]) Save(ctx context.Context) (T, error) {
	m.mu.RLock()
	mode, id, draft, gen := m.mode, m.editingID, m.draft, m.formGen
	m.mu.RUnlock()

	switch mode {
	case EditAdding:
		return m.create(ctx, draft, gen)
	case EditEditing:
		return m.update(ctx, id, draft, gen)
	}

	var zero T
	return zero, ErrNoDraft
}

func (m *EntityManager[T, D]) Notice() Notice {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.notice
}

func (m *EntityManager[T, D]) ClearNotice() {
	m.setNotice(Notice{})
}

// replace swaps the entry with id for item, if it is still in the list.
func (m *EntityManager[T, D]) replace(id string, item T) {
	m.mu.Lock()
	m.replaceLocked(id, item)
	m.mu.Unlock()
}

func (m *EntityManager[T, D]) replaceLocked(id string, item T) {
	if idx := m.indexOf(id); idx >= 0 {
		m.items[idx] = item
	}
}

func (m *EntityManager[T, D]) setNotice(n Notice) {
	m.mu.Lock()
	m.notice = n
	m.mu.Unlock()
}

func (m *EntityManager[T, D]) resetEditLocked() {
	var empty D
	m.mode = EditIdle
	m.editingID = ""
	m.draft = empty
	m.formGen++
}

// finishEditLocked closes the form a save started from, if it is still open.
func (m *EntityManager[T, D]) finishEditLocked(gen uint64) {
	if m.formGen == gen {
		m.resetEditLocked()
	}
}

func (m *EntityManager[T, D]) generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.formGen
}

func (m *EntityManager[T, D]) indexOf(id string) int {
	return slices.IndexFunc(m.items, func(item T) bool { return item.EntityID() == id })
}
