// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// ── Profile ──

type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{validator: validators.NewContentValidator(0)}
}

func (v *ProfileValidationService) Get(ctx context.Context) (*models.Profile, error) {
	return v.inner.Get(ctx)
}

func (v *ProfileValidationService) Save(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if err := v.validator.Validate(ctx, profile); err != nil {
		return models.Profile{}, invalid(err)
	}
	return v.inner.Save(ctx, profile)
}

func (v *ProfileValidationService) Wrap(inner ProfileService) ProfileService {
	v.inner = inner
	return v
}

// ── Projects ──

type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService() ProjectServiceWrapper {
	return &ProjectValidationService{validator: validators.NewContentValidator(0)}
}

func (v *ProjectValidationService) List(ctx context.Context) ([]models.Project, error) {
	return v.inner.List(ctx)
}

func (v *ProjectValidationService) Create(ctx context.Context, draft models.ProjectDraft) (models.Project, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Project{}, invalid(err)
	}
	return v.inner.Create(ctx, draft)
}

func (v *ProjectValidationService) Update(ctx context.Context, id string, draft models.ProjectDraft) (models.Project, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Project{}, invalid(err)
	}
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Project{}, invalid(err)
	}
	return v.inner.Update(ctx, id, draft)
}

func (v *ProjectValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return invalid(err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *ProjectValidationService) Wrap(inner ProjectService) ProjectService {
	v.inner = inner
	return v
}

// ── Resources ──

type ResourceValidationService struct {
	inner     ResourceService
	validator validators.Validator
}

// NewResourceValidationService rejects attachments larger than
// maxUploadSize bytes; zero disables the limit.
func NewResourceValidationService(maxUploadSize int64) ResourceServiceWrapper {
	return &ResourceValidationService{validator: validators.NewContentValidator(maxUploadSize)}
}

func (v *ResourceValidationService) List(ctx context.Context) ([]models.Resource, error) {
	return v.inner.List(ctx)
}

func (v *ResourceValidationService) Create(ctx context.Context, draft models.ResourceDraft) (models.Resource, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Resource{}, invalid(err)
	}
	return v.inner.Create(ctx, draft)
}

func (v *ResourceValidationService) Update(ctx context.Context, id string, draft models.ResourceDraft) (models.Resource, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Resource{}, invalid(err)
	}
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Resource{}, invalid(err)
	}
	return v.inner.Update(ctx, id, draft)
}

func (v *ResourceValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return invalid(err)
	}
	return v.inner.Delete(ctx, id)
}

// OpenFile rejects names that would leave the attachments directory.
func (v *ResourceValidationService) OpenFile(ctx context.Context, name string) (store.Attachment, error) {
	if err := v.validator.Validate(ctx, name); err != nil {
		return store.Attachment{}, invalid(err)
	}
	return v.inner.OpenFile(ctx, name)
}

func (v *ResourceValidationService) Wrap(inner ResourceService) ResourceService {
	v.inner = inner
	return v
}

// ── Messages ──

type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{validator: validators.NewContentValidator(0)}
}

func (v *MessageValidationService) List(ctx context.Context) ([]models.Message, error) {
	return v.inner.List(ctx)
}

func (v *MessageValidationService) Create(ctx context.Context, req models.ContactRequest) (models.Message, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Message{}, invalid(err)
	}
	return v.inner.Create(ctx, req)
}

func (v *MessageValidationService) MarkRead(ctx context.Context, id string) (models.Message, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Message{}, invalid(err)
	}
	return v.inner.MarkRead(ctx, id)
}

func (v *MessageValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return invalid(err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *MessageValidationService) Wrap(inner MessageService) MessageService {
	v.inner = inner
	return v
}
