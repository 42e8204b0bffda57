// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
)

func TestContentValidator_Dispatch(t *testing.T) {
	v := NewContentValidator(0)
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.NoError(t, v.Validate(ctx, "0194f0c2-aaaa"))
	assert.NoError(t, v.Validate(ctx, &models.ProjectDraft{Title: "x"}))
	assert.NoError(t, v.Validate(ctx, &models.Profile{}))
}

func TestContentValidator_ID(t *testing.T) {
	v := NewContentValidator(0)
	ctx := context.Background()

	for _, id := range []string{"", "   ", "../etc", `a\b`} {
		assert.ErrorIs(t, v.Validate(ctx, id), ErrInvalidID, id)
	}
}

func TestContentValidator_Profile(t *testing.T) {
	v := NewContentValidator(0)
	ctx := context.Background()

	tests := []struct {
		name    string
		profile models.Profile
		fields  []string
		wantErr error
	}{
		{name: "empty profile", profile: models.Profile{}},
		{name: "valid", profile: models.Profile{Email: "me@site.test", GitHub: "https://github.com/me"}},
		{name: "bad email", profile: models.Profile{Email: "not-an-email"}, wantErr: ErrInvalidEmail},
		{name: "display name email", profile: models.Profile{Email: "Me <me@site.test>"}, wantErr: ErrInvalidEmail},
		{name: "bad link", profile: models.Profile{LinkedIn: "linkedin.com/in/me"}, wantErr: ErrInvalidURL},
		{name: "links only skips email", profile: models.Profile{Email: "bad"}, fields: []string{FieldLinks}},
		{name: "unknown field", profile: models.Profile{}, fields: []string{FieldTitle}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.profile, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContentValidator_ProjectDraft(t *testing.T) {
	v := NewContentValidator(0)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ProjectDraft{Title: "Cache layer"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProjectDraft{Title: "  "}), ErrEmptyTitle)
}

func TestContentValidator_ResourceDraft(t *testing.T) {
	v := NewContentValidator(4)
	ctx := context.Background()

	valid := models.ResourceDraft{Title: "Go", Category: models.CategoryBackend}

	tests := []struct {
		name    string
		mutate  func(d *models.ResourceDraft)
		wantErr error
	}{
		{name: "valid", mutate: func(d *models.ResourceDraft) {}},
		{name: "no title", mutate: func(d *models.ResourceDraft) { d.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "bad category", mutate: func(d *models.ResourceDraft) { d.Category = "music" }, wantErr: ErrInvalidCategory},
		{name: "small attachment", mutate: func(d *models.ResourceDraft) {
			d.Attachment = &models.Attachment{Name: "a.pdf", Content: []byte("1234")}
		}},
		{name: "empty attachment", mutate: func(d *models.ResourceDraft) {
			d.Attachment = &models.Attachment{Name: "a.pdf"}
		}, wantErr: ErrEmptyAttachment},
		{name: "large attachment", mutate: func(d *models.ResourceDraft) {
			d.Attachment = &models.Attachment{Name: "a.pdf", Content: []byte("12345")}
		}, wantErr: ErrAttachmentTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := v.Validate(ctx, d)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContentValidator_ContactRequest(t *testing.T) {
	v := NewContentValidator(0)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ContactRequest{Email: "a@b.com", Message: "hi"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ContactRequest{Email: "a@b.com", Message: " "}), ErrEmptyMessage)
	assert.ErrorIs(t, v.Validate(ctx, models.ContactRequest{Email: "", Message: "hi"}), ErrInvalidEmail)
	assert.NoError(t, v.Validate(ctx, models.ContactRequest{Email: "a@b.com"}, FieldEmail))
}
