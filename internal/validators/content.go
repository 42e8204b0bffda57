// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
)

// Field names accepted by [ContentValidator.Validate] to restrict which
// checks run.
const (
	FieldID         = "id"
	FieldTitle      = "title"
	FieldCategory   = "category"
	FieldAttachment = "attachment"
	FieldEmail      = "email"
	FieldMessage    = "message"
	FieldLinks      = "links"
)

// ContentValidator validates portfolio content: profile, project and
// resource drafts, contact requests and entity ids.
type ContentValidator struct {
	maxAttachmentSize int64
}

// NewContentValidator returns a [Validator] for content models. A
// maxAttachmentSize of zero or less disables the attachment size check.
func NewContentValidator(maxAttachmentSize int64) Validator {
	return &ContentValidator{maxAttachmentSize: maxAttachmentSize}
}

// Validate dispatches on the dynamic type of obj. Strings are treated as
// entity ids. Without fields every check applicable to the type runs.
func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateID(value)
	case models.Profile:
		return v.validateProfile(value, fields...)
	case *models.Profile:
		return v.validateProfile(*value, fields...)
	case models.ProjectDraft:
		return v.validateProjectDraft(value, fields...)
	case *models.ProjectDraft:
		return v.validateProjectDraft(*value, fields...)
	case models.ResourceDraft:
		return v.validateResourceDraft(value, fields...)
	case *models.ResourceDraft:
		return v.validateResourceDraft(*value, fields...)
	case models.ContactRequest:
		return v.validateContactRequest(value, fields...)
	case *models.ContactRequest:
		return v.validateContactRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validateID(id string) error {
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, "/\\") {
		return ErrInvalidID
	}
	return nil
}

// validateProfile allows every field to be empty; set fields must be well
// formed.
func (v *ContentValidator) validateProfile(profile models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldLinks}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if profile.Email != "" && !validEmail(profile.Email) {
				return ErrInvalidEmail
			}
		case FieldLinks:
			for _, link := range []string{profile.LinkedIn, profile.GitHub} {
				if link != "" && !validURL(link) {
					return ErrInvalidURL
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentValidator) validateProjectDraft(draft models.ProjectDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(draft.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentValidator) validateResourceDraft(draft models.ResourceDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCategory, FieldAttachment}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(draft.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldCategory:
			if !draft.Category.Valid() {
				return ErrInvalidCategory
			}
		case FieldAttachment:
			if draft.Attachment == nil {
				continue
			}
			if len(draft.Attachment.Content) == 0 {
				return ErrEmptyAttachment
			}
			if v.maxAttachmentSize > 0 && int64(len(draft.Attachment.Content)) > v.maxAttachmentSize {
				return ErrAttachmentTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentValidator) validateContactRequest(req models.ContactRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !validEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldMessage:
			if strings.TrimSpace(req.Message) == "" {
				return ErrEmptyMessage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validEmail accepts a bare address only, without a display name.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
