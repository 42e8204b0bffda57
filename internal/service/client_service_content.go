// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// CategoryAll disables the resource category filter.
const CategoryAll models.Category = "all"

// ── Projects ──

// ProjectManager keeps the case-study list.
type ProjectManager struct {
	*EntityManager[models.Project, models.ProjectDraft]
}

func NewProjectManager(gateway adapter.ServerAdapter, log *logger.Logger) *ProjectManager {
	return &ProjectManager{
		EntityManager: NewEntityManager(EntityGateway[models.Project, models.ProjectDraft]{
			List:   gateway.ListProjects,
			Create: gateway.CreateProject,
			Update: gateway.UpdateProject,
			Delete: gateway.DeleteProject,
		}, models.Project.Draft, EntityNames{Singular: "Project", Plural: "projects"}, log),
	}
}

// ── Resources ──

// ResourceManager keeps the learning-resource list and fetches documents.
type ResourceManager struct {
	*EntityManager[models.Resource, models.ResourceDraft]
	gateway adapter.ServerAdapter
}

func NewResourceManager(gateway adapter.ServerAdapter, log *logger.Logger) *ResourceManager {
	return &ResourceManager{
		EntityManager: NewEntityManager(EntityGateway[models.Resource, models.ResourceDraft]{
			List:   gateway.ListResources,
			Create: gateway.CreateResource,
			Update: gateway.UpdateResource,
			Delete: gateway.DeleteResource,
		}, models.Resource.Draft, EntityNames{Singular: "Resource", Plural: "resources"}, log),
		gateway: gateway,
	}
}

// Filter returns the resources in category, or all of them for
// [CategoryAll].
func (r *ResourceManager) Filter(category models.Category) []models.Resource {
	items := r.Items()
	if category == CategoryAll || category == "" {
		return items
	}

	out := make([]models.Resource, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Document downloads the file attached to the resource with id.
func (r *ResourceManager) Document(ctx context.Context, id string) ([]byte, error) {
	resource, ok := r.Find(id)
	if !ok {
		return nil, ErrUnknownEntity
	}
	if !resource.HasFile() {
		return nil, ErrNoAttachment
	}

	content, err := r.gateway.DownloadFile(ctx, resource.FileURL)
	if err != nil {
		r.logger.Err(err).Str("func", "*ResourceManager.Document").Str("id", id).Msg("error downloading document")
		return nil, mapGatewayError(err)
	}
	return content, nil
}

// ── Messages ──

// MessageManager is the admin inbox. It reads the same collection contact
// submissions are written to.
type MessageManager struct {
	*EntityManager[models.Message, models.ContactRequest]
	gateway adapter.ServerAdapter
}

func NewMessageManager(gateway adapter.ServerAdapter, log *logger.Logger) *MessageManager {
	return &MessageManager{
		EntityManager: NewEntityManager(EntityGateway[models.Message, models.ContactRequest]{
			List:   gateway.ListMessages,
			Create: gateway.SendMessage,
			Delete: gateway.DeleteMessage,
		}, func(m models.Message) models.ContactRequest {
			return models.ContactRequest{Email: m.Email, Message: m.Message}
		}, EntityNames{Singular: "Message", Plural: "messages"}, log),
		gateway: gateway,
	}
}

// MarkRead flags the message as read on the service, then locally.
func (m *MessageManager) MarkRead(ctx context.Context, id string) error {
	msg, err := m.gateway.MarkMessageRead(ctx, id)
	if err != nil {
		m.logger.Err(err).Str("func", "*MessageManager.MarkRead").Str("id", id).Msg("error marking message as read")
		m.setNotice(failureNotice("Failed to mark message as read", err))
		return mapGatewayError(err)
	}

	m.replace(id, msg)
	return nil
}

func (m *MessageManager) UnreadCount() int {
	count := 0
	for _, msg := range m.Items() {
		if !msg.Read {
			count++
		}
	}
	return count
}

// Refresh reloads the inbox.
func (m *MessageManager) Refresh(ctx context.Context) error {
	return m.Load(ctx)
}

// ── Profile ──

// ProfileManager keeps the singleton profile.
type ProfileManager struct {
	gateway adapter.ServerAdapter
	logger  *logger.Logger

	mu      sync.RWMutex
	profile models.Profile
	loaded  bool
	notice  Notice
}

func NewProfileManager(gateway adapter.ServerAdapter, log *logger.Logger) *ProfileManager {
	if log == nil {
		log = logger.Nop()
	}
	return &ProfileManager{gateway: gateway, logger: log}
}

// Load fetches the profile. A service without a saved profile yields an
// empty one. A failed first load also falls back to an empty profile; a
// failed reload keeps the previous one.
func (p *ProfileManager) Load(ctx context.Context) error {
	profile, err := p.gateway.GetProfile(ctx)
	if err != nil {
		p.logger.Err(err).Str("func", "*ProfileManager.Load").Msg("error loading profile")

		p.mu.Lock()
		if !p.loaded {
			p.profile = models.Profile{}
		}
		p.notice = failureNotice(app.MsgProfileLoadFailed, err)
		p.mu.Unlock()
		return mapGatewayError(err)
	}

	p.mu.Lock()
	if profile != nil {
		p.profile = *profile
	} else {
		p.profile = models.Profile{}
	}
	p.loaded = true
	p.mu.Unlock()

	return nil
}

// Save replaces the whole profile. The local copy changes only on success.
func (p *ProfileManager) Save(ctx context.Context, profile models.Profile) error {
	saved, err := p.gateway.UpdateProfile(ctx, profile)
	if err != nil {
		p.logger.Err(err).Str("func", "*ProfileManager.Save").Msg("error saving profile")
		p.setNotice(failureNotice(app.MsgProfileSaveFailed, err))
		return mapGatewayError(err)
	}

	p.mu.Lock()
	p.profile = saved
	p.loaded = true
	p.notice = Notice{Text: app.MsgProfileSaved}
	p.mu.Unlock()

	return nil
}

func (p *ProfileManager) Profile() models.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := p.profile
	out.CurrentFocus = append(models.CommaList(nil), p.profile.CurrentFocus...)
	out.Skills = append(models.CommaList(nil), p.profile.Skills...)
	return out
}

func (p *ProfileManager) Notice() Notice {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.notice
}

func (p *ProfileManager) setNotice(n Notice) {
	p.mu.Lock()
	p.notice = n
	p.mu.Unlock()
}

// ── Contact form ──

// ContactForm is the public "get in touch" form.
type ContactForm struct {
	gateway adapter.ServerAdapter
	logger  *logger.Logger

	mu        sync.RWMutex
	email     string
	message   string
	submitted bool
	notice    Notice
}

func NewContactForm(gateway adapter.ServerAdapter, log *logger.Logger) *ContactForm {
	if log == nil {
		log = logger.Nop()
	}
	return &ContactForm{gateway: gateway, logger: log}
}

func (f *ContactForm) SetEmail(email string) {
	f.mu.Lock()
	f.email = email
	f.submitted = false
	f.mu.Unlock()
}

func (f *ContactForm) SetMessage(message string) {
	f.mu.Lock()
	f.message = message
	f.submitted = false
	f.mu.Unlock()
}

// Fields returns the current email and message.
func (f *ContactForm) Fields() (string, string) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.email, f.message
}

// Submit posts the form. On success both fields are cleared and Submitted
// reports true; on failure the fields are kept for another attempt.
func (f *ContactForm) Submit(ctx context.Context) error {
	email, message := f.Fields()
	if strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		f.setNotice(Notice{Text: app.MsgMessageSendFailed + ": " + app.MsgInvalidDataProvided, IsError: true})
		return ErrInvalidDataProvided
	}

	if _, err := f.gateway.SendMessage(ctx, models.ContactRequest{Email: email, Message: message}); err != nil {
		f.logger.Err(err).Str("func", "*ContactForm.Submit").Msg("error sending message")
		f.setNotice(failureNotice(app.MsgMessageSendFailed, err))
		return mapGatewayError(err)
	}

	f.mu.Lock()
	f.email, f.message = "", ""
	f.submitted = true
	f.notice = Notice{Text: app.MsgMessageSent}
	f.mu.Unlock()

	return nil
}

func (f *ContactForm) Submitted() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.submitted
}

func (f *ContactForm) Notice() Notice {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.notice
}

func (f *ContactForm) setNotice(n Notice) {
	f.mu.Lock()
	f.notice = n
	f.mu.Unlock()
}
