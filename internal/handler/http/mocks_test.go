// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

// ── ProfileService ──

type mockProfileService struct {
	getFn  func(ctx context.Context) (*models.Profile, error)
	saveFn func(ctx context.Context, p models.Profile) (models.Profile, error)
}

func (m *mockProfileService) Get(ctx context.Context) (*models.Profile, error) {
	return m.getFn(ctx)
}

func (m *mockProfileService) Save(ctx context.Context, p models.Profile) (models.Profile, error) {
	return m.saveFn(ctx, p)
}

// ── ProjectService ──

type mockProjectService struct {
	listFn   func(ctx context.Context) ([]models.Project, error)
	createFn func(ctx context.Context, d models.ProjectDraft) (models.Project, error)
	updateFn func(ctx context.Context, id string, d models.ProjectDraft) (models.Project, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockProjectService) List(ctx context.Context) ([]models.Project, error) {
	return m.listFn(ctx)
}

func (m *mockProjectService) Create(ctx context.Context, d models.ProjectDraft) (models.Project, error) {
	return m.createFn(ctx, d)
}

func (m *mockProjectService) Update(ctx context.Context, id string, d models.ProjectDraft) (models.Project, error) {
	return m.updateFn(ctx, id, d)
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// ── ResourceService ──

type mockResourceService struct {
	listFn     func(ctx context.Context) ([]models.Resource, error)
	createFn   func(ctx context.Context, d models.ResourceDraft) (models.Resource, error)
	updateFn   func(ctx context.Context, id string, d models.ResourceDraft) (models.Resource, error)
	deleteFn   func(ctx context.Context, id string) error
	openFileFn func(ctx context.Context, name string) (store.Attachment, error)
}

func (m *mockResourceService) List(ctx context.Context) ([]models.Resource, error) {
	return m.listFn(ctx)
}

func (m *mockResourceService) Create(ctx context.Context, d models.ResourceDraft) (models.Resource, error) {
	return m.createFn(ctx, d)
}

func (m *mockResourceService) Update(ctx context.Context, id string, d models.ResourceDraft) (models.Resource, error) {
	return m.updateFn(ctx, id, d)
}

func (m *mockResourceService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockResourceService) OpenFile(ctx context.Context, name string) (store.Attachment, error) {
	return m.openFileFn(ctx, name)
}

// ── MessageService ──

type mockMessageService struct {
	listFn     func(ctx context.Context) ([]models.Message, error)
	createFn   func(ctx context.Context, req models.ContactRequest) (models.Message, error)
	markReadFn func(ctx context.Context, id string) (models.Message, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockMessageService) List(ctx context.Context) ([]models.Message, error) {
	return m.listFn(ctx)
}

func (m *mockMessageService) Create(ctx context.Context, req models.ContactRequest) (models.Message, error) {
	return m.createFn(ctx, req)
}

func (m *mockMessageService) MarkRead(ctx context.Context, id string) (models.Message, error) {
	return m.markReadFn(ctx, id)
}

func (m *mockMessageService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// ── AuthService ──

type mockAuthService struct {
	enabled      bool
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.Token, error)
	parseTokenFn func(ctx context.Context, s string) (models.Token, error)
}

func (m *mockAuthService) Enabled() bool {
	return m.enabled
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, s string) (models.Token, error) {
	return m.parseTokenFn(ctx, s)
}

// ── AppInfoService ──

type mockAppInfoService struct {
	version string
	build   models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.build
}

// ── helpers ──

type nopSeekCloser struct {
	*bytes.Reader
}

func (nopSeekCloser) Close() error { return nil }

func memAttachment(name, body string) store.Attachment {
	return store.Attachment{
		ReadSeekCloser: nopSeekCloser{bytes.NewReader([]byte(body))},
		Name:           name,
		Size:           int64(len(body)),
		ModTime:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

var _ io.ReadSeekCloser = nopSeekCloser{}
