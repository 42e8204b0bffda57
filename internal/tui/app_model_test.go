// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	gw := mock.NewMockServerAdapter(ctrl)

	local, err := store.NewClientStorages(ctx, config.ClientStorage{}, logger.Nop())
	require.NoError(t, err)

	services := service.NewClientServices(local, gw, config.ClientApp{AdminLogin: "admin", AdminPassword: "secret"}, logger.Nop())
	return newAppModel(ctx, services, models.AppBuildInfo{}), gw
}

func newAdminModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	m, gw := newTestModel(t)
	m.admin = true
	m.current = screenDashboard
	return m, gw
}

func press(t *testing.T, m appModel, k tea.KeyMsg) (appModel, tea.Cmd) {
	t.Helper()
	return send(t, m, k)
}

func send(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out, cmd
}

func openScreen(t *testing.T, m appModel, item string) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.open(item)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

// collect runs cmd and every command batched under it, dropping spinner
// ticks. Commands that sleep must not be passed in.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		return nil
	}
	return []tea.Msg{msg}
}

func single(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	return msgs[0]
}

// ── Navigation ──

func TestAppModel_OpenProjectsFromHome(t *testing.T) {
	m, gw := newTestModel(t)
	projects := []models.Project{{ID: "p1", ProjectDraft: models.ProjectDraft{Title: "Alpha"}}}
	gw.EXPECT().ListProjects(gomock.Any()).Return(projects, nil)

	m, _ = press(t, m, keyDown)
	m, cmd := press(t, m, keyEnter)

	assert.Equal(t, screenProjects, m.current)
	assert.True(t, m.loading)

	m, _ = send(t, m, single(t, cmd))
	assert.False(t, m.loading)
	assert.False(t, m.showError)
	assert.Contains(t, m.View(), "Alpha")

	m, _ = press(t, m, keyEsc)
	assert.Equal(t, screenHome, m.current)
}

func TestAppModel_LoadFailureShowsOverlay(t *testing.T) {
	m, gw := newTestModel(t)
	gw.EXPECT().ListResources(gomock.Any()).Return(nil, &adapter.TransportError{Op: "list", Err: errors.New("refused")})

	m, cmd := openScreen(t, m, "Resources")
	m, _ = send(t, m, single(t, cmd))

	assert.True(t, m.showError)
	assert.Equal(t, app.MsgServiceUnavailable, m.errorOverlay.message)

	m, _ = press(t, m, keyEnter)
	assert.False(t, m.showError)
	assert.Equal(t, screenResources, m.current)
}

func TestAppModel_QuitSetsUserQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.ErrorIs(t, m.err, ErrUserQuit)
}

func TestAppModel_BuildInfoOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m.buildInfo = models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123")

	m, _ = press(t, m, runes("v"))
	assert.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "v1.2.3")

	m, _ = press(t, m, keyEsc)
	assert.False(t, m.showBuildInfo)
}

// ── Login ──

func TestAppModel_Login(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		setup     func(gw *mock.MockServerAdapter)
		wantAdmin bool
		wantError string
	}{
		{
			name:     "valid credentials",
			password: "secret",
			setup: func(gw *mock.MockServerAdapter) {
				gw.EXPECT().Login(gomock.Any(), "admin", "secret").Return(nil)
				gw.EXPECT().Token().Return("signed.jwt")
			},
			wantAdmin: true,
		},
		{
			name:     "service without token auth",
			password: "secret",
			setup: func(gw *mock.MockServerAdapter) {
				gw.EXPECT().Login(gomock.Any(), "admin", "secret").Return(&adapter.ResponseError{Op: "login", StatusCode: 404})
			},
			wantAdmin: true,
		},
		{
			name:      "wrong password",
			password:  "guess",
			setup:     func(*mock.MockServerAdapter) {},
			wantError: app.MsgInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, gw := newTestModel(t)
			tt.setup(gw)

			m.current = screenLogin
			m.login = newLoginForm().withValues("admin", tt.password)

			m, cmd := press(t, m, keyEnter)
			assert.True(t, m.login.submitting)

			msg := single(t, cmd)
			if tt.wantAdmin {
				gw.EXPECT().ListMessages(gomock.Any()).Return(nil, nil)
			}
			m, cmd = send(t, m, msg)

			assert.False(t, m.login.submitting)
			assert.Equal(t, tt.wantAdmin, m.admin)
			if tt.wantAdmin {
				assert.Equal(t, screenDashboard, m.current)
				_ = collect(cmd)
				return
			}
			assert.True(t, m.showError)
			assert.Equal(t, tt.wantError, m.errorOverlay.message)
			assert.Equal(t, screenLogin, m.current)
		})
	}
}

func TestAppModel_LoginRequiresBothFields(t *testing.T) {
	m, _ := newTestModel(t)
	m.current = screenLogin
	m.login = newLoginForm().withValues("admin")

	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.False(t, m.login.submitting)
}

func TestAppModel_Logout(t *testing.T) {
	m, gw := newAdminModel(t)
	gw.EXPECT().SetToken("")

	m, _ = press(t, m, runes("o"))

	assert.False(t, m.admin)
	assert.Equal(t, screenHome, m.current)
	assert.Equal(t, "Logged out", m.status)
	assert.False(t, m.services.SessionGuard.IsAuthenticated(context.Background()))
}

// ── Profile ──

func TestAppModel_EditProfile(t *testing.T) {
	m, gw := newAdminModel(t)
	gw.EXPECT().GetProfile(gomock.Any()).Return(&models.Profile{FullName: "Rasul", Skills: models.CommaList{"Go"}}, nil)

	m, cmd := openScreen(t, m, "Profile")
	m, _ = send(t, m, single(t, cmd))
	assert.Contains(t, m.View(), "Rasul")

	m, _ = press(t, m, runes("e"))
	require.Equal(t, screenProfileForm, m.current)
	assert.Equal(t, "Go", m.form.value(4))

	m.form = m.form.withValues("Rasul K", "Backend engineer", "", "", "Go, SQL")
	gw.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) (models.Profile, error) {
			assert.Equal(t, models.CommaList{"Go", "SQL"}, p.Skills)
			return p, nil
		})

	m, cmd = press(t, m, keyEnter)
	m, _ = send(t, m, single(t, cmd))

	assert.Equal(t, screenProfile, m.current)
	assert.Equal(t, app.MsgProfileSaved, m.status)
	assert.Equal(t, "Rasul K", m.services.Profile.Profile().FullName)
}

func TestAppModel_ProfileReadOnlyForVisitors(t *testing.T) {
	m, _ := newTestModel(t)
	m.current = screenProfile

	m, _ = press(t, m, runes("e"))

	assert.Equal(t, screenProfile, m.current)
}

// ── Projects ──

func TestAppModel_CreateProject(t *testing.T) {
	m, gw := newAdminModel(t)
	m.current = screenProjects

	m, _ = press(t, m, runes("n"))
	require.Equal(t, screenProjectForm, m.current)
	mode, _ := m.services.Projects.Mode()
	assert.Equal(t, service.EditAdding, mode)

	draft := models.ProjectDraft{Title: "Cache layer", Problem: "slow", Decision: "go-cache", Tradeoff: "memory", Outcome: "fast"}
	m.form = m.form.withValues(draft.Title, draft.Problem, draft.Decision, draft.Tradeoff, draft.Outcome)

	gw.EXPECT().CreateProject(gomock.Any(), draft).Return(models.Project{ID: "p1", ProjectDraft: draft}, nil)

	m, cmd := press(t, m, keyEnter)
	assert.True(t, m.form.submitting)

	m, _ = send(t, m, single(t, cmd))

	assert.Equal(t, screenProjects, m.current)
	assert.False(t, m.form.submitting)
	assert.Equal(t, "Project created", m.status)
	require.Len(t, m.services.Projects.Items(), 1)
	mode, _ = m.services.Projects.Mode()
	assert.Equal(t, service.EditIdle, mode)
}

func TestAppModel_ProjectFormRequiresTitle(t *testing.T) {
	m, _ := newAdminModel(t)
	m.current = screenProjects

	m, _ = press(t, m, runes("n"))
	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Equal(t, screenProjectForm, m.current)
}

func TestAppModel_ProjectsReadOnlyForVisitors(t *testing.T) {
	m, _ := newTestModel(t)
	m.current = screenProjects

	m, _ = press(t, m, runes("n"))

	assert.Equal(t, screenProjects, m.current)
	mode, _ := m.services.Projects.Mode()
	assert.Equal(t, service.EditIdle, mode)
}

func TestAppModel_DeleteProjectAfterConfirm(t *testing.T) {
	m, gw := newAdminModel(t)
	gw.EXPECT().ListProjects(gomock.Any()).Return([]models.Project{
		{ID: "p1", ProjectDraft: models.ProjectDraft{Title: "Alpha"}},
		{ID: "p2", ProjectDraft: models.ProjectDraft{Title: "Beta"}},
	}, nil)
	require.NoError(t, m.services.Projects.Load(context.Background()))
	m.current = screenProjects

	m, _ = press(t, m, keyDown)
	m, _ = press(t, m, runes("d"))
	require.True(t, m.showConfirm)
	assert.Equal(t, pendingDelete{screen: screenProjects, id: "p2"}, m.pendingDelete)

	gw.EXPECT().DeleteProject(gomock.Any(), "p2").Return(nil)
	m, cmd := press(t, m, runes("y"))
	assert.False(t, m.showConfirm)

	m, _ = send(t, m, single(t, cmd))

	assert.Equal(t, "Project deleted", m.status)
	require.Len(t, m.services.Projects.Items(), 1)
	assert.Equal(t, 0, m.projects.idx)
}

func TestAppModel_DeleteCancelled(t *testing.T) {
	m, _ := newAdminModel(t)
	m.askDelete(screenInbox, "m1", "message")

	m, cmd := press(t, m, keyEsc)

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, m.pendingDelete.id)
}

// ── Resources ──

var testResources = []models.Resource{
	{ID: "r1", ResourceDraft: models.ResourceDraft{Title: "Go tour", Category: models.CategoryCoding}, FileURL: "/files/r1.pdf"},
	{ID: "r2", ResourceDraft: models.ResourceDraft{Title: "System design", Category: models.CategoryInterview}},
	{ID: "r3", ResourceDraft: models.ResourceDraft{Title: "K8s notes", Category: models.CategoryCloud}},
}

func loadResources(t *testing.T, m appModel, gw *mock.MockServerAdapter) {
	t.Helper()
	gw.EXPECT().ListResources(gomock.Any()).Return(testResources, nil)
	require.NoError(t, m.services.Resources.Load(context.Background()))
}

func TestAppModel_ResourceCategoryTabs(t *testing.T) {
	m, gw := newTestModel(t)
	loadResources(t, m, gw)
	m.current = screenResources

	assert.Len(t, m.filteredResources(), 3)

	m, _ = press(t, m, keyTab)
	assert.Equal(t, models.CategoryCoding, m.categoryFilter())
	require.Len(t, m.filteredResources(), 1)
	assert.Equal(t, "r1", m.filteredResources()[0].ID)

	m, _ = press(t, m, keyTab)
	assert.Equal(t, models.CategoryInterview, m.categoryFilter())
	assert.Contains(t, m.View(), "System design")
	assert.NotContains(t, m.View(), "Go tour")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, service.CategoryAll, m.categoryFilter())
}

func TestAppModel_OpenResourceWithoutDocument(t *testing.T) {
	m, gw := newTestModel(t)
	loadResources(t, m, gw)
	m.current = screenResources

	m, _ = press(t, m, keyDown)
	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, screenResources, m.current)
	assert.True(t, m.showError)
	assert.Equal(t, humanizeError(service.ErrNoAttachment), m.errorOverlay.message)
}

func TestAppModel_ResourceFormRejectsUnknownCategory(t *testing.T) {
	m, _ := newAdminModel(t)
	m.current = screenResources

	m, _ = press(t, m, runes("n"))
	m.form = m.form.withValues("Title", "poetry")
	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "coding")
}

func TestAppModel_CreateResourceWithDocument(t *testing.T) {
	m, gw := newAdminModel(t)
	m.current = screenResources

	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	m, _ = press(t, m, runes("n"))
	m.form = m.form.withValues("Notes", "Backend", "about pgx", path)

	gw.EXPECT().CreateResource(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d models.ResourceDraft) (models.Resource, error) {
			require.NotNil(t, d.Attachment)
			assert.Equal(t, "notes.pdf", d.Attachment.Name)
			assert.Equal(t, "application/pdf", d.Attachment.ContentType)
			assert.Equal(t, models.CategoryBackend, d.Category)
			return models.Resource{ID: "r9", ResourceDraft: models.ResourceDraft{Title: d.Title, Category: d.Category}, FileURL: "/files/r9.pdf"}, nil
		})

	m, cmd := press(t, m, keyEnter)
	m, _ = send(t, m, single(t, cmd))

	assert.False(t, m.showError)
	assert.Equal(t, screenResources, m.current)
	assert.Equal(t, "Resource created", m.status)
}

func TestAppModel_CreateResourceMissingFile(t *testing.T) {
	m, _ := newAdminModel(t)
	m.current = screenResources

	m, _ = press(t, m, runes("n"))
	m.form = m.form.withValues("Notes", "cloud", "", filepath.Join(t.TempDir(), "missing.pdf"))

	m, cmd := press(t, m, keyEnter)
	m, _ = send(t, m, single(t, cmd))

	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "read document")
	assert.Equal(t, screenResourceForm, m.current)
}

// ── Reader ──

const twoPagePDF = "%PDF-1.4\n1 0 obj << /Type /Pages /Count 2 >> endobj\n2 0 obj << /Type /Page >> endobj\n3 0 obj << /Type /Page >> endobj\n"

func TestAppModel_ReaderPaging(t *testing.T) {
	m, gw := newTestModel(t)
	loadResources(t, m, gw)
	m.current = screenResources

	m, cmd := press(t, m, keyEnter)
	require.Equal(t, screenReader, m.current)
	assert.True(t, m.reader.loading)

	// navigation before the page count is known
	m, _ = press(t, m, keyRight)
	assert.Equal(t, app.MsgNavigationDisabled, m.status)

	gw.EXPECT().DownloadFile(gomock.Any(), "/files/r1.pdf").Return([]byte(twoPagePDF), nil)
	m, _ = send(t, m, single(t, cmd))

	assert.False(t, m.reader.loading)
	assert.Equal(t, 2, m.reader.state.TotalPages)
	assert.Equal(t, 1, m.reader.state.Page)

	m, _ = press(t, m, keyRight)
	assert.Equal(t, 2, m.reader.state.Page)
	m, _ = press(t, m, keyRight)
	assert.Equal(t, 2, m.reader.state.Page)

	m, _ = press(t, m, runes("+"))
	assert.Equal(t, service.DefaultZoom+service.ZoomStep, m.reader.state.Zoom)
	assert.Contains(t, m.View(), "Page 2 of 2")

	m, _ = press(t, m, keyEsc)
	assert.Equal(t, screenResources, m.current)
	assert.False(t, m.services.Viewer.IsOpen())

	progress, ok := m.services.Progress.Progress(context.Background(), "r1")
	require.True(t, ok)
	assert.Equal(t, 2, progress.Page)
	assert.Contains(t, m.View(), "p.2")
}

func TestAppModel_DocumentArrivesAfterClose(t *testing.T) {
	m, _ := newTestModel(t)
	m.current = screenResources

	m, cmd := send(t, m, documentMsg{state: service.ViewerState{TotalPages: 3}})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.reader.state.TotalPages)
}

func TestRenderProgressBar(t *testing.T) {
	assert.Equal(t, "", renderProgressBar(1, 0, 10))
	assert.Equal(t, "[#####-----]", renderProgressBar(5, 10, 10))
	assert.Equal(t, "[##########]", renderProgressBar(10, 10, 10))
}

// ── Inbox ──

func TestAppModel_InboxMarkRead(t *testing.T) {
	m, gw := newAdminModel(t)
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	gw.EXPECT().ListMessages(gomock.Any()).Return([]models.Message{
		{ID: "m1", Email: "a@site.test", Message: "hello", Timestamp: ts},
		{ID: "m2", Email: "b@site.test", Message: "again", Timestamp: ts, Read: true},
	}, nil)

	m, cmd := openScreen(t, m, "Inbox")
	m, _ = send(t, m, single(t, cmd))
	require.Equal(t, 1, m.services.Messages.UnreadCount())
	assert.Contains(t, m.viewDashboard(), "1 unread")

	gw.EXPECT().MarkMessageRead(gomock.Any(), "m1").Return(models.Message{ID: "m1", Email: "a@site.test", Message: "hello", Timestamp: ts, Read: true}, nil)
	m, cmd = press(t, m, keyEnter)
	assert.Equal(t, "m1", m.opened)

	m, _ = send(t, m, single(t, cmd))

	assert.Equal(t, 0, m.services.Messages.UnreadCount())
	assert.Contains(t, m.View(), "hello")
}

func TestAppModel_InboxOpenReadMessage(t *testing.T) {
	m, gw := newAdminModel(t)
	gw.EXPECT().ListMessages(gomock.Any()).Return([]models.Message{{ID: "m2", Email: "b@site.test", Read: true}}, nil)
	require.NoError(t, m.services.Messages.Load(context.Background()))
	m.current = screenInbox

	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, "m2", m.opened)
}

// ── Contact ──

func TestAppModel_ContactSubmit(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		message   string
		sendErr   error
		wantSent  bool
		wantError bool
	}{
		{name: "sent", email: "v@site.test", message: "hi", wantSent: true},
		{name: "blank message", email: "v@site.test", wantError: true},
		{name: "service rejects", email: "bad", message: "hi", sendErr: &adapter.ResponseError{Op: "send", StatusCode: 400, Message: app.MsgInvalidEmail}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, gw := newTestModel(t)
			m.current = screenContact
			m.contact = m.contact.withValues(tt.email, tt.message)

			if tt.message != "" {
				gw.EXPECT().SendMessage(gomock.Any(), models.ContactRequest{Email: tt.email, Message: tt.message}).
					Return(models.Message{ID: "m1"}, tt.sendErr)
			}

			m, cmd := press(t, m, keyEnter)
			m, _ = send(t, m, single(t, cmd))

			assert.False(t, m.contact.submitting)
			assert.Equal(t, tt.wantError, m.showError)
			if tt.wantSent {
				assert.Equal(t, app.MsgMessageSent, m.status)
				assert.Empty(t, m.contact.value(0))
				return
			}
			assert.Equal(t, tt.email, m.contact.value(0))
		})
	}
}

// ── Form ──

func TestFormModel(t *testing.T) {
	f := newFormModel("TEST", "One", "Two")

	f, _ = f.update(runes("abc"))
	f = f.focusNext()
	f, _ = f.update(runes("  xyz "))

	assert.Equal(t, "abc", f.value(0))
	assert.Equal(t, "xyz", f.value(1))
	assert.Equal(t, 1, f.focus)

	f = f.focusNext()
	assert.Equal(t, 0, f.focus)
	f = f.focusPrev()
	assert.Equal(t, 1, f.focus)

	pw := newLoginForm().withValues("admin", "secret")
	assert.NotContains(t, pw.View(""), "secret")
}

func TestListCursor(t *testing.T) {
	c := listCursor{}
	c = c.move(keyDown, 2)
	c = c.move(keyDown, 2)
	assert.Equal(t, 1, c.idx)

	assert.Equal(t, 0, c.clamp(0).idx)
	assert.Equal(t, 0, listCursor{idx: 5}.clamp(1).idx)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Len(t, []rune(fitText("ääääääääääää", 5)), 5)
}
