// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenHome screen = iota
	screenLogin
	screenDashboard
	screenProfile
	screenProfileForm
	screenProjects
	screenProjectForm
	screenResources
	screenResourceForm
	screenReader
	screenInbox
	screenContact
)

// pendingDelete is the entry a confirmation overlay is asking about.
type pendingDelete struct {
	screen screen
	id     string
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	current screen
	admin   bool

	home      listCursor
	dashboard listCursor
	login     formModel

	projects  listCursor
	resources listCursor
	category  int
	inbox     listCursor
	opened    string

	form    formModel
	contact formModel
	reader  readerModel

	loading bool
	spinner spinner.Model
	status  string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete pendingDelete
	showBuildInfo bool

	err error
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		current:   screenHome,
		admin:     services.SessionGuard.IsAuthenticated(ctx),
		spinner:   s,
		contact:   newContactForm(),
	}
}

func (m appModel) Init() tea.Cmd {
	return cmdTick()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.admin = true
		m.current = screenDashboard
		cmd := m.startLoading(m.cmdLoadInbox())
		return m, cmd
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		m.clampCursors()
		return m, nil
	case opDoneMsg:
		m.loading = false
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(noticeOrError(msg.notice, msg.err))
			return m, nil
		}
		m.status = msg.notice.Text
		m.current = msg.back
		m.clampCursors()
		return m, cmdClearStatus()
	case contactSentMsg:
		m.contact.submitting = false
		if msg.err != nil {
			m.showErrorf(noticeOrError(msg.notice, msg.err))
			return m, nil
		}
		m.contact = newContactForm()
		m.status = msg.notice.Text
		return m, cmdClearStatus()
	case documentMsg:
		return m.updateDocument(msg)
	case copiedMsg:
		m.status = "Copied " + msg.text
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tickMsg:
		return m, cmdTick()
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.current {
	case screenHome:
		return m.updateHome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenProfileForm:
		return m.updateProfileForm(msg)
	case screenProjects:
		return m.updateProjects(msg)
	case screenProjectForm:
		return m.updateProjectForm(msg)
	case screenResources:
		return m.updateResources(msg)
	case screenResourceForm:
		return m.updateResourceForm(msg)
	case screenReader:
		return m.updateReader(msg)
	case screenInbox:
		return m.updateInbox(msg)
	case screenContact:
		return m.updateContact(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.current {
	case screenHome:
		body = m.viewHome()
	case screenLogin:
		body = m.login.View("tab next field  enter log in  esc back")
	case screenDashboard:
		body = m.viewDashboard()
	case screenProfile:
		body = m.viewProfile()
	case screenProfileForm, screenProjectForm, screenResourceForm:
		body = m.form.View("tab next field  enter save  esc cancel")
	case screenProjects:
		body = m.viewProjects()
	case screenResources:
		body = m.viewResources()
	case screenReader:
		body = m.reader.View()
	case screenInbox:
		body = m.viewInbox()
	case screenContact:
		body = m.viewContact()
	}

	if m.loading {
		body += "\n\n" + m.spinner.View() + " Loading..."
	}
	if m.status != "" {
		body += "\n\n" + noticeStyle.Render(m.status)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// startLoading shows the spinner while cmd runs.
func (m *appModel) startLoading(cmd tea.Cmd) tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, cmd)
}

// menuScreen is where esc leads from the content screens.
func (m appModel) menuScreen() screen {
	if m.admin {
		return screenDashboard
	}
	return screenHome
}

func (m *appModel) clampCursors() {
	m.projects = m.projects.clamp(len(m.services.Projects.Items()))
	m.resources = m.resources.clamp(len(m.filteredResources()))
	m.inbox = m.inbox.clamp(len(m.services.Messages.Items()))
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		pending := m.pendingDelete
		m.pendingDelete = pendingDelete{}
		if pending.id == "" {
			return m, nil
		}
		cmd := m.startLoading(m.cmdDelete(pending))
		return m, cmd
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = pendingDelete{}
	}
	return m, nil
}

func (m *appModel) askDelete(s screen, id, title string) {
	m.showConfirm = true
	m.confirm.message = title
	m.pendingDelete = pendingDelete{screen: s, id: id}
}

func noticeOrError(n service.Notice, err error) string {
	if n.IsError && n.Text != "" {
		return n.Text
	}
	return humanizeError(err)
}
