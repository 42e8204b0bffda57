// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var homeItems = []string{"Profile", "Projects", "Resources", "Contact", "Admin"}

var dashboardItems = []string{"Profile", "Projects", "Resources", "Inbox", "Contact", "Log out"}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		switch homeItems[m.home.idx] {
		case "Admin":
			if m.admin {
				m.current = screenDashboard
				return m, nil
			}
			m.login = newLoginForm()
			m.current = screenLogin
			return m, nil
		default:
			return m.open(homeItems[m.home.idx])
		}
	}

	m.home = m.home.move(keyMsg, len(homeItems))
	return m, nil
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.current = screenHome
		return m, nil
	case key.Matches(keyMsg, keys.logout):
		return m.logout()
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if dashboardItems[m.dashboard.idx] == "Log out" {
			return m.logout()
		}
		return m.open(dashboardItems[m.dashboard.idx])
	}

	m.dashboard = m.dashboard.move(keyMsg, len(dashboardItems))
	return m, nil
}

// open switches to a content screen and starts loading its data.
func (m appModel) open(item string) (tea.Model, tea.Cmd) {
	var load tea.Cmd
	switch item {
	case "Profile":
		m.current = screenProfile
		load = m.cmdLoadProfile()
	case "Projects":
		m.current = screenProjects
		load = m.cmdLoadProjects()
	case "Resources":
		m.current = screenResources
		load = m.cmdLoadResources()
	case "Inbox":
		m.current = screenInbox
		load = m.cmdLoadInbox()
	case "Contact":
		m.current = screenContact
		return m, nil
	default:
		return m, nil
	}

	cmd := m.startLoading(load)
	return m, cmd
}

func (m appModel) logout() (tea.Model, tea.Cmd) {
	m.services.SessionGuard.Logout(m.ctx)
	m.admin = false
	m.current = screenHome
	m.dashboard = listCursor{}
	m.status = "Logged out"
	return m, cmdClearStatus()
}

func newLoginForm() formModel {
	return newFormModel("ADMIN LOGIN", "Login", "Password").withPassword(1)
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.current = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			login := m.login.value(0)
			password := m.login.fields[1].input.Value()
			if login == "" || password == "" {
				m.showErrorf("Login and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(login, password)
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m appModel) viewHome() string {
	var b strings.Builder
	for i, item := range homeItems {
		label := item
		if item == "Admin" && m.admin {
			label = "Admin dashboard"
		}
		b.WriteString(cursor(i == m.home.idx) + label + "\n")
	}
	return renderPage("PORTFOLIO", b.String(), "enter open  v about  q quit")
}

func (m appModel) viewDashboard() string {
	var b strings.Builder
	for i, item := range dashboardItems {
		label := item
		if item == "Inbox" {
			if unread := m.services.Messages.UnreadCount(); unread > 0 {
				label = unreadStyle.Render(fmt.Sprintf("Inbox (%d unread)", unread))
			}
		}
		b.WriteString(cursor(i == m.dashboard.idx) + label + "\n")
	}
	return renderPage("ADMIN DASHBOARD", b.String(), "enter open  o log out  esc home  q quit")
}
