// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const inboxTimeLayout = "2006-01-02 15:04"

func (m appModel) currentMessage() (models.Message, bool) {
	items := m.services.Messages.Items()
	if len(items) == 0 || m.inbox.idx >= len(items) {
		return models.Message{}, false
	}
	return items[m.inbox.idx], true
}

func (m appModel) updateInbox(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.opened = ""
		m.current = m.menuScreen()
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		cmd := m.startLoading(m.cmdLoadInbox())
		return m, cmd
	case key.Matches(keyMsg, keys.enter):
		message, ok := m.currentMessage()
		if !ok {
			return m, nil
		}
		m.opened = message.ID
		if message.Read {
			return m, nil
		}
		return m, m.cmdMarkRead(message.ID)
	case key.Matches(keyMsg, keys.delete):
		if message, ok := m.currentMessage(); ok {
			m.askDelete(screenInbox, message.ID, "message from "+message.Email)
		}
		return m, nil
	}

	m.inbox = m.inbox.move(keyMsg, len(m.services.Messages.Items()))
	return m, nil
}

func (m appModel) viewInbox() string {
	items := m.services.Messages.Items()

	var b strings.Builder
	fmt.Fprintf(&b, "%d messages, %d unread\n\n", len(items), m.services.Messages.UnreadCount())
	for i, message := range items {
		line := fmt.Sprintf("%s%s  %s", cursor(i == m.inbox.idx), message.Timestamp.Local().Format(inboxTimeLayout), message.Email)
		if !message.Read {
			line = unreadStyle.Render(line + "  *")
		}
		b.WriteString(line + "\n")
	}

	if message, ok := m.currentMessage(); ok && message.ID == m.opened {
		b.WriteString("\n" + uiDivider + "\n")
		fmt.Fprintf(&b, "From: %s\n\n%s", message.Email, message.Message)
	}

	return renderPage("INBOX", b.String(), "enter read  d delete  r refresh  esc back")
}
