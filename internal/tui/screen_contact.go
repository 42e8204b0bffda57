// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func newContactForm() formModel {
	return newFormModel("CONTACT", "Email", "Message")
}

func (m appModel) updateContact(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.current = m.menuScreen()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.contact = m.contact.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.contact = m.contact.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.contact.submitting {
				return m, nil
			}
			m.contact.submitting = true
			return m, m.cmdSendContact(m.contact.value(0), m.contact.value(1))
		}
	}

	var cmd tea.Cmd
	m.contact, cmd = m.contact.update(msg)
	return m, cmd
}

func (m appModel) viewContact() string {
	return m.contact.View("tab next field  enter send  esc back")
}
