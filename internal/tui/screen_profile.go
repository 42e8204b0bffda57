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

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.current = m.menuScreen()
	case key.Matches(keyMsg, keys.refresh):
		cmd := m.startLoading(m.cmdLoadProfile())
		return m, cmd
	case key.Matches(keyMsg, keys.edit):
		if !m.admin {
			return m, nil
		}
		m.form = newProfileForm(m.services.Profile.Profile())
		m.current = screenProfileForm
	}
	return m, nil
}

func newProfileForm(p models.Profile) formModel {
	return newFormModel("EDIT PROFILE",
		"Full name", "Role", "About", "Current focus", "Skills", "LinkedIn", "GitHub", "Email",
	).withValues(
		p.FullName, p.Role, p.About, p.CurrentFocus.String(), p.Skills.String(), p.LinkedIn, p.GitHub, p.Email,
	)
}

func profileFromForm(f formModel) models.Profile {
	return models.Profile{
		FullName:     f.value(0),
		Role:         f.value(1),
		About:        f.value(2),
		CurrentFocus: models.ParseCommaList(f.value(3)),
		Skills:       models.ParseCommaList(f.value(4)),
		LinkedIn:     f.value(5),
		GitHub:       f.value(6),
		Email:        f.value(7),
	}
}

func (m appModel) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.current = screenProfile
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveProfile(profileFromForm(m.form))
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) viewProfile() string {
	p := m.services.Profile.Profile()
	if p.IsEmpty() {
		hot := "r reload  esc back"
		if m.admin {
			hot = "e edit  " + hot
		}
		return renderPage("PROFILE", "No profile has been published yet.", hot)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(valueOrDash(p.FullName)))
	fmt.Fprintf(&b, "%s\n\n", valueOrDash(p.Role))
	if p.About != "" {
		fmt.Fprintf(&b, "%s\n\n", p.About)
	}
	fmt.Fprintf(&b, "Current focus: %s\n", valueOrDash(p.CurrentFocus.String()))
	fmt.Fprintf(&b, "Skills:        %s\n\n", valueOrDash(p.Skills.String()))
	fmt.Fprintf(&b, "LinkedIn: %s\n", valueOrDash(p.LinkedIn))
	fmt.Fprintf(&b, "GitHub:   %s\n", valueOrDash(p.GitHub))
	fmt.Fprintf(&b, "Email:    %s", valueOrDash(p.Email))

	hot := "r reload  esc back"
	if m.admin {
		hot = "e edit  " + hot
	}
	return renderPage("PROFILE", b.String(), hot)
}
