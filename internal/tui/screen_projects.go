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

func (m appModel) currentProject() (models.Project, bool) {
	items := m.services.Projects.Items()
	if len(items) == 0 || m.projects.idx >= len(items) {
		return models.Project{}, false
	}
	return items[m.projects.idx], true
}

func (m appModel) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	manager := m.services.Projects
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.current = m.menuScreen()
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		cmd := m.startLoading(m.cmdLoadProjects())
		return m, cmd
	}

	if m.admin {
		switch {
		case key.Matches(keyMsg, keys.newItem):
			manager.CancelEdit()
			if err := manager.StartAdd(); err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			m.form = newProjectForm("NEW PROJECT", models.ProjectDraft{})
			m.current = screenProjectForm
			return m, nil
		case key.Matches(keyMsg, keys.edit):
			project, ok := m.currentProject()
			if !ok {
				return m, nil
			}
			if err := manager.StartEdit(project.ID); err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			m.form = newProjectForm("EDIT: "+project.Title, manager.Draft())
			m.current = screenProjectForm
			return m, nil
		case key.Matches(keyMsg, keys.delete):
			if project, ok := m.currentProject(); ok {
				m.askDelete(screenProjects, project.ID, project.Title)
			}
			return m, nil
		}
	}

	m.projects = m.projects.move(keyMsg, len(manager.Items()))
	return m, nil
}

func newProjectForm(title string, d models.ProjectDraft) formModel {
	return newFormModel(title, "Title", "Problem", "Decision", "Trade-off", "Outcome").
		withValues(d.Title, d.Problem, d.Decision, d.Tradeoff, d.Outcome)
}

func projectDraftFromForm(f formModel) models.ProjectDraft {
	return models.ProjectDraft{
		Title:    f.value(0),
		Problem:  f.value(1),
		Decision: f.value(2),
		Tradeoff: f.value(3),
		Outcome:  f.value(4),
	}
}

func (m appModel) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.services.Projects.CancelEdit()
			m.current = screenProjects
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
			draft := projectDraftFromForm(m.form)
			if draft.Title == "" {
				m.showErrorf("Title is required")
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveProject(draft)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) viewProjects() string {
	items := m.services.Projects.Items()

	var b strings.Builder
	if len(items) == 0 {
		b.WriteString("No projects yet\n")
	}
	for i, p := range items {
		b.WriteString(cursor(i == m.projects.idx) + fitText(p.Title, 60) + "\n")
	}

	if p, ok := m.currentProject(); ok {
		b.WriteString("\n" + uiDivider + "\n")
		fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(p.Title))
		fmt.Fprintf(&b, "Problem:   %s\n", valueOrDash(p.Problem))
		fmt.Fprintf(&b, "Decision:  %s\n", valueOrDash(p.Decision))
		fmt.Fprintf(&b, "Trade-off: %s\n", valueOrDash(p.Tradeoff))
		fmt.Fprintf(&b, "Outcome:   %s", valueOrDash(p.Outcome))
	}

	hot := "r reload  esc back"
	if m.admin {
		hot = "n new  e edit  d delete  " + hot
	}
	return renderPage("PROJECTS", b.String(), hot)
}
