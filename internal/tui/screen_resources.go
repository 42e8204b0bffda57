// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var categoryFilters = append([]models.Category{service.CategoryAll}, models.Categories...)

func (m appModel) categoryFilter() models.Category {
	return categoryFilters[m.category%len(categoryFilters)]
}

func (m appModel) filteredResources() []models.Resource {
	return m.services.Resources.Filter(m.categoryFilter())
}

func (m appModel) currentResource() (models.Resource, bool) {
	items := m.filteredResources()
	if len(items) == 0 || m.resources.idx >= len(items) {
		return models.Resource{}, false
	}
	return items[m.resources.idx], true
}

func (m appModel) updateResources(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	manager := m.services.Resources
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.current = m.menuScreen()
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		cmd := m.startLoading(m.cmdLoadResources())
		return m, cmd
	case key.Matches(keyMsg, keys.tab):
		m.category = (m.category + 1) % len(categoryFilters)
		m.resources = listCursor{}
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.category = (m.category - 1 + len(categoryFilters)) % len(categoryFilters)
		m.resources = listCursor{}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		resource, ok := m.currentResource()
		if !ok {
			return m, nil
		}
		if !resource.HasFile() {
			m.showErrorf(humanizeError(service.ErrNoAttachment))
			return m, nil
		}
		return m.openReader(resource)
	case key.Matches(keyMsg, keys.copy):
		resource, ok := m.currentResource()
		if !ok || !resource.HasFile() {
			return m, nil
		}
		return m, cmdCopyToClipboard(resource.FileURL)
	}

	if m.admin {
		switch {
		case key.Matches(keyMsg, keys.newItem):
			manager.CancelEdit()
			if err := manager.StartAdd(); err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			draft := models.ResourceDraft{}
			if c := m.categoryFilter(); c != service.CategoryAll {
				draft.Category = c
			}
			m.form = newResourceForm("NEW RESOURCE", draft)
			m.current = screenResourceForm
			return m, nil
		case key.Matches(keyMsg, keys.edit):
			resource, ok := m.currentResource()
			if !ok {
				return m, nil
			}
			if err := manager.StartEdit(resource.ID); err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			m.form = newResourceForm("EDIT: "+resource.Title, manager.Draft())
			m.current = screenResourceForm
			return m, nil
		case key.Matches(keyMsg, keys.delete):
			if resource, ok := m.currentResource(); ok {
				m.askDelete(screenResources, resource.ID, resource.Title)
			}
			return m, nil
		}
	}

	m.resources = m.resources.move(keyMsg, len(m.filteredResources()))
	return m, nil
}

func newResourceForm(title string, d models.ResourceDraft) formModel {
	return newFormModel(title, "Title", "Category", "Description", "Document path").
		withValues(d.Title, string(d.Category), d.Description)
}

func resourceDraftFromForm(f formModel) (models.ResourceDraft, string) {
	return models.ResourceDraft{
		Title:       f.value(0),
		Category:    models.Category(strings.ToLower(f.value(1))),
		Description: f.value(2),
	}, f.value(3)
}

func (m appModel) updateResourceForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.services.Resources.CancelEdit()
			m.current = screenResources
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
			draft, path := resourceDraftFromForm(m.form)
			if draft.Title == "" {
				m.showErrorf("Title is required")
				return m, nil
			}
			if !draft.Category.Valid() {
				m.showErrorf("Category must be one of: " + categoryNames())
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveResource(draft, path)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func categoryNames() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func (m appModel) viewResources() string {
	items := m.filteredResources()
	progress := m.services.Progress.AllProgress(m.ctx)

	var b strings.Builder
	tabs := make([]string, len(categoryFilters))
	for i, c := range categoryFilters {
		label := "All"
		if c != service.CategoryAll {
			label = c.Label()
		}
		if i == m.category {
			label = titleStyle.Render("[" + label + "]")
		}
		tabs[i] = label
	}
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")

	if len(items) == 0 {
		b.WriteString("No resources in this category\n")
	}
	for i, r := range items {
		line := fmt.Sprintf("%s%-14s %s", cursor(i == m.resources.idx), "["+r.Category.Label()+"]", fitText(r.Title, 44))
		if r.HasFile() {
			line += "  (doc)"
		}
		if p, ok := progress[r.ID]; ok {
			line += fmt.Sprintf("  p.%d", p.Page)
		}
		b.WriteString(line + "\n")
	}

	if r, ok := m.currentResource(); ok && r.Description != "" {
		b.WriteString("\n" + r.Description)
	}

	hot := "tab category  enter read  c copy link  r reload  esc back"
	if m.admin {
		hot = "n new  e edit  d delete  " + hot
	}
	return renderPage("RESOURCES", b.String(), hot)
}
