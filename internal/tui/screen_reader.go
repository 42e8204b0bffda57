// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const progressBarWidth = 40

type readerModel struct {
	title   string
	state   service.ViewerState
	loading bool
}

func (m appModel) openReader(resource models.Resource) (tea.Model, tea.Cmd) {
	state := m.services.Viewer.Open(m.ctx, resource.ID)
	m.reader = readerModel{title: resource.Title, state: state, loading: true}
	m.current = screenReader
	return m, m.cmdLoadDocument(resource.ID)
}

func (m appModel) updateDocument(msg documentMsg) (tea.Model, tea.Cmd) {
	if m.current != screenReader {
		return m, nil
	}

	m.reader.loading = false
	if msg.err != nil {
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}
	m.reader.state = msg.state
	return m, nil
}

func (m appModel) updateReader(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	viewer := m.services.Viewer
	var (
		state service.ViewerState
		err   error
	)
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		viewer.Close()
		m.reader = readerModel{}
		m.current = screenResources
		return m, nil
	case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.down):
		state, err = viewer.NextPage(m.ctx)
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.up):
		state, err = viewer.PrevPage(m.ctx)
	case key.Matches(keyMsg, keys.zoomIn):
		state, err = viewer.ZoomIn(m.ctx)
	case key.Matches(keyMsg, keys.zoomOut):
		state, err = viewer.ZoomOut(m.ctx)
	default:
		return m, nil
	}

	if errors.Is(err, service.ErrNavigationDisabled) {
		m.status = app.MsgNavigationDisabled
		return m, cmdClearStatus()
	}
	if err != nil {
		m.showErrorf(humanizeError(err))
		return m, nil
	}
	m.reader.state = state
	return m, nil
}

func (r readerModel) View() string {
	var b strings.Builder

	s := r.state
	switch {
	case r.loading:
		fmt.Fprintf(&b, "Page %d of ...\n", s.Page)
	case s.TotalPages == 0:
		fmt.Fprintf(&b, "Page %d\n", s.Page)
		b.WriteString(helpStyle.Render("Page count could not be read; navigation is disabled.") + "\n")
	default:
		fmt.Fprintf(&b, "Page %d of %d\n", s.Page, s.TotalPages)
		b.WriteString(renderProgressBar(s.Page, s.TotalPages, progressBarWidth) + "\n")
	}
	fmt.Fprintf(&b, "\nZoom: %d%%", s.Zoom)

	return renderPage("READING: "+fitText(r.title, 50), b.String(), "←/→ page  +/- zoom  esc close")
}

func renderProgressBar(page, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := page * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
