// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const formInputWidth = 50

type formField struct {
	label string
	input textinput.Model
}

// formModel is a column of labelled text inputs with a single focus.
type formModel struct {
	title      string
	fields     []formField
	focus      int
	submitting bool
}

func newFormModel(title string, labels ...string) formModel {
	fields := make([]formField, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Width = formInputWidth
		in.CharLimit = 2000
		fields[i] = formField{label: label, input: in}
	}
	if len(fields) > 0 {
		fields[0].input.Focus()
	}
	return formModel{title: title, fields: fields}
}

func (f formModel) withPassword(i int) formModel {
	f.fields[i].input.EchoMode = textinput.EchoPassword
	f.fields[i].input.EchoCharacter = '*'
	return f
}

func (f formModel) withValues(values ...string) formModel {
	for i, v := range values {
		if i < len(f.fields) {
			f.fields[i].input.SetValue(v)
		}
	}
	return f
}

// value returns the trimmed content of field i.
func (f formModel) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f formModel) focusNext() formModel {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
	return f
}

func (f formModel) focusPrev() formModel {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
	return f
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f formModel) View(hotKeys string) string {
	labelWidth := 0
	for _, field := range f.fields {
		labelWidth = max(labelWidth, len(field.label))
	}

	var b strings.Builder
	for _, field := range f.fields {
		fmt.Fprintf(&b, "%-*s [%s]\n", labelWidth+1, field.label+":", field.input.View())
	}
	if f.submitting {
		b.WriteString("\nSaving...\n")
	}

	return renderPage(f.title, b.String(), hotKeys)
}
