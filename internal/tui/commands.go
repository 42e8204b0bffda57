// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTTL   = 2 * time.Second
	refreshView = 5 * time.Second
)

func (m appModel) cmdLogin(login, password string) tea.Cmd {
	ctx := m.ctx
	guard := m.services.SessionGuard
	return func() tea.Msg {
		return loginDoneMsg{err: guard.Authenticate(ctx, login, password)}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	profile := m.services.Profile
	return func() tea.Msg {
		return loadedMsg{screen: screenProfile, err: profile.Load(ctx)}
	}
}

func (m appModel) cmdLoadProjects() tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	return func() tea.Msg {
		return loadedMsg{screen: screenProjects, err: projects.Load(ctx)}
	}
}

func (m appModel) cmdLoadResources() tea.Cmd {
	ctx := m.ctx
	resources := m.services.Resources
	return func() tea.Msg {
		return loadedMsg{screen: screenResources, err: resources.Load(ctx)}
	}
}

func (m appModel) cmdLoadInbox() tea.Cmd {
	ctx := m.ctx
	messages := m.services.Messages
	return func() tea.Msg {
		return loadedMsg{screen: screenInbox, err: messages.Load(ctx)}
	}
}

func (m appModel) cmdSaveProfile(p models.Profile) tea.Cmd {
	ctx := m.ctx
	profile := m.services.Profile
	return func() tea.Msg {
		err := profile.Save(ctx, p)
		return opDoneMsg{notice: profile.Notice(), back: screenProfile, err: err}
	}
}

func (m appModel) cmdSaveProject(draft models.ProjectDraft) tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	return func() tea.Msg {
		projects.SetDraft(draft)
		_, err := projects.Save(ctx)
		return opDoneMsg{notice: projects.Notice(), back: screenProjects, err: err}
	}
}

// cmdSaveResource attaches the file at path, when given, to draft.
func (m appModel) cmdSaveResource(draft models.ResourceDraft, path string) tea.Cmd {
	ctx := m.ctx
	resources := m.services.Resources
	return func() tea.Msg {
		if path != "" {
			attachment, err := readAttachment(path)
			if err != nil {
				return opDoneMsg{back: screenResources, err: err}
			}
			draft.Attachment = attachment
		}

		resources.SetDraft(draft)
		_, err := resources.Save(ctx)
		return opDoneMsg{notice: resources.Notice(), back: screenResources, err: err}
	}
}

func (m appModel) cmdDelete(p pendingDelete) tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		var (
			err    error
			notice service.Notice
		)
		switch p.screen {
		case screenProjects:
			err = services.Projects.Delete(ctx, p.id)
			notice = services.Projects.Notice()
		case screenResources:
			err = services.Resources.Delete(ctx, p.id)
			notice = services.Resources.Notice()
		case screenInbox:
			err = services.Messages.Delete(ctx, p.id)
			notice = services.Messages.Notice()
		default:
			err = fmt.Errorf("nothing to delete on screen %d", p.screen)
		}
		return opDoneMsg{notice: notice, back: p.screen, err: err}
	}
}

func (m appModel) cmdMarkRead(id string) tea.Cmd {
	ctx := m.ctx
	messages := m.services.Messages
	return func() tea.Msg {
		err := messages.MarkRead(ctx, id)
		return opDoneMsg{notice: messages.Notice(), back: screenInbox, err: err}
	}
}

func (m appModel) cmdSendContact(email, message string) tea.Cmd {
	ctx := m.ctx
	form := m.services.ContactForm
	return func() tea.Msg {
		form.SetEmail(email)
		form.SetMessage(message)
		err := form.Submit(ctx)
		return contactSentMsg{notice: form.Notice(), err: err}
	}
}

// cmdLoadDocument downloads the open resource's document and measures it.
func (m appModel) cmdLoadDocument(resourceID string) tea.Cmd {
	ctx := m.ctx
	resources := m.services.Resources
	viewer := m.services.Viewer
	return func() tea.Msg {
		content, err := resources.Document(ctx, resourceID)
		if err != nil {
			return documentMsg{err: err}
		}
		state, err := viewer.SetTotalPages(ctx, service.CountPDFPages(content))
		return documentMsg{state: state, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return opDoneMsg{back: screenResources, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{text: text}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdTick() tea.Cmd {
	return tea.Tick(refreshView, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func readAttachment(path string) (*models.Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &models.Attachment{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Content:     content,
	}, nil
}
