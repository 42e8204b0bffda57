// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"regexp"
	"sync"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// Zoom limits in percent.
const (
	MinZoom     = 50
	MaxZoom     = 200
	ZoomStep    = 25
	DefaultZoom = 100
)

// ViewerState is a snapshot of the document reader.
type ViewerState struct {
	ResourceID string
	Page       int
	// TotalPages is zero until the document has been measured.
	TotalPages int
	Zoom       int
}

// Viewer tracks the open document, page and zoom, and records the position
// in the progress store on every change.
type Viewer struct {
	progress ClientProgressStore
	now      func() time.Time
	logger   *logger.Logger

	mu    sync.Mutex
	state ViewerState
	open  bool
}

func NewViewer(progress ClientProgressStore, log *logger.Logger) *Viewer {
	if log == nil {
		log = logger.Nop()
	}
	return &Viewer{progress: progress, now: time.Now, logger: log}
}

// Open starts reading resourceID at the stored page, or page 1. Page count
// is unknown until SetTotalPages.
func (v *Viewer) Open(ctx context.Context, resourceID string) ViewerState {
	state := ViewerState{ResourceID: resourceID, Page: 1, Zoom: DefaultZoom}
	if progress, ok := v.progress.Progress(ctx, resourceID); ok {
		state.Page = progress.Page
		if progress.Zoom != 0 {
			state.Zoom = clampZoom(progress.Zoom)
		}
	}

	v.mu.Lock()
	v.state = state
	v.open = true
	v.mu.Unlock()

	v.logger.Debug().Str("func", "*Viewer.Open").Str("resource", resourceID).Int("page", state.Page).Msg("document opened")
	return state
}

// SetTotalPages records the page count and pulls the current page into
// range. Zero keeps navigation disabled.
func (v *Viewer) SetTotalPages(ctx context.Context, total int) (ViewerState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.open {
		return ViewerState{}, ErrNoDocumentOpen
	}

	v.state.TotalPages = max(total, 0)
	if v.state.TotalPages > 0 && v.state.Page > v.state.TotalPages {
		v.state.Page = v.state.TotalPages
		v.persistLocked(ctx)
	}
	return v.state, nil
}

// SetPage moves to page n clamped to [1, TotalPages]. Landing on the
// current page changes nothing.
func (v *Viewer) SetPage(ctx context.Context, n int) (ViewerState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.open {
		return ViewerState{}, ErrNoDocumentOpen
	}
	if v.state.TotalPages == 0 {
		return v.state, ErrNavigationDisabled
	}

	page := min(max(n, 1), v.state.TotalPages)
	if page == v.state.Page {
		return v.state, nil
	}

	v.state.Page = page
	v.persistLocked(ctx)
	return v.state, nil
}

func (v *Viewer) NextPage(ctx context.Context) (ViewerState, error) {
	return v.SetPage(ctx, v.State().Page+1)
}

func (v *Viewer) PrevPage(ctx context.Context) (ViewerState, error) {
	return v.SetPage(ctx, v.State().Page-1)
}

// SetZoom clamps level to [MinZoom, MaxZoom] and snaps it to ZoomStep.
func (v *Viewer) SetZoom(ctx context.Context, level int) (ViewerState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.open {
		return ViewerState{}, ErrNoDocumentOpen
	}

	zoom := clampZoom(level)
	if zoom == v.state.Zoom {
		return v.state, nil
	}

	v.state.Zoom = zoom
	v.persistLocked(ctx)
	return v.state, nil
}

func (v *Viewer) ZoomIn(ctx context.Context) (ViewerState, error) {
	return v.SetZoom(ctx, v.State().Zoom+ZoomStep)
}

func (v *Viewer) ZoomOut(ctx context.Context) (ViewerState, error) {
	return v.SetZoom(ctx, v.State().Zoom-ZoomStep)
}

// Close forgets the open document. Its progress stays stored.
func (v *Viewer) Close() {
	v.mu.Lock()
	v.state = ViewerState{}
	v.open = false
	v.mu.Unlock()
}

func (v *Viewer) State() ViewerState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

func (v *Viewer) IsOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.open
}

func (v *Viewer) persistLocked(ctx context.Context) {
	v.progress.SaveProgress(ctx, v.state.ResourceID, models.ReadingProgress{
		Page:         v.state.Page,
		LastAccessed: v.now().UTC(),
		Zoom:         v.state.Zoom,
	})
}

func clampZoom(level int) int {
	level = min(max(level, MinZoom), MaxZoom)
	// snap to the nearest step
	return MinZoom + (level-MinZoom+ZoomStep/2)/ZoomStep*ZoomStep
}

var pdfPageObject = regexp.MustCompile(`/Type\s*/Page([^s]|$)`)

// CountPDFPages counts page objects in an uncompressed PDF body. It returns
// zero when none can be found, e.g. for object-stream compressed files.
func CountPDFPages(content []byte) int {
	return len(pdfPageObject.FindAllIndex(content, -1))
}
