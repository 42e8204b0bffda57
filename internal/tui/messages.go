// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-portfolio/internal/service"

type loginDoneMsg struct {
	err error
}

// loadedMsg reports a finished collection or profile load.
type loadedMsg struct {
	screen screen
	err    error
}

// opDoneMsg reports a finished create, update, delete or mark-read call.
// back is the screen to return to on success.
type opDoneMsg struct {
	notice service.Notice
	back   screen
	err    error
}

type contactSentMsg struct {
	notice service.Notice
	err    error
}

type documentMsg struct {
	state service.ViewerState
	err   error
}

type copiedMsg struct {
	text string
}

type clearStatusMsg struct{}

// tickMsg re-renders screens whose data the background refresh changes.
type tickMsg struct{}
