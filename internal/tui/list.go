// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// listCursor is the selection of a vertical list.
type listCursor struct {
	idx int
}

// move handles up/down for a list of n rows.
func (c listCursor) move(msg tea.KeyMsg, n int) listCursor {
	switch {
	case key.Matches(msg, keys.up):
		if c.idx > 0 {
			c.idx--
		}
	case key.Matches(msg, keys.down):
		if c.idx < n-1 {
			c.idx++
		}
	}
	return c
}

// clamp keeps the cursor inside a list that may have shrunk.
func (c listCursor) clamp(n int) listCursor {
	if c.idx >= n {
		c.idx = n - 1
	}
	if c.idx < 0 {
		c.idx = 0
	}
	return c
}
