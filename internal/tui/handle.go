// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// handleDrag tracks a press-drag-release on one of a split's handles.
type handleDrag struct {
	state pointerState
	id    string // handle being dragged
	lastX int
}

// handle processes one mouse event against the handles in ids. It reports
// whether the event was consumed, which handle it concerned, and how far the
// pointer moved horizontally since the last event.
func (d *handleDrag) handle(msg tea.MouseMsg, ids []string) (bool, string, int) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		for _, id := range ids {
			if zone.Get(id).InBounds(msg) {
				d.start(id, msg.X)
				return true, id, 0
			}
		}
	case tea.MouseActionMotion:
		if d.dragging() {
			deltaX := msg.X - d.lastX
			d.lastX = msg.X
			return true, d.id, deltaX
		}
	case tea.MouseActionRelease:
		if d.dragging() {
			id := d.id
			d.stop()
			return true, id, 0
		}
	}
	return false, "", 0
}

func (d *handleDrag) dragging() bool {
	return d.state == pointerDragging
}

func (d *handleDrag) start(id string, x int) {
	d.state = pointerDragging
	d.id = id
	d.lastX = x
}

func (d *handleDrag) stop() {
	d.state = pointerIdle
	d.id = ""
	d.lastX = 0
}
