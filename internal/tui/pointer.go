package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/dropzone/internal/board"
	"github.com/rileylov/dropzone/pkg/drag"
)

// pointerState is the state of the left mouse button over the board.
type pointerState int

const (
	pointerIdle pointerState = iota
	pointerDragging
)

// pointer turns raw mouse events into the controller's
// BeginDrag → Drag* → [Drop] → EndDrag sequence.
type pointer struct {
	state pointerState
	tile  drag.ElementID
}

// release describes a drag cycle the pointer just closed.
type release struct {
	tile    board.Tile
	zone    board.Zone
	outcome drag.Outcome
}

// handle processes one mouse event. It reports whether the event belonged
// to a drag, and fills in r when the event closed one.
func (p *pointer) handle(msg tea.MouseMsg, b *board.Board, c *drag.Controller) (handled bool, r *release, err error) {
	at := drag.Vec2{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || p.state == pointerDragging {
			return false, nil, nil
		}
		t, ok := b.TileAt(b.ToLocal(at))
		if !ok {
			return false, nil, nil
		}
		if err := c.BeginDrag(t.ID); err != nil {
			return true, nil, err
		}
		p.state = pointerDragging
		p.tile = t.ID
		return true, nil, nil

	case tea.MouseActionMotion:
		if p.state != pointerDragging {
			return false, nil, nil
		}
		return true, nil, c.Drag(p.tile, at)

	case tea.MouseActionRelease:
		if p.state != pointerDragging {
			return false, nil, nil
		}
		id := p.tile
		p.stop()

		// Release lands on whatever is under the pointer; the tile itself is
		// no longer hit-testable.
		r = &release{}
		r.tile, _ = b.Tile(id)
		if z, ok := b.ZoneAt(b.ToLocal(at)); ok {
			r.zone = z
			if err := c.Drop(z.ID); err != nil {
				return true, nil, err
			}
		}
		if err := c.EndDrag(); err != nil {
			return true, nil, err
		}
		r.outcome, _ = c.LastOutcome()
		return true, r, nil
	}
	return false, nil, nil
}

func (p *pointer) dragging() bool {
	return p.state == pointerDragging
}

func (p *pointer) stop() {
	p.state = pointerIdle
	p.tile = ""
}
