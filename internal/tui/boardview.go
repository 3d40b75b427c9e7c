package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dropzone/internal/board"
	"github.com/rileylov/dropzone/internal/game"
)

// frameInterval paces restore animation ticks.
const frameInterval = time.Second / 30

type tickMsg struct {
	gen int
}

// statusMsg replaces the footer's status line.
type statusMsg struct {
	text string
	err  bool
}

func status(text string, err bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, err: err} }
}

// boardView draws the board and feeds mouse events on it to the controller.
type boardView struct {
	id      string
	game    *game.Game
	pointer pointer
	logger  *log.Logger

	// gen is bumped on every new game so ticks scheduled for an old one die.
	gen     int
	ticking bool
}

func newBoardView(g *game.Game, logger *log.Logger) *boardView {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &boardView{id: zone.NewPrefix(), game: g, logger: logger}
}

func (v *boardView) setGame(g *game.Game) {
	v.game = g
	v.pointer.stop()
	v.gen++
	v.ticking = false
}

func (v *boardView) tick() tea.Cmd {
	gen := v.gen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (v *boardView) Init() tea.Cmd {
	return nil
}

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return v, v.handleMouse(msg)

	case tickMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		if v.game.Controller.Tick() {
			return v, v.tick()
		}
		v.ticking = false
	}
	return v, nil
}

func (v *boardView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	b := v.game.Board
	if info := zone.Get(v.id); !info.IsZero() {
		b.SetOrigin(info.StartX, info.StartY)
	}

	handled, r, err := v.pointer.handle(msg, b, v.game.Controller)
	if err != nil {
		v.logger.Error("drag failed", "err", err)
		return status(err.Error(), true)
	}
	if !handled || r == nil {
		return nil
	}

	var cmds []tea.Cmd
	cmds = append(cmds, status(describe(r), false))
	if v.game.Controller.Restoring() && !v.ticking {
		v.ticking = true
		cmds = append(cmds, v.tick())
	}
	return tea.Batch(cmds...)
}

// describe turns a finished drag into a status line.
func describe(r *release) string {
	switch {
	case r.outcome.Finished:
		return "Solved! Every bin is full."
	case !r.outcome.Dropped:
		return fmt.Sprintf("Dropped %s outside any bin", r.tile.Label)
	case r.outcome.Success:
		return fmt.Sprintf("Placed %s in %s", r.tile.Label, r.zone.Label)
	default:
		return fmt.Sprintf("%s does not belong in %s", r.tile.Label, r.zone.Label)
	}
}

func (v *boardView) View() string {
	b := v.game.Board
	w, h := b.Size()
	c := newCanvas(w, h)

	for _, z := range b.Zones() {
		border := cellZoneBorder
		if len(b.Children(z.ID)) >= z.Capacity {
			border = cellZoneBorderFull
		}
		r := z.Rect
		c.box(r.X, r.Y, r.W, r.H, z.Label, border, cellZoneTitle)
	}
	for _, t := range b.Tiles() {
		x, y := t.Cell()
		c.put(x, y, tileText(t), tileKind(t))
	}

	out := boardFrameStyle.Render(zone.Mark(v.id, c.String()))
	if v.game.Controller.Frozen() {
		out = lipgloss.JoinVertical(lipgloss.Center, out, bannerStyle.Render("Solved!"))
	}
	return out
}

func tileText(t board.Tile) string {
	if t.Locked {
		return "✓" + t.Label + " "
	}
	return " " + t.Label + " "
}

func tileKind(t board.Tile) cellKind {
	switch {
	case t.Scale > 1:
		return cellTileLifted
	case t.Locked:
		return cellTileLocked
	case t.Parent != "":
		return cellTilePlaced
	default:
		return cellTile
	}
}
