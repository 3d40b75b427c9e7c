// Package board is the in-memory scene graph behind the dropzone puzzle.
//
// A Board holds tiles (draggable elements) and zones (bins) in cell
// coordinates local to the board's top-left corner, and implements
// drag.Host so a drag.Controller can drive it.
package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/rileylov/dropzone/internal/config"
	"github.com/rileylov/dropzone/pkg/drag"
)

// Rect is a cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p falls inside r.
func (r Rect) Contains(p drag.Vec2) bool {
	return p.X >= float64(r.X) && p.X < float64(r.X+r.W) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Y+r.H)
}

// Tile is a draggable label.
type Tile struct {
	ID    drag.ElementID
	Label string
	Kind  string

	Pos         drag.Vec2
	Scale       float64
	HitTestable bool
	Locked      bool
	// Parent is the zone the tile logically belongs to, empty when unplaced.
	Parent drag.ZoneID
}

// Width is the number of cells the tile occupies.
func (t Tile) Width() int {
	return ansi.StringWidth(t.Label) + 2
}

// Cell returns the tile's top-left cell.
func (t Tile) Cell() (int, int) {
	return roundCell(t.Pos.X), roundCell(t.Pos.Y)
}

func (t Tile) Bounds() Rect {
	x, y := t.Cell()
	return Rect{X: x, Y: y, W: t.Width(), H: 1}
}

// Zone is a bin tiles can be dropped into.
type Zone struct {
	ID       drag.ZoneID
	Label    string
	Accepts  string
	Capacity int
	Rect     Rect
}

// Pivot is the zone's first inner cell, just inside its border.
func (z Zone) Pivot() drag.Vec2 {
	return drag.Vec2{X: float64(z.Rect.X + 1), Y: float64(z.Rect.Y + 1)}
}

// Takes reports whether the zone accepts tiles of kind.
func (z Zone) Takes(kind string) bool {
	return z.Accepts == "" || z.Accepts == kind
}

// Board is the scene graph. It is not safe for concurrent use.
type Board struct {
	width, height int
	origin        drag.Vec2

	tiles map[drag.ElementID]*Tile
	order []drag.ElementID // paint order, last drawn on top
	zones []*Zone
}

// New builds a board from its puzzle definition.
func New(cfg config.Board) *Board {
	b := &Board{
		width:  cfg.Width,
		height: cfg.Height,
		tiles:  make(map[drag.ElementID]*Tile, len(cfg.Tiles)),
	}
	for _, z := range cfg.Zones {
		b.zones = append(b.zones, &Zone{
			ID:       drag.ZoneID(uuid.NewString()),
			Label:    z.Label,
			Accepts:  z.Accepts,
			Capacity: z.Capacity,
			Rect:     Rect{X: z.X, Y: z.Y, W: z.Width, H: z.Height},
		})
	}
	for _, t := range cfg.Tiles {
		b.add(&Tile{
			ID:          drag.ElementID(uuid.NewString()),
			Label:       t.Label,
			Kind:        t.Kind,
			Pos:         drag.Vec2{X: float64(t.X), Y: float64(t.Y)},
			Scale:       1,
			HitTestable: true,
		})
	}
	return b
}

func (b *Board) add(t *Tile) {
	b.tiles[t.ID] = t
	b.order = append(b.order, t.ID)
}

func (b *Board) Size() (int, int) { return b.width, b.height }

// SetOrigin records where the board's top-left cell sits on screen.
func (b *Board) SetOrigin(x, y int) {
	b.origin = drag.Vec2{X: float64(x), Y: float64(y)}
}

// Tile returns a copy of the tile with the given ID.
func (b *Board) Tile(id drag.ElementID) (Tile, bool) {
	t, ok := b.tiles[id]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// TileByLabel finds the first tile in paint order with the given label.
func (b *Board) TileByLabel(label string) (Tile, bool) {
	for _, id := range b.order {
		if t := b.tiles[id]; t.Label == label {
			return *t, true
		}
	}
	return Tile{}, false
}

// Tiles returns copies of all tiles in paint order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.tiles[id])
	}
	return out
}

func (b *Board) Zone(id drag.ZoneID) (Zone, bool) {
	for _, z := range b.zones {
		if z.ID == id {
			return *z, true
		}
	}
	return Zone{}, false
}

func (b *Board) ZoneByLabel(label string) (Zone, bool) {
	for _, z := range b.zones {
		if z.Label == label {
			return *z, true
		}
	}
	return Zone{}, false
}

func (b *Board) Zones() []Zone {
	out := make([]Zone, len(b.zones))
	for i, z := range b.zones {
		out[i] = *z
	}
	return out
}

// TileAt returns the topmost hit-testable tile covering p.
func (b *Board) TileAt(p drag.Vec2) (Tile, bool) {
	for i := len(b.order) - 1; i >= 0; i-- {
		t := b.tiles[b.order[i]]
		if t.HitTestable && !t.Locked && t.Bounds().Contains(p) {
			return *t, true
		}
	}
	return Tile{}, false
}

// ZoneAt returns the zone covering p.
func (b *Board) ZoneAt(p drag.Vec2) (Zone, bool) {
	for i := len(b.zones) - 1; i >= 0; i-- {
		if b.zones[i].Rect.Contains(p) {
			return *b.zones[i], true
		}
	}
	return Zone{}, false
}

// Children returns the tiles logically placed in zone, in paint order.
func (b *Board) Children(zone drag.ZoneID) []Tile {
	var out []Tile
	for _, id := range b.order {
		if t := b.tiles[id]; t.Parent == zone {
			out = append(out, *t)
		}
	}
	return out
}

// Summary lists each zone's contents and the unplaced tiles.
func (b *Board) Summary() string {
	var sb strings.Builder
	for _, z := range b.zones {
		fmt.Fprintf(&sb, "%s: %s\n", z.Label, labels(b.Children(z.ID)))
	}
	fmt.Fprintf(&sb, "Unplaced: %s\n", labels(b.Children("")))
	return sb.String()
}

func labels(tiles []Tile) string {
	if len(tiles) == 0 {
		return "(none)"
	}
	names := make([]string, len(tiles))
	for i, t := range tiles {
		names[i] = t.Label
	}
	return strings.Join(names, ", ")
}

func roundCell(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
