package board

import (
	"strings"
	"testing"

	"github.com/rileylov/dropzone/internal/config"
	"github.com/rileylov/dropzone/pkg/drag"
)

func testBoard() *Board {
	return New(config.Board{
		Width:  40,
		Height: 12,
		Zones: []config.Zone{
			{Label: "Left", Accepts: "a", Capacity: 2, X: 0, Y: 5, Width: 15, Height: 5},
			{Label: "Right", Capacity: 2, X: 20, Y: 5, Width: 15, Height: 5},
		},
		Tiles: []config.Tile{
			{Label: "one", Kind: "a", X: 1, Y: 1},
			{Label: "two", Kind: "b", X: 3, Y: 1},
		},
	})
}

func mustTile(t *testing.T, b *Board, label string) Tile {
	t.Helper()
	tile, ok := b.TileByLabel(label)
	if !ok {
		t.Fatalf("tile %q not found", label)
	}
	return tile
}

func mustZone(t *testing.T, b *Board, label string) Zone {
	t.Helper()
	z, ok := b.ZoneByLabel(label)
	if !ok {
		t.Fatalf("zone %q not found", label)
	}
	return z
}

func TestTileAtTopmost(t *testing.T) {
	b := testBoard()
	one := mustTile(t, b, "one")
	two := mustTile(t, b, "two")

	// "one" spans x 1..5 and "two" spans x 3..7; x=4 is covered by both.
	got, ok := b.TileAt(drag.Vec2{X: 4, Y: 1})
	if !ok || got.ID != two.ID {
		t.Errorf("TileAt(4,1) = %q, want two (painted last)", got.Label)
	}

	b.Raise(one.ID)
	got, _ = b.TileAt(drag.Vec2{X: 4, Y: 1})
	if got.ID != one.ID {
		t.Errorf("TileAt after Raise = %q, want one", got.Label)
	}

	b.SetHitTestable(one.ID, false)
	got, _ = b.TileAt(drag.Vec2{X: 4, Y: 1})
	if got.ID != two.ID {
		t.Errorf("TileAt with one not hit-testable = %q, want two", got.Label)
	}

	if _, ok := b.TileAt(drag.Vec2{X: 30, Y: 1}); ok {
		t.Error("TileAt on empty cell found a tile")
	}
}

func TestZoneAt(t *testing.T) {
	b := testBoard()
	z, ok := b.ZoneAt(drag.Vec2{X: 22, Y: 6})
	if !ok || z.Label != "Right" {
		t.Errorf("ZoneAt(22,6) = %q, %v; want Right", z.Label, ok)
	}
	if _, ok := b.ZoneAt(drag.Vec2{X: 17, Y: 6}); ok {
		t.Error("ZoneAt between zones found a zone")
	}
}

func TestReparentAndAlign(t *testing.T) {
	b := testBoard()
	left := mustZone(t, b, "Left")
	one := mustTile(t, b, "one")
	two := mustTile(t, b, "two")

	b.Reparent(one.ID, left.ID)
	b.ResetLocalOffset(one.ID)
	b.Reparent(two.ID, left.ID)
	b.ResetLocalOffset(two.ID)

	if got := b.Position(one.ID); got != left.Pivot() {
		t.Errorf("first child at %v, want pivot %v", got, left.Pivot())
	}
	want := left.Pivot().Add(drag.Vec2{Y: 1})
	if got := b.Position(two.ID); got != want {
		t.Errorf("second child at %v, want %v", got, want)
	}
	if n := len(b.Children(left.ID)); n != 2 {
		t.Errorf("Children(Left) = %d, want 2", n)
	}
}

func TestAlignReusesFreedRow(t *testing.T) {
	b := New(config.Board{
		Width:  40,
		Height: 12,
		Zones: []config.Zone{
			{Label: "A", Capacity: 3, X: 0, Y: 5, Width: 15, Height: 5},
			{Label: "B", Capacity: 3, X: 20, Y: 5, Width: 15, Height: 5},
		},
		Tiles: []config.Tile{
			{Label: "t1", X: 1, Y: 1},
			{Label: "t2", X: 6, Y: 1},
			{Label: "t3", X: 11, Y: 1},
		},
	})
	a, bin := mustZone(t, b, "A"), mustZone(t, b, "B")
	place := func(label string, z Zone) {
		id := mustTile(t, b, label).ID
		b.Raise(id)
		b.Reparent(id, z.ID)
		b.ResetLocalOffset(id)
	}

	place("t1", a)
	place("t2", a)
	place("t1", bin)
	place("t3", a)

	t2, t3 := mustTile(t, b, "t2"), mustTile(t, b, "t3")
	if t2.Bounds() == t3.Bounds() {
		t.Fatalf("t2 and t3 share cells %+v", t2.Bounds())
	}
	if got := t3.Pos; got != a.Pivot() {
		t.Errorf("t3 at %v, want the freed pivot row %v", got, a.Pivot())
	}
	for _, tile := range []Tile{t2, t3} {
		x, y := tile.Cell()
		if got, ok := b.TileAt(drag.Vec2{X: float64(x), Y: float64(y)}); !ok || got.ID != tile.ID {
			t.Errorf("TileAt(%d,%d) = %q, want %s", x, y, got.Label, tile.Label)
		}
	}
}

func TestDuplicateAndPaintIndex(t *testing.T) {
	b := testBoard()
	one := mustTile(t, b, "one")

	dup := b.Duplicate(one.ID)
	if dup == "" || dup == one.ID {
		t.Fatalf("Duplicate() = %q", dup)
	}
	b.SetPaintIndex(dup, b.PaintIndex(one.ID))

	order := b.Elements()
	if order[0] != dup || order[1] != one.ID {
		t.Errorf("paint order = %v, want duplicate before original", order)
	}
	d, _ := b.Tile(dup)
	if d.Label != "one" || d.Pos != one.Pos {
		t.Errorf("duplicate = %+v, want copy of one", d)
	}
}

func TestDestroy(t *testing.T) {
	b := testBoard()
	one := mustTile(t, b, "one")
	b.Destroy(one.ID)
	if _, ok := b.Tile(one.ID); ok {
		t.Error("tile still present after Destroy")
	}
	if n := len(b.Elements()); n != 1 {
		t.Errorf("Elements() = %d, want 1", n)
	}
	b.Destroy(one.ID)
}

func TestToLocal(t *testing.T) {
	b := testBoard()
	b.SetOrigin(3, 2)
	if got := b.ToLocal(drag.Vec2{X: 10, Y: 5}); got != (drag.Vec2{X: 7, Y: 3}) {
		t.Errorf("ToLocal = %v, want {7 3}", got)
	}
}

func TestSummary(t *testing.T) {
	b := testBoard()
	b.Reparent(mustTile(t, b, "one").ID, mustZone(t, b, "Left").ID)
	got := b.Summary()
	for _, want := range []string{"Left: one", "Right: (none)", "Unplaced: two"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, missing %q", got, want)
		}
	}
}

func TestControllerOnBoard(t *testing.T) {
	b := testBoard()
	left := mustZone(t, b, "Left")
	one := mustTile(t, b, "one")

	cfg := drag.DefaultConfig()
	cfg.AlignOnSuccess = true
	cfg.LockOnSuccess = true
	c := drag.New(b, drag.EvaluatorFuncs{
		Drop: func(drag.ElementID, drag.ZoneID) bool { return true },
	}, drag.WithConfig(cfg))

	if err := c.BeginDrag(one.ID); err != nil {
		t.Fatal(err)
	}
	if err := c.Drag(one.ID, drag.Vec2{X: 3, Y: 7}); err != nil {
		t.Fatal(err)
	}
	if err := c.Drop(left.ID); err != nil {
		t.Fatal(err)
	}
	if err := c.EndDrag(); err != nil {
		t.Fatal(err)
	}

	got, _ := b.Tile(one.ID)
	if got.Parent != left.ID || got.Pos != left.Pivot() || !got.Locked || got.Scale != 1 {
		t.Errorf("placed tile = %+v", got)
	}
	if _, ok := b.TileAt(got.Pos); ok {
		t.Error("locked tile is still hit-testable")
	}
}
