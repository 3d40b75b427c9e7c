package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileylov/dropzone/internal/board"
	"github.com/rileylov/dropzone/pkg/drag"
)

// drain runs cmd and returns every message it produced, flattening batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func statusOf(t *testing.T, msgs []tea.Msg) statusMsg {
	t.Helper()
	for _, m := range msgs {
		if s, ok := m.(statusMsg); ok {
			return s
		}
	}
	t.Fatalf("no status in %v", msgs)
	return statusMsg{}
}

func TestBoardViewRejectedDropAnimatesHome(t *testing.T) {
	g := newTestGame(t)
	v := newBoardView(g, nil)

	v.Update(press(16, 1))
	v.Update(motion(5, 9))
	_, cmd := v.Update(releaseAt(5, 9))

	msgs := drain(cmd)
	if got := statusOf(t, msgs).text; got != "Glossier does not belong in Citrus Fruits" {
		t.Errorf("status = %q", got)
	}
	if !v.ticking {
		t.Fatal("rejected drop did not start the restore ticker")
	}

	var tick tickMsg
	for _, m := range msgs {
		if tm, ok := m.(tickMsg); ok {
			tick = tm
		}
	}
	if tick.gen != v.gen {
		t.Fatalf("tick generation = %d, want %d", tick.gen, v.gen)
	}

	for i := 0; i < 100 && v.ticking; i++ {
		v.Update(tick)
	}
	if v.ticking {
		t.Fatal("restore still running after 100 ticks")
	}
	tile := tileByLabel(t, g.Board, "Glossier")
	if x, y := tile.Cell(); x != 15 || y != 1 {
		t.Errorf("tile at (%d, %d) after restore, want (15, 1)", x, y)
	}
}

func TestBoardViewDropsStaleTicks(t *testing.T) {
	g := newTestGame(t)
	v := newBoardView(g, nil)

	v.Update(press(16, 1))
	v.Update(releaseAt(5, 9))
	stale := tickMsg{gen: v.gen}

	v.setGame(newTestGame(t))
	if _, cmd := v.Update(stale); cmd != nil {
		t.Error("tick from a previous game scheduled another tick")
	}
}

func outcome(dropped, success, finished bool) drag.Outcome {
	return drag.Outcome{Dropped: dropped, Success: success, Finished: finished}
}

func TestDescribe(t *testing.T) {
	tile := board.Tile{Label: "Yuzu"}
	bin := board.Zone{Label: "Citrus Fruits"}

	tests := []struct {
		name string
		r    release
		want string
	}{
		{"outside", release{tile: tile}, "Dropped Yuzu outside any bin"},
		{"placed", release{tile: tile, zone: bin, outcome: outcome(true, true, false)}, "Placed Yuzu in Citrus Fruits"},
		{"rejected", release{tile: tile, zone: bin, outcome: outcome(true, false, false)}, "Yuzu does not belong in Citrus Fruits"},
		{"finished", release{tile: tile, zone: bin, outcome: outcome(true, true, true)}, "Solved! Every bin is full."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe(&tt.r); got != tt.want {
				t.Errorf("describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoardViewRendersTiles(t *testing.T) {
	g := newTestGame(t)
	v := newBoardView(g, nil)

	out := ansi.Strip(v.View())
	for _, want := range []string{"Citrus Fruits", "Lip Gloss Vendors", "Grapefruit", "Claire's"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(out, "Solved!") {
		t.Error("unfinished board shows the win banner")
	}
}

func TestTileKind(t *testing.T) {
	tests := []struct {
		name string
		tile board.Tile
		want cellKind
	}{
		{"loose", board.Tile{Scale: 1}, cellTile},
		{"lifted", board.Tile{Scale: 1.2, Parent: "z"}, cellTileLifted},
		{"placed", board.Tile{Scale: 1, Parent: "z"}, cellTilePlaced},
		{"locked", board.Tile{Scale: 1, Parent: "z", Locked: true}, cellTileLocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tileKind(tt.tile); got != tt.want {
				t.Errorf("tileKind() = %v, want %v", got, tt.want)
			}
		})
	}
}
