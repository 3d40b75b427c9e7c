package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCanvasPutClips(t *testing.T) {
	c := newCanvas(6, 2)
	c.put(3, 0, "hello", cellTile)
	c.put(-2, 1, "abcd", cellTile)
	c.put(0, 5, "off", cellTile)

	got := strings.Split(ansi.Strip(c.String()), "\n")
	want := []string{"   hel", "cd    "}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCanvasWideRunes(t *testing.T) {
	c := newCanvas(4, 1)
	c.put(0, 0, "日本", cellTile)
	if got := ansi.Strip(c.String()); got != "日本" {
		t.Errorf("row = %q, want %q", got, "日本")
	}

	// A wide rune that would straddle the edge is dropped.
	c = newCanvas(3, 1)
	c.put(0, 0, "日本", cellTile)
	if got := ansi.Strip(c.String()); got != "日 " {
		t.Errorf("row = %q, want %q", got, "日 ")
	}
}

func TestCanvasBox(t *testing.T) {
	c := newCanvas(12, 3)
	c.box(0, 0, 12, 3, "Citrus Fruits", cellZoneBorder, cellZoneTitle)

	rows := strings.Split(ansi.Strip(c.String()), "\n")
	if !strings.HasPrefix(rows[0], "┌─ Citrus") || !strings.HasSuffix(rows[0], "─┐") {
		t.Errorf("top edge = %q", rows[0])
	}
	if rows[1] != "│          │" {
		t.Errorf("side = %q", rows[1])
	}
	if rows[2] != "└──────────┘" {
		t.Errorf("bottom edge = %q", rows[2])
	}
}
