package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// sizeRecorder remembers the last size it was given.
type sizeRecorder struct {
	width, height int
}

func (s *sizeRecorder) Init() tea.Cmd { return nil }

func (s *sizeRecorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		s.width, s.height = m.Width, m.Height
	}
	return s, nil
}

func (s *sizeRecorder) View() string { return "" }

func TestSplitSizesPanes(t *testing.T) {
	left, right := &sizeRecorder{}, &sizeRecorder{}
	s := newSplit([]pane{{model: left}, {model: right}}, []float64{1, 1})
	s.Update(tea.WindowSizeMsg{Width: 101, Height: 20})

	if left.width+right.width+handleWidth != 101 {
		t.Errorf("pane widths %d + %d + handle != 101", left.width, right.width)
	}
	if left.width != 50 || left.height != 20 {
		t.Errorf("left = %dx%d, want 50x20", left.width, left.height)
	}
}

func TestSplitHonoursMinWidth(t *testing.T) {
	left, right := &sizeRecorder{}, &sizeRecorder{}
	s := newSplit([]pane{{model: left, minWidth: 66}, {model: right}}, []float64{0.5, 0.5})

	s.Update(tea.WindowSizeMsg{Width: 101, Height: 20})
	if left.width < 66 {
		t.Fatalf("left width = %d after resize, want >= 66", left.width)
	}

	s.drag(s.handleID(0), -30)
	s.resizePanes()
	if left.width < 66 {
		t.Errorf("left width = %d after dragging left, want >= 66", left.width)
	}

	s.drag(s.handleID(0), 30)
	s.resizePanes()
	if right.width < minWidthChars {
		t.Errorf("right width = %d after dragging right, want >= %d", right.width, minWidthChars)
	}
}

func TestSplitDragUnknownHandle(t *testing.T) {
	s := newSplit([]pane{{model: &sizeRecorder{}}, {model: &sizeRecorder{}}}, []float64{0.5, 0.5})
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 10})

	s.drag("nope", 10)
	if s.proportions[0] != 0.5 {
		t.Errorf("proportions changed to %v by an unknown handle", s.proportions)
	}
}
