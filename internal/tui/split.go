// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	handleWidth   = 1    // width of a split handle in cells
	minWidthChars = 20   // narrowest a pane may get unless it asks for more
	maxProportion = 0.80 // widest share any pane may take
)

var (
	handleStyle = lipgloss.NewStyle().
			Width(handleWidth).
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#585858"})

	handleActiveStyle = handleStyle.
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"})
)

// pane is a child of a split with the narrowest width it can be drawn at.
type pane struct {
	model    tea.Model
	minWidth int
}

// split lays panes out side by side with draggable handles between them.
type split struct {
	id          string
	width       int
	height      int
	panes       []pane
	proportions []float64 // sums to 1
	handles     handleDrag
}

func newSplit(panes []pane, proportions []float64) *split {
	if len(panes) != len(proportions) {
		panic("panes and proportions must have the same length")
	}
	s := &split{
		id:          zone.NewPrefix(),
		panes:       panes,
		proportions: proportions,
	}
	s.normalize()
	return s
}

func (s *split) Init() tea.Cmd {
	return nil
}

func (s *split) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.clamp()
		return s, s.resizePanes()

	case tea.MouseMsg:
		handled, handleID, deltaX := s.handles.handle(msg, s.handleIDs())
		if handled {
			if deltaX != 0 {
				s.drag(handleID, deltaX)
				return s, s.resizePanes()
			}
			return s, nil
		}
	}
	return s, s.broadcast(msg)
}

func (s *split) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.panes))
	for i := range s.panes {
		var cmd tea.Cmd
		s.panes[i].model, cmd = s.panes[i].model.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s *split) resizePanes() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.panes))
	for i := range s.panes {
		var cmd tea.Cmd
		s.panes[i].model, cmd = s.panes[i].model.Update(tea.WindowSizeMsg{
			Width:  s.paneWidth(i),
			Height: s.height,
		})
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s *split) available() int {
	return s.width - (len(s.panes)-1)*handleWidth
}

// paneWidth rounds each pane's share; the last pane takes what is left.
func (s *split) paneWidth(i int) int {
	avail := s.available()
	if i < len(s.panes)-1 {
		return int(math.Round(float64(avail) * s.proportions[i]))
	}
	used := 0
	for j := 0; j < i; j++ {
		used += s.paneWidth(j)
	}
	return max(avail-used, 0)
}

func (s *split) View() string {
	if len(s.panes) == 0 {
		return ""
	}
	var parts []string
	for i, p := range s.panes {
		parts = append(parts, lipgloss.NewStyle().
			Width(s.paneWidth(i)).
			Height(s.height).
			MaxHeight(s.height).
			Render(p.model.View()))
		if i < len(s.panes)-1 {
			parts = append(parts, s.renderHandle(s.handleID(i)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *split) handleIDs() []string {
	ids := make([]string, 0, len(s.panes)-1)
	for i := 0; i < len(s.panes)-1; i++ {
		ids = append(ids, s.handleID(i))
	}
	return ids
}

func (s *split) handleID(i int) string {
	return s.id + "handle_" + strconv.Itoa(i)
}

func (s *split) renderHandle(id string) string {
	style := handleStyle
	if s.handles.dragging() && s.handles.id == id {
		style = handleActiveStyle
	}
	bars := strings.TrimSuffix(strings.Repeat("│\n", max(s.height, 1)), "\n")
	return zone.Mark(id, style.Render(bars))
}

// minProportion is the share of the available width pane i needs.
func (s *split) minProportion(i int) float64 {
	avail := s.available()
	if avail <= 0 {
		return 0
	}
	return float64(max(s.panes[i].minWidth, minWidthChars)) / float64(avail)
}

// drag moves the handle id by deltaX cells, growing the pane on one side
// at the expense of the other.
func (s *split) drag(id string, deltaX int) {
	idx := -1
	for i := 0; i < len(s.panes)-1; i++ {
		if s.handleID(i) == id {
			idx = i
			break
		}
	}
	avail := s.available()
	if idx == -1 || avail <= 0 {
		return
	}

	left, right := idx, idx+1
	pair := s.proportions[left] + s.proportions[right]
	newLeft := s.proportions[left] + float64(deltaX)/float64(avail)

	lo := s.minProportion(left)
	hi := min(maxProportion, pair-s.minProportion(right))
	if newLeft > hi {
		newLeft = hi
	}
	if newLeft < lo {
		newLeft = lo
	}
	s.proportions[left] = newLeft
	s.proportions[right] = pair - newLeft
	s.normalize()
}

// clamp grows panes that fall below their minimum after a resize, taking
// the space from the widest pane.
func (s *split) clamp() {
	for i := range s.panes {
		need := s.minProportion(i)
		if s.proportions[i] >= need {
			continue
		}
		widest := -1
		for j := range s.proportions {
			if j != i && (widest == -1 || s.proportions[j] > s.proportions[widest]) {
				widest = j
			}
		}
		if widest == -1 {
			continue
		}
		give := min(need-s.proportions[i], s.proportions[widest]-s.minProportion(widest))
		if give <= 0 {
			continue
		}
		s.proportions[i] += give
		s.proportions[widest] -= give
	}
	s.normalize()
}

func (s *split) normalize() {
	total := 0.0
	for _, p := range s.proportions {
		total += p
	}
	if total > 0 {
		for i := range s.proportions {
			s.proportions[i] /= total
		}
	}
}
