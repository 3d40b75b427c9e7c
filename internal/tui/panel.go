// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dropzone/internal/board"
	"github.com/rileylov/dropzone/internal/game"
)

var (
	listHeader = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtle).
			Render
	listItemStyle = lipgloss.NewStyle().PaddingLeft(2).Render
	checkMark     = lipgloss.NewStyle().SetString("✓").
			Foreground(special).
			PaddingRight(1).
			String()

	listDoneStyle = func(s string) string {
		return checkMark + lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(dim).
			Render(s)
	}
)

// panel lists how full each bin is and where every tile currently sits.
// Clicking a bin selects its tiles in the table.
type panel struct {
	id     string
	game   *game.Game
	width  int
	height int
	table  table.Model
}

func newPanel(g *game.Game) *panel {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Tile", Width: 18},
		{Title: "Bin", Width: 18},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(subtle).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	p := &panel{id: zone.NewPrefix(), game: g, table: t}
	p.refresh()
	return p
}

func (p *panel) setGame(g *game.Game) {
	p.game = g
	p.refresh()
}

// refresh rebuilds the table rows from the board.
func (p *panel) refresh() {
	b := p.game.Board
	var rows []table.Row
	for _, t := range b.Tiles() {
		icon, bin := "·", "-"
		if z, ok := b.Zone(t.Parent); ok {
			icon, bin = "✓", z.Label
		}
		rows = append(rows, table.Row{icon, t.Label, bin})
	}
	p.table.SetRows(rows)
}

func (p *panel) Init() tea.Cmd {
	return nil
}

func (p *panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.resize()
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return p, nil
		}
		for _, z := range p.game.Board.Zones() {
			if zone.Get(p.zoneID(z)).InBounds(msg) {
				p.focusZone(z)
				break
			}
		}
	case statusMsg:
		// Every finished drag reports a status, so the table follows the board.
		p.refresh()
	}
	return p, nil
}

// resize splits the panel's height between the bin list and the table.
func (p *panel) resize() {
	listH := lipgloss.Height(p.binList())
	h := p.height - listH - 1
	if h < 3 {
		h = 3
	}
	p.table.SetHeight(h)
	if p.width > 0 {
		p.table.SetWidth(p.width)
	}
}

// focusZone moves the table cursor to the first tile placed in z.
func (p *panel) focusZone(z board.Zone) {
	for i, t := range p.game.Board.Tiles() {
		if t.Parent == z.ID {
			p.table.SetCursor(i)
			return
		}
	}
}

func (p *panel) zoneID(z board.Zone) string {
	return p.id + string(z.ID)
}

func (p *panel) binList() string {
	b := p.game.Board
	out := []string{listHeader("Bins")}
	for _, z := range b.Zones() {
		n := len(b.Children(z.ID))
		text := fmt.Sprintf("%s (%d/%d)", z.Label, n, z.Capacity)
		if n >= z.Capacity {
			out = append(out, zone.Mark(p.zoneID(z), listDoneStyle(text)))
			continue
		}
		out = append(out, zone.Mark(p.zoneID(z), listItemStyle(text)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (p *panel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left, p.binList(), "", p.table.View())
	style := lipgloss.NewStyle()
	if p.width > 0 {
		style = style.Width(p.width)
	}
	if p.height > 0 {
		style = style.Height(p.height).MaxHeight(p.height)
	}
	return style.Render(content)
}
