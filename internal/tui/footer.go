// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

type footer struct {
	width  int
	status string
	err    bool
	help   help.Model
}

func newFooter() *footer {
	return &footer{
		status: "Drag a tile into the bin it belongs to.",
		help:   help.New(),
	}
}

func (f *footer) Init() tea.Cmd {
	return nil
}

func (f *footer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.help.Width = msg.Width
	case statusMsg:
		f.status = msg.text
		f.err = msg.err
	}
	return f, nil
}

func (f *footer) View() string {
	mouse := "mouse on"
	if !zone.Enabled() {
		mouse = "mouse off"
	}
	line := ansi.Truncate(f.status+" | "+mouse, max(f.width, 0), "…")
	style := statusStyle
	if f.err {
		style = statusErrorStyle
	}
	return footerStyle.Width(f.width).Render(
		lipgloss.JoinVertical(lipgloss.Left, style.Render(line), f.help.View(keys)),
	)
}
