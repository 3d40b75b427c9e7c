// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)
)

type (
	resetMsg struct{}
	copyMsg  struct{}
)

type headerButton struct {
	label string
	msg   tea.Msg
}

type header struct {
	id      string
	width   int
	title   string
	buttons []headerButton
}

func newHeader(title string) *header {
	return &header{
		id:    zone.NewPrefix(),
		title: title,
		buttons: []headerButton{
			{label: "Reset", msg: resetMsg{}},
			{label: "Copy", msg: copyMsg{}},
			{label: "Quit", msg: tea.QuitMsg{}},
		},
	}
}

func (h *header) Init() tea.Cmd {
	return nil
}

func (h *header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return h, nil
		}
		for i, b := range h.buttons {
			if zone.Get(h.buttonID(i)).InBounds(msg) {
				out := b.msg
				return h, func() tea.Msg { return out }
			}
		}
	}
	return h, nil
}

func (h *header) View() string {
	var buttonViews []string
	for i, b := range h.buttons {
		buttonViews = append(buttonViews, zone.Mark(h.buttonID(i), headerButtonStyle.Render(b.label)))
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, buttonViews...)
	buttonsWidth := lipgloss.Width(buttons)

	maxTitleWidth := max(h.width-buttonsWidth-2, 0)
	title := titleStyle.Render(ansi.Truncate(h.title, maxTitleWidth, "…"))

	spacing := lipgloss.NewStyle().
		Background(subtle).
		Width(max(h.width-lipgloss.Width(title)-buttonsWidth-2, 0)).
		Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttons)
	return headerStyle.Width(h.width).Render(content)
}

func (h *header) buttonID(i int) string {
	return h.id + "button_" + strconv.Itoa(i)
}
