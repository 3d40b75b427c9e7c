// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package tui is the terminal front end: a mouse-driven board where tiles are
// dragged into bins, a side panel tracking placements, and a header and
// footer for commands and status.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dropzone/internal/game"
)

// Factory builds a fresh game. It is called once at start and again on
// every reset.
type Factory func() (*game.Game, error)

type Model struct {
	width  int
	height int

	header *header
	footer *footer
	board  *boardView
	panel  *panel
	split  *split

	game    *game.Game
	newGame Factory
	logger  *log.Logger
	copy    func(string) error
}

type Option func(*Model)

func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copy = fn }
}

// New starts the first game and lays out the screen around it. The zone
// manager must be initialized with zone.NewGlobal before New is called.
func New(newGame Factory, opts ...Option) (*Model, error) {
	m := &Model{
		newGame: newGame,
		logger:  log.New(io.Discard),
		copy:    clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}

	g, err := newGame()
	if err != nil {
		return nil, err
	}
	m.game = g

	bw, _ := g.Board.Size()
	m.header = newHeader(g.Title)
	m.footer = newFooter()
	m.board = newBoardView(g, m.logger)
	m.panel = newPanel(g)
	m.split = newSplit([]pane{
		{model: m.board, minWidth: bw + 2},
		{model: m.panel},
	}, []float64{0.7, 0.3})
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.isInitialized() {
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Mouse):
			zone.SetEnabled(!zone.Enabled())
			return m, nil
		case key.Matches(msg, keys.Reset):
			return m, m.reset()
		case key.Matches(msg, keys.Copy):
			return m, m.copySummary()
		}
		return m, nil

	case resetMsg:
		return m, m.reset()

	case copyMsg:
		return m, m.copySummary()

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		msg.Height -= 2
		msg.Width -= 2
		return m, m.propagate(msg)
	}
	return m, m.propagate(msg)
}

func (m *Model) propagate(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	_, cmd = m.header.Update(msg)
	cmds = append(cmds, cmd)

	if wmsg, ok := msg.(tea.WindowSizeMsg); ok {
		// Header and footer keep their natural height; the split gets the rest.
		headerH := lipgloss.Height(m.header.View())
		_, cmd = m.footer.Update(wmsg)
		cmds = append(cmds, cmd)
		footerH := lipgloss.Height(m.footer.View())

		middle := wmsg
		middle.Height = max(wmsg.Height-headerH-footerH, 1)
		_, cmd = m.split.Update(middle)
		return tea.Batch(append(cmds, cmd)...)
	}

	_, cmd = m.split.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = m.footer.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// reset throws the current game away and deals a new one.
func (m *Model) reset() tea.Cmd {
	g, err := m.newGame()
	if err != nil {
		m.logger.Error("reset failed", "err", err)
		return status(fmt.Sprintf("Reset failed: %v", err), true)
	}
	m.game.Close()
	m.game = g
	m.board.setGame(g)
	m.panel.setGame(g)
	m.logger.Info("game reset")
	return status("New game. Drag a tile into the bin it belongs to.", false)
}

func (m *Model) copySummary() tea.Cmd {
	if err := m.copy(m.game.Board.Summary()); err != nil {
		return status(fmt.Sprintf("Couldn't write to clipboard: %v", err), true)
	}
	return status("Copied placements to the clipboard", false)
}

func (m *Model) View() string {
	if !m.isInitialized() {
		return ""
	}
	s := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(highlight).
		MaxHeight(m.height).
		MaxWidth(m.width)
	return zone.Scan(s.Render(lipgloss.JoinVertical(lipgloss.Top,
		m.header.View(),
		m.split.View(),
		m.footer.View(),
	)))
}

// Close releases the current game.
func (m *Model) Close() {
	m.game.Close()
}

// Run drives m until the user quits or ctx is cancelled.
func Run(ctx context.Context, m *Model) error {
	defer m.Close()
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
