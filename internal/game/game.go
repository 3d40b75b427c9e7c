// Package game wires a puzzle definition into a playable board: the scene
// graph, the rules and the drag controller driving them.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/rileylov/dropzone/internal/board"
	"github.com/rileylov/dropzone/internal/config"
	"github.com/rileylov/dropzone/internal/rules"
	"github.com/rileylov/dropzone/internal/rules/script"
	"github.com/rileylov/dropzone/pkg/drag"
)

// Game is one play-through of a puzzle.
type Game struct {
	Title      string
	Board      *board.Board
	Controller *drag.Controller
	// Rules names the evaluator in use: "sorter" or the script path.
	Rules      string

	closeRules func()
}

// New builds a fresh game from cfg. The rules script, if any, is loaded
// again for every game so scripts cannot carry state across resets.
func New(cfg config.Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := board.New(cfg.Board)
	g := &Game{Title: cfg.Title, Board: b, Rules: "sorter", closeRules: func() {}}

	var eval drag.Evaluator = rules.Sorter{Board: b}
	if cfg.Rules.Script != "" {
		r, err := script.Load(cfg.Rules.Script, b, script.WithLogger(logger.WithPrefix("rules")))
		if err != nil {
			return nil, fmt.Errorf("rules %s: %w", cfg.Rules.Script, err)
		}
		eval = r
		g.Rules = cfg.Rules.Script
		g.closeRules = r.Close
	}

	g.Controller = drag.New(b, eval,
		drag.WithConfig(cfg.Drag),
		drag.WithLogger(logger.WithPrefix("drag")),
	)
	logger.Debug("game ready", "title", cfg.Title, "rules", g.Rules,
		"tiles", len(cfg.Board.Tiles), "zones", len(cfg.Board.Zones))
	return g, nil
}

// Close releases the rules runtime.
func (g *Game) Close() {
	g.closeRules()
}
