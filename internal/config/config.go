// Package config loads dropzone puzzle files.
//
// A puzzle file is TOML with three tables: [drag] holds the controller
// behaviors, [rules] optionally points at a Lua script supplying the drop and
// game hooks, and [board] lays out the zones and tiles. See default.toml for
// a complete example.
package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rileylov/dropzone/pkg/drag"
)

//go:embed default.toml
var defaultPuzzle string

// Config is a decoded puzzle file.
type Config struct {
	Title string      `toml:"title"`
	Drag  drag.Config `toml:"drag"`
	Rules Rules       `toml:"rules"`
	Board Board       `toml:"board"`
}

// Rules selects the policy hooks. An empty Script uses the built-in sorter.
type Rules struct {
	Script string `toml:"script"`
}

type Board struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Zones  []Zone `toml:"zones"`
	Tiles  []Tile `toml:"tiles"`
}

// Zone is a bin tiles can be dropped into. Accepts names the tile kind the
// bin takes; empty accepts anything.
type Zone struct {
	Label    string `toml:"label"`
	Accepts  string `toml:"accepts"`
	Capacity int    `toml:"capacity"`
	X        int    `toml:"x"`
	Y        int    `toml:"y"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
}

type Tile struct {
	Label string `toml:"label"`
	Kind  string `toml:"kind"`
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
}

// Default returns the built-in puzzle.
func Default() Config {
	var cfg Config
	if _, err := toml.Decode(defaultPuzzle, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default puzzle: %v", err))
	}
	return cfg
}

// DefaultTOML returns the built-in puzzle file, a starting point for new
// puzzles.
func DefaultTOML() string {
	return defaultPuzzle
}

// Load decodes the puzzle at path. Keys the file leaves out keep their
// default values; a file without zones and tiles plays on the default board.
// A relative rules script is resolved against the file's directory.
func Load(path string) (Config, error) {
	def := Default()
	cfg := Config{
		Title: def.Title,
		Drag:  def.Drag,
		Board: Board{Width: def.Board.Width, Height: def.Board.Height},
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if len(cfg.Board.Zones) == 0 && len(cfg.Board.Tiles) == 0 {
		cfg.Board.Zones = def.Board.Zones
		cfg.Board.Tiles = def.Board.Tiles
	}
	if cfg.Rules.Script != "" && !filepath.IsAbs(cfg.Rules.Script) {
		cfg.Rules.Script = filepath.Join(filepath.Dir(path), cfg.Rules.Script)
	}
	return cfg, nil
}

// Validate reports every problem with the puzzle, joined into one error.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if err := c.Drag.Validate(); err != nil {
		add("drag: %v", err)
	}

	b := c.Board
	if b.Width <= 0 || b.Height <= 0 {
		add("board: size %dx%d must be positive", b.Width, b.Height)
	}
	if len(b.Zones) == 0 {
		add("board: no zones")
	}
	if len(b.Tiles) == 0 {
		add("board: no tiles")
	}

	zoneLabels := make(map[string]bool)
	for i, z := range b.Zones {
		name := z.Label
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			add("zone %s: missing label", name)
		} else if zoneLabels[name] {
			add("zone %q: duplicate label", name)
		}
		zoneLabels[name] = true

		if z.Capacity <= 0 {
			add("zone %q: capacity must be positive", name)
		}
		if z.Width < 3 || z.Height < 3 {
			add("zone %q: size %dx%d is smaller than 3x3", name, z.Width, z.Height)
		}
		if z.X < 0 || z.Y < 0 || z.X+z.Width > b.Width || z.Y+z.Height > b.Height {
			add("zone %q: outside the %dx%d board", name, b.Width, b.Height)
		}
	}

	tileLabels := make(map[string]bool)
	for i, t := range b.Tiles {
		name := t.Label
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			add("tile %s: missing label", name)
		} else if tileLabels[name] {
			add("tile %q: duplicate label", name)
		}
		tileLabels[name] = true

		if t.X < 0 || t.Y < 0 || t.X >= b.Width || t.Y >= b.Height {
			add("tile %q: outside the %dx%d board", name, b.Width, b.Height)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid puzzle:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
