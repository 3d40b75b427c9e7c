// Package script runs the puzzle's drop and game rules from a Lua file.
//
// A rules script defines two globals:
//
//	function evaluate_drop(tile, zone) -> boolean
//	function evaluate_game(board) -> boolean
//
// tile has the fields id, label, kind, x, y and zone (the label of the zone
// it is placed in, or nil). zone has id, label, accepts, capacity and
// children, a list of tile tables. board has zones and tiles lists.
//
// Scripts run in a sandbox with only the base, table, string and math
// libraries. print writes to the rules logger instead of stdout. A script error counts as a rejected drop or an unfinished game.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/rileylov/dropzone/internal/board"
	"github.com/rileylov/dropzone/pkg/drag"
)

const (
	dropHook = "evaluate_drop"
	gameHook = "evaluate_game"

	// DefaultTimeout bounds a single hook call.
	DefaultTimeout = 250 * time.Millisecond
)

// ErrMissingHook is returned when a script does not define a hook function.
var ErrMissingHook = errors.New("script: missing hook")

// Rules is a drag.Evaluator backed by a Lua state. The state is not
// goroutine-safe; call the hooks from the goroutine driving the controller.
type Rules struct {
	L       *lua.LState
	board   *board.Board
	logger  *log.Logger
	timeout time.Duration
}

var _ drag.Evaluator = (*Rules)(nil)

// Option configures Rules.
type Option func(*Rules)

func WithLogger(l *log.Logger) Option {
	return func(r *Rules) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(r *Rules) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Load runs the script at path against b.
func Load(path string, b *board.Board, opts ...Option) (*Rules, error) {
	return load(b, opts, func(L *lua.LState) error { return L.DoFile(path) })
}

// LoadString runs src as the rules script.
func LoadString(src string, b *board.Board, opts ...Option) (*Rules, error) {
	return load(b, opts, func(L *lua.LState) error { return L.DoString(src) })
}

func load(b *board.Board, opts []Option, run func(*lua.LState) error) (*Rules, error) {
	r := &Rules{
		board:   b,
		logger:  log.New(io.Discard),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.L = newSandbox(r.logger)
	if err := r.protect(run); err != nil {
		r.L.Close()
		return nil, fmt.Errorf("script: %w", err)
	}
	for _, hook := range []string{dropHook, gameHook} {
		if r.L.GetGlobal(hook).Type() != lua.LTFunction {
			r.L.Close()
			return nil, fmt.Errorf("%w: %s", ErrMissingHook, hook)
		}
	}
	return r, nil
}

// newSandbox opens only the libraries a rules script needs. print goes to
// logger, since stdout belongs to the terminal UI.
func newSandbox(logger *log.Logger) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		logger.Info("script print", "msg", strings.Join(parts, "\t"))
		return 0
	}))
	return L
}

// protect runs fn with a deadline and turns Lua panics into errors.
func (r *Rules) protect(fn func(*lua.LState) error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return fn(r.L)
}

// call invokes a hook and reads its single boolean result.
func (r *Rules) call(hook string, args ...lua.LValue) (bool, error) {
	var result bool
	err := r.protect(func(L *lua.LState) error {
		if err := L.CallByParam(lua.P{
			Fn:      L.GetGlobal(hook),
			NRet:    1,
			Protect: true,
		}, args...); err != nil {
			return err
		}
		ret := L.Get(-1)
		L.Pop(1)
		result = lua.LVAsBool(ret)
		return nil
	})
	return result, err
}

func (r *Rules) EvaluateDrop(element drag.ElementID, zone drag.ZoneID) bool {
	t, ok := r.board.Tile(element)
	if !ok {
		return false
	}
	z, ok := r.board.Zone(zone)
	if !ok {
		return false
	}
	ok, err := r.call(dropHook, r.tileTable(t), r.zoneTable(z))
	if err != nil {
		r.logger.Error("drop hook failed", "tile", t.Label, "zone", z.Label, "err", err)
		return false
	}
	return ok
}

func (r *Rules) EvaluateGame() bool {
	ok, err := r.call(gameHook, r.boardTable())
	if err != nil {
		r.logger.Error("game hook failed", "err", err)
		return false
	}
	return ok
}

func (r *Rules) Close() {
	r.L.Close()
}

func (r *Rules) tileTable(t board.Tile) *lua.LTable {
	tbl := r.L.NewTable()
	tbl.RawSetString("id", lua.LString(t.ID))
	tbl.RawSetString("label", lua.LString(t.Label))
	tbl.RawSetString("kind", lua.LString(t.Kind))
	x, y := t.Cell()
	tbl.RawSetString("x", lua.LNumber(x))
	tbl.RawSetString("y", lua.LNumber(y))
	if z, ok := r.board.Zone(t.Parent); ok {
		tbl.RawSetString("zone", lua.LString(z.Label))
	}
	return tbl
}

func (r *Rules) zoneTable(z board.Zone) *lua.LTable {
	tbl := r.L.NewTable()
	tbl.RawSetString("id", lua.LString(z.ID))
	tbl.RawSetString("label", lua.LString(z.Label))
	tbl.RawSetString("accepts", lua.LString(z.Accepts))
	tbl.RawSetString("capacity", lua.LNumber(z.Capacity))
	children := r.L.NewTable()
	for i, t := range r.board.Children(z.ID) {
		children.RawSetInt(i+1, r.tileTable(t))
	}
	tbl.RawSetString("children", children)
	return tbl
}

func (r *Rules) boardTable() *lua.LTable {
	tbl := r.L.NewTable()
	zones := r.L.NewTable()
	for i, z := range r.board.Zones() {
		zones.RawSetInt(i+1, r.zoneTable(z))
	}
	tiles := r.L.NewTable()
	for i, t := range r.board.Tiles() {
		tiles.RawSetInt(i+1, r.tileTable(t))
	}
	tbl.RawSetString("zones", zones)
	tbl.RawSetString("tiles", tiles)
	return tbl
}
