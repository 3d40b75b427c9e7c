package drag

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// session is the state of the drag between BeginDrag and EndDrag.
type session struct {
	element ElementID
	zone    ZoneID
	dropped bool
	success bool
	scale   float64
}

// Outcome describes how a finished drag cycle ended.
type Outcome struct {
	Element  ElementID
	Zone     ZoneID
	Dropped  bool
	Success  bool
	Behavior DropBehavior
	// Finished is set when EvaluateGame declared the board complete.
	Finished bool
}

// Controller runs the drag/drop state machine for a single pointer.
//
// Controller is not safe for concurrent use. Hosts deliver BeginDrag, Drag,
// Drop, EndDrag and Tick from one goroutine.
type Controller struct {
	host   Host
	eval   Evaluator
	cfg    Config
	logger *log.Logger

	anchors  *AnchorTable
	restores map[ElementID]*restore
	locked   map[ElementID]bool
	session  *session
	last     *Outcome
	frozen   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithLogger sets the logger used for transition tracing. A nil logger is
// ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller driving host and asking eval for drop and game
// decisions. Zero LiftScale and RestoreFraction take their defaults; a config
// that is still invalid is replaced by DefaultConfig.
func New(host Host, eval Evaluator, opts ...Option) *Controller {
	c := &Controller{
		host:     host,
		eval:     eval,
		cfg:      DefaultConfig(),
		logger:   log.New(io.Discard),
		anchors:  NewAnchorTable(),
		restores: make(map[ElementID]*restore),
		locked:   make(map[ElementID]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cfg = c.cfg.withDefaults()
	if err := c.cfg.Validate(); err != nil {
		c.logger.Warn("invalid drag config, using defaults", "err", err)
		c.cfg = DefaultConfig()
	}
	return c
}

// BeginDrag lifts id off the board and opens a session for it.
func (c *Controller) BeginDrag(id ElementID) error {
	switch {
	case c.frozen:
		return fmt.Errorf("begin %s: %w", id, ErrFrozen)
	case c.session != nil:
		return fmt.Errorf("begin %s while dragging %s: %w", id, c.session.element, ErrSessionActive)
	case c.locked[id]:
		return fmt.Errorf("begin %s: %w", id, ErrLocked)
	}

	firstDrag := !c.anchors.Has(id)
	if c.cfg.Start == Clone && firstDrag {
		dup := c.host.Duplicate(id)
		c.host.SetPaintIndex(dup, c.host.PaintIndex(id))
		c.logger.Debug("cloned element", "element", id, "clone", dup)
	}

	delete(c.restores, id)
	c.host.Raise(id)

	scale := c.host.Scale(id)
	c.host.SetScale(id, scale*c.cfg.LiftScale)

	if firstDrag {
		c.anchors.Record(id, c.host.Position(id))
	}

	c.session = &session{element: id, scale: scale}
	c.logger.Debug("drag began", "element", id, "first", firstDrag)
	return nil
}

// Drag moves the active element under the pointer.
func (c *Controller) Drag(id ElementID, pointer Vec2) error {
	if c.session == nil {
		return fmt.Errorf("drag %s: %w", id, ErrNoSession)
	}
	if c.session.element != id {
		return fmt.Errorf("drag %s, active %s: %w", id, c.session.element, ErrElementMismatch)
	}
	c.host.SetPosition(id, c.host.ToLocal(pointer))
	c.host.SetHitTestable(id, false)
	return nil
}

// Drop records zone as the release target and asks the evaluator whether the
// placement is valid. Hosts skip Drop when the release hit no zone.
func (c *Controller) Drop(zone ZoneID) error {
	if c.session == nil {
		return fmt.Errorf("drop on %s: %w", zone, ErrNoSession)
	}
	s := c.session
	s.zone = zone
	s.dropped = true
	s.success = c.eval.EvaluateDrop(s.element, zone)
	c.logger.Debug("drop evaluated", "element", s.element, "zone", zone, "success", s.success)
	return nil
}

// EndDrag puts the active element down and applies the configured behavior
// for the drop outcome.
func (c *Controller) EndDrag() error {
	if c.session == nil {
		return fmt.Errorf("end: %w", ErrNoSession)
	}
	s := c.session
	id := s.element

	c.host.SetHitTestable(id, true)
	c.host.SetScale(id, s.scale)

	behavior := c.cfg.behavior(s.success)
	c.logger.Debug("drag ended",
		"element", id, "zone", s.zone, "dropped", s.dropped,
		"success", s.success, "behavior", behavior)

	switch behavior {
	case Stay:
		if s.success {
			c.settle(id, s.zone)
		}
	case Return:
		c.startRestore(id)
	case ReturnImmediately:
		if anchor, ok := c.anchors.Lookup(id); ok {
			c.host.SetPosition(id, anchor)
		}
	case Destroy:
		c.host.Destroy(id)
		c.anchors.Forget(id)
		delete(c.restores, id)
		delete(c.locked, id)
	}

	out := &Outcome{
		Element:  id,
		Zone:     s.zone,
		Dropped:  s.dropped,
		Success:  s.success,
		Behavior: behavior,
	}
	if s.success && c.eval.EvaluateGame() {
		c.freeze()
		out.Finished = true
	}

	c.last = out
	c.session = nil
	return nil
}

// settle parents a successfully dropped element under its zone.
func (c *Controller) settle(id ElementID, zone ZoneID) {
	c.host.Reparent(id, zone)
	if c.cfg.LockOnSuccess {
		c.host.SetHitTestable(id, false)
		if !c.cfg.LockVisualOnly {
			c.host.Lock(id)
			c.locked[id] = true
		}
	}
	if c.cfg.AlignOnSuccess {
		c.host.ResetLocalOffset(id)
	}
}

func (c *Controller) startRestore(id ElementID) {
	anchor, ok := c.anchors.Lookup(id)
	if !ok {
		return
	}
	c.restores[id] = newRestore(c.host.Position(id), anchor, c.cfg.RestoreFraction, c.cfg.SnapDistance)
}

// freeze disables hit-testing across the board once the game is won.
func (c *Controller) freeze() {
	for _, id := range c.host.Elements() {
		c.host.SetHitTestable(id, false)
	}
	c.frozen = true
	c.logger.Info("game complete, board frozen")
}

// Tick advances every in-flight restore by one step. It reports whether any
// restore is still running.
func (c *Controller) Tick() bool {
	for id, r := range c.restores {
		p, done := r.advance(c.host.Position(id))
		c.host.SetPosition(id, p)
		if done {
			delete(c.restores, id)
			c.logger.Debug("restore finished", "element", id, "steps", r.steps)
		}
	}
	return len(c.restores) > 0
}

// Anchor returns the position id had before its first drag.
func (c *Controller) Anchor(id ElementID) (Vec2, bool) {
	return c.anchors.Lookup(id)
}

// Active returns the element being dragged, if any.
func (c *Controller) Active() (ElementID, bool) {
	if c.session == nil {
		return "", false
	}
	return c.session.element, true
}

// LastOutcome returns how the most recent drag cycle ended.
func (c *Controller) LastOutcome() (Outcome, bool) {
	if c.last == nil {
		return Outcome{}, false
	}
	return *c.last, true
}

// Animating reports whether id is being restored to its anchor.
func (c *Controller) Animating(id ElementID) bool {
	_, ok := c.restores[id]
	return ok
}

// Restoring reports whether any restore is in flight.
func (c *Controller) Restoring() bool { return len(c.restores) > 0 }

// Locked reports whether id was locked after a successful drop.
func (c *Controller) Locked(id ElementID) bool { return c.locked[id] }

// Frozen reports whether EvaluateGame has declared the board finished.
func (c *Controller) Frozen() bool { return c.frozen }

// Config returns the configuration in effect, after defaults were applied.
func (c *Controller) Config() Config { return c.cfg }
