package drag

import (
	"fmt"
	"strings"
)

// StartBehavior selects what happens to an element when a drag begins.
type StartBehavior int

const (
	// Move drags the element itself.
	Move StartBehavior = iota
	// Clone leaves a duplicate behind on the element's first drag.
	Clone
)

var startNames = map[StartBehavior]string{
	Move:  "move",
	Clone: "clone",
}

func (b StartBehavior) String() string {
	if s, ok := startNames[b]; ok {
		return s
	}
	return fmt.Sprintf("StartBehavior(%d)", int(b))
}

func (b StartBehavior) MarshalText() ([]byte, error) {
	s, ok := startNames[b]
	if !ok {
		return nil, fmt.Errorf("unknown start behavior %d", int(b))
	}
	return []byte(s), nil
}

func (b *StartBehavior) UnmarshalText(text []byte) error {
	want := normalize(string(text))
	for k, v := range startNames {
		if v == want {
			*b = k
			return nil
		}
	}
	return fmt.Errorf("unknown start behavior %q", string(text))
}

// DropBehavior selects what happens to an element when a drag ends.
type DropBehavior int

const (
	// Stay leaves the element where it was released. On success it is also
	// logically reparented under the drop zone.
	Stay DropBehavior = iota
	// Return animates the element back to its anchor.
	Return
	// ReturnImmediately puts the element back on its anchor in one step.
	ReturnImmediately
	// Destroy removes the element from the scene.
	Destroy
)

var dropNames = map[DropBehavior]string{
	Stay:              "stay",
	Return:            "return",
	ReturnImmediately: "return_immediately",
	Destroy:           "destroy",
}

func (b DropBehavior) String() string {
	if s, ok := dropNames[b]; ok {
		return s
	}
	return fmt.Sprintf("DropBehavior(%d)", int(b))
}

func (b DropBehavior) MarshalText() ([]byte, error) {
	s, ok := dropNames[b]
	if !ok {
		return nil, fmt.Errorf("unknown drop behavior %d", int(b))
	}
	return []byte(s), nil
}

func (b *DropBehavior) UnmarshalText(text []byte) error {
	want := normalize(string(text))
	for k, v := range dropNames {
		if v == want {
			*b = k
			return nil
		}
	}
	return fmt.Errorf("unknown drop behavior %q", string(text))
}

// normalize accepts "ReturnImmediately", "return-immediately" and
// "return_immediately" alike.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "_")
	if strings.ToUpper(s) == s {
		return strings.ToLower(s)
	}
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '_' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

const (
	DefaultLiftScale       = 1.2
	DefaultRestoreFraction = 0.05
	DefaultSnapDistance    = 0.1
)

// Config holds the controller's behavior switches.
type Config struct {
	Start     StartBehavior `toml:"start"`
	OnSuccess DropBehavior  `toml:"on_success"`
	OnFailure DropBehavior  `toml:"on_failure"`

	// LockOnSuccess stops a successfully placed element (Stay only) from
	// being hit-tested again. Unless LockVisualOnly is also set, the element
	// is locked against further drags as well.
	LockOnSuccess  bool `toml:"lock_on_success"`
	LockVisualOnly bool `toml:"lock_visual_only"`
	// AlignOnSuccess snaps a placed element onto the zone's pivot.
	AlignOnSuccess bool `toml:"align_on_success"`

	LiftScale       float64 `toml:"lift_scale"`
	RestoreFraction float64 `toml:"restore_fraction"`
	SnapDistance    float64 `toml:"snap_distance"`
}

// DefaultConfig moves elements, keeps successful drops in place and animates
// failed drops back to their anchor.
func DefaultConfig() Config {
	return Config{
		Start:           Move,
		OnSuccess:       Stay,
		OnFailure:       Return,
		LiftScale:       DefaultLiftScale,
		RestoreFraction: DefaultRestoreFraction,
		SnapDistance:    DefaultSnapDistance,
	}
}

// Validate reports configuration values the controller cannot work with.
func (c Config) Validate() error {
	if _, ok := startNames[c.Start]; !ok {
		return fmt.Errorf("start: %v", c.Start)
	}
	if _, ok := dropNames[c.OnSuccess]; !ok {
		return fmt.Errorf("on_success: %v", c.OnSuccess)
	}
	if _, ok := dropNames[c.OnFailure]; !ok {
		return fmt.Errorf("on_failure: %v", c.OnFailure)
	}
	if c.LiftScale <= 0 {
		return fmt.Errorf("lift_scale must be positive, got %g", c.LiftScale)
	}
	if c.RestoreFraction <= 0 || c.RestoreFraction > 1 {
		return fmt.Errorf("restore_fraction must be in (0, 1], got %g", c.RestoreFraction)
	}
	if c.SnapDistance < 0 {
		return fmt.Errorf("snap_distance must not be negative, got %g", c.SnapDistance)
	}
	return nil
}

// withDefaults fills the zero numeric fields of an unset Config with their
// defaults. A zero SnapDistance is valid and kept.
func (c Config) withDefaults() Config {
	if c.LiftScale == 0 {
		c.LiftScale = DefaultLiftScale
	}
	if c.RestoreFraction == 0 {
		c.RestoreFraction = DefaultRestoreFraction
	}
	return c
}

// behavior returns the drop behavior for the given outcome.
func (c Config) behavior(success bool) DropBehavior {
	if success {
		return c.OnSuccess
	}
	return c.OnFailure
}
