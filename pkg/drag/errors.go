package drag

import "errors"

// Host-contract violations. The controller aborts the call and leaves its
// state untouched when it returns one of these.
var (
	ErrNoSession       = errors.New("drag: no drag in progress")
	ErrSessionActive   = errors.New("drag: a drag is already in progress")
	ErrElementMismatch = errors.New("drag: element is not the one being dragged")
	ErrLocked          = errors.New("drag: element is locked")
	ErrFrozen          = errors.New("drag: board is frozen")
)
