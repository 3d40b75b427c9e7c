package drag

// ElementID identifies a draggable element. Hosts must keep it stable for the
// element's lifetime.
type ElementID string

// ZoneID identifies a drop target.
type ZoneID string

// Host is the scene graph the controller drives. The controller never touches
// rendering or input directly; every visual effect goes through these calls.
//
// Positions are expressed in the controller root's local space.
type Host interface {
	Position(id ElementID) Vec2
	SetPosition(id ElementID, p Vec2)
	Scale(id ElementID) float64
	SetScale(id ElementID, s float64)

	// SetHitTestable toggles whether the element can be found under the
	// pointer. A dragged element is not hit-testable so releases land on
	// whatever lies beneath it.
	SetHitTestable(id ElementID, on bool)

	// Raise visually reparents the element onto the controller root so it
	// draws above its siblings. Logical parentage is unchanged.
	Raise(id ElementID)
	// Reparent logically moves the element under zone.
	Reparent(id ElementID, zone ZoneID)
	// ResetLocalOffset snaps the element onto its logical parent's pivot.
	ResetLocalOffset(id ElementID)

	// Duplicate creates a copy of the element and returns its ID.
	Duplicate(id ElementID) ElementID
	PaintIndex(id ElementID) int
	SetPaintIndex(id ElementID, index int)
	Destroy(id ElementID)
	// Lock permanently stops the element from receiving drag events.
	Lock(id ElementID)

	// Elements lists every element under the controller.
	Elements() []ElementID
	// ToLocal converts a raw pointer coordinate to the root's local space.
	ToLocal(pointer Vec2) Vec2
}

// Evaluator supplies the application's placement and completion rules.
type Evaluator interface {
	// EvaluateDrop reports whether dropping element on zone is a valid
	// placement. It runs before EndDrag applies any behavior.
	EvaluateDrop(element ElementID, zone ZoneID) bool
	// EvaluateGame reports whether the board reached its terminal state. It
	// runs once per successful drop, after the drop behavior was applied.
	EvaluateGame() bool
}

// EvaluatorFuncs adapts two plain functions to an Evaluator. A nil Drop
// rejects every drop; a nil Game never finishes.
type EvaluatorFuncs struct {
	Drop func(element ElementID, zone ZoneID) bool
	Game func() bool
}

func (f EvaluatorFuncs) EvaluateDrop(element ElementID, zone ZoneID) bool {
	if f.Drop == nil {
		return false
	}
	return f.Drop(element, zone)
}

func (f EvaluatorFuncs) EvaluateGame() bool {
	if f.Game == nil {
		return false
	}
	return f.Game()
}
