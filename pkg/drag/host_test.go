package drag

import "fmt"

// fakeElement is the state fakeHost keeps per element.
type fakeElement struct {
	pos         Vec2
	scale       float64
	hitTestable bool
	raised      bool
	parent      ZoneID
	locked      bool
}

// fakeHost is an in-memory Host that records the calls the controller makes.
type fakeHost struct {
	elements   map[ElementID]*fakeElement
	order      []ElementID
	origin     Vec2
	zonePivots map[ZoneID]Vec2

	duplicates int
	destroyed  []ElementID
	next       int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		elements:   make(map[ElementID]*fakeElement),
		zonePivots: make(map[ZoneID]Vec2),
	}
}

func (h *fakeHost) add(id ElementID, p Vec2) {
	h.elements[id] = &fakeElement{pos: p, scale: 1, hitTestable: true}
	h.order = append(h.order, id)
}

func (h *fakeHost) el(id ElementID) *fakeElement {
	e, ok := h.elements[id]
	if !ok {
		panic(fmt.Sprintf("unknown element %s", id))
	}
	return e
}

func (h *fakeHost) Position(id ElementID) Vec2           { return h.el(id).pos }
func (h *fakeHost) SetPosition(id ElementID, p Vec2)     { h.el(id).pos = p }
func (h *fakeHost) Scale(id ElementID) float64           { return h.el(id).scale }
func (h *fakeHost) SetScale(id ElementID, s float64)     { h.el(id).scale = s }
func (h *fakeHost) SetHitTestable(id ElementID, on bool) { h.el(id).hitTestable = on }
func (h *fakeHost) Raise(id ElementID)                   { h.el(id).raised = true }
func (h *fakeHost) Lock(id ElementID)                    { h.el(id).locked = true }
func (h *fakeHost) ToLocal(p Vec2) Vec2                  { return p.Sub(h.origin) }

func (h *fakeHost) Reparent(id ElementID, zone ZoneID) {
	e := h.el(id)
	e.parent = zone
	e.raised = false
}

func (h *fakeHost) ResetLocalOffset(id ElementID) {
	e := h.el(id)
	e.pos = h.zonePivots[e.parent]
}

func (h *fakeHost) Duplicate(id ElementID) ElementID {
	h.duplicates++
	h.next++
	dup := ElementID(fmt.Sprintf("%s-copy%d", id, h.next))
	src := h.el(id)
	h.elements[dup] = &fakeElement{pos: src.pos, scale: src.scale, hitTestable: true}
	h.order = append(h.order, dup)
	return dup
}

func (h *fakeHost) PaintIndex(id ElementID) int {
	for i, o := range h.order {
		if o == id {
			return i
		}
	}
	return -1
}

func (h *fakeHost) SetPaintIndex(id ElementID, index int) {
	cur := h.PaintIndex(id)
	if cur < 0 {
		return
	}
	h.order = append(h.order[:cur], h.order[cur+1:]...)
	if index > len(h.order) {
		index = len(h.order)
	}
	h.order = append(h.order[:index], append([]ElementID{id}, h.order[index:]...)...)
}

func (h *fakeHost) Destroy(id ElementID) {
	delete(h.elements, id)
	if i := h.PaintIndex(id); i >= 0 {
		h.order = append(h.order[:i], h.order[i+1:]...)
	}
	h.destroyed = append(h.destroyed, id)
}

func (h *fakeHost) Elements() []ElementID {
	return append([]ElementID(nil), h.order...)
}

// countingEvaluator returns fixed answers and counts hook calls.
type countingEvaluator struct {
	accept    bool
	win       bool
	dropCalls int
	gameCalls int
}

func (e *countingEvaluator) EvaluateDrop(ElementID, ZoneID) bool {
	e.dropCalls++
	return e.accept
}

func (e *countingEvaluator) EvaluateGame() bool {
	e.gameCalls++
	return e.win
}
