package drag

// AnchorTable remembers where each element sat before it was first dragged.
// An entry is written once and never overwritten.
type AnchorTable struct {
	anchors map[ElementID]Vec2
}

func NewAnchorTable() *AnchorTable {
	return &AnchorTable{anchors: make(map[ElementID]Vec2)}
}

// Record stores p as the anchor of id unless one exists. It reports whether
// a new entry was written.
func (t *AnchorTable) Record(id ElementID, p Vec2) bool {
	if _, ok := t.anchors[id]; ok {
		return false
	}
	t.anchors[id] = p
	return true
}

func (t *AnchorTable) Lookup(id ElementID) (Vec2, bool) {
	p, ok := t.anchors[id]
	return p, ok
}

func (t *AnchorTable) Has(id ElementID) bool {
	_, ok := t.anchors[id]
	return ok
}

// Forget drops the anchor of a destroyed element.
func (t *AnchorTable) Forget(id ElementID) {
	delete(t.anchors, id)
}
