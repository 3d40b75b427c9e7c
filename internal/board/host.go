package board

import (
	"github.com/google/uuid"

	"github.com/rileylov/dropzone/pkg/drag"
)

var _ drag.Host = (*Board)(nil)

func (b *Board) Position(id drag.ElementID) drag.Vec2 {
	if t, ok := b.tiles[id]; ok {
		return t.Pos
	}
	return drag.Vec2{}
}

func (b *Board) SetPosition(id drag.ElementID, p drag.Vec2) {
	if t, ok := b.tiles[id]; ok {
		t.Pos = p
	}
}

func (b *Board) Scale(id drag.ElementID) float64 {
	if t, ok := b.tiles[id]; ok {
		return t.Scale
	}
	return 1
}

func (b *Board) SetScale(id drag.ElementID, s float64) {
	if t, ok := b.tiles[id]; ok {
		t.Scale = s
	}
}

func (b *Board) SetHitTestable(id drag.ElementID, on bool) {
	if t, ok := b.tiles[id]; ok {
		t.HitTestable = on
	}
}

// Raise moves the tile to the top of the paint order. Its logical parent is
// left alone.
func (b *Board) Raise(id drag.ElementID) {
	b.SetPaintIndex(id, len(b.order)-1)
}

// Reparent places the tile in zone. Its position is kept.
func (b *Board) Reparent(id drag.ElementID, zone drag.ZoneID) {
	t, ok := b.tiles[id]
	if !ok {
		return
	}
	t.Parent = zone
}

// ResetLocalOffset snaps the tile onto the first row under its zone's pivot
// that no other child of the zone occupies.
func (b *Board) ResetLocalOffset(id drag.ElementID) {
	t, ok := b.tiles[id]
	if !ok || t.Parent == "" {
		return
	}
	z, ok := b.Zone(t.Parent)
	if !ok {
		return
	}
	used := make(map[int]bool)
	for _, c := range b.Children(t.Parent) {
		if c.ID != id {
			_, y := c.Cell()
			used[y] = true
		}
	}
	p := z.Pivot()
	row := int(p.Y)
	for used[row] {
		row++
	}
	t.Pos = drag.Vec2{X: p.X, Y: float64(row)}
}

// Duplicate copies the tile under a fresh ID and paints it on top.
func (b *Board) Duplicate(id drag.ElementID) drag.ElementID {
	src, ok := b.tiles[id]
	if !ok {
		return ""
	}
	dup := *src
	dup.ID = drag.ElementID(uuid.NewString())
	dup.Locked = false
	dup.HitTestable = true
	b.add(&dup)
	return dup.ID
}

func (b *Board) PaintIndex(id drag.ElementID) int {
	for i, o := range b.order {
		if o == id {
			return i
		}
	}
	return -1
}

// SetPaintIndex moves the tile to index, shifting the tiles after it.
func (b *Board) SetPaintIndex(id drag.ElementID, index int) {
	cur := b.PaintIndex(id)
	if cur < 0 {
		return
	}
	b.order = append(b.order[:cur], b.order[cur+1:]...)
	index = max(0, min(index, len(b.order)))
	b.order = append(b.order, "")
	copy(b.order[index+1:], b.order[index:])
	b.order[index] = id
}

func (b *Board) Destroy(id drag.ElementID) {
	if _, ok := b.tiles[id]; !ok {
		return
	}
	delete(b.tiles, id)
	if i := b.PaintIndex(id); i >= 0 {
		b.order = append(b.order[:i], b.order[i+1:]...)
	}
}

func (b *Board) Lock(id drag.ElementID) {
	if t, ok := b.tiles[id]; ok {
		t.Locked = true
	}
}

func (b *Board) Elements() []drag.ElementID {
	return append([]drag.ElementID(nil), b.order...)
}

// ToLocal converts a screen cell to board coordinates.
func (b *Board) ToLocal(pointer drag.Vec2) drag.Vec2 {
	return pointer.Sub(b.origin)
}
