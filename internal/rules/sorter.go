// Package rules holds the built-in placement and completion rules for the
// dropzone puzzle.
package rules

import (
	"github.com/rileylov/dropzone/internal/board"
	"github.com/rileylov/dropzone/pkg/drag"
)

// Sorter accepts a drop when the zone takes the tile's kind and still has
// room. The puzzle is solved once every zone is filled to capacity with
// tiles it takes.
type Sorter struct {
	Board *board.Board
}

var _ drag.Evaluator = Sorter{}

func (s Sorter) EvaluateDrop(element drag.ElementID, zone drag.ZoneID) bool {
	t, ok := s.Board.Tile(element)
	if !ok {
		return false
	}
	z, ok := s.Board.Zone(zone)
	if !ok || !z.Takes(t.Kind) {
		return false
	}
	if t.Parent == zone {
		return true
	}
	return len(s.Board.Children(zone)) < z.Capacity
}

func (s Sorter) EvaluateGame() bool {
	zones := s.Board.Zones()
	if len(zones) == 0 {
		return false
	}
	for _, z := range zones {
		children := s.Board.Children(z.ID)
		if len(children) < z.Capacity {
			return false
		}
		for _, t := range children {
			if !z.Takes(t.Kind) {
				return false
			}
		}
	}
	return true
}
