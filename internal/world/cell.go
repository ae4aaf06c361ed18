// Package world provides the dungeon grid and its generator.
package world

import "github.com/samdwyer/dungen/internal/geom"

// Kind is the type of a grid cell.
type Kind int

const (
	// KindWall is an impassable wall.
	KindWall Kind = iota
	// KindFloor is walkable floor.
	KindFloor
	// KindStairsUp is a walkable staircase leading up.
	KindStairsUp
	// KindStairsDown is a walkable staircase leading down.
	KindStairsDown
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	case KindStairsUp:
		return "stairs_up"
	case KindStairsDown:
		return "stairs_down"
	default:
		return "unknown"
	}
}

// Rune returns the kind's map character.
func (k Kind) Rune() rune {
	switch k {
	case KindWall:
		return '#'
	case KindFloor:
		return '.'
	case KindStairsUp:
		return '<'
	case KindStairsDown:
		return '>'
	default:
		return '?'
	}
}

// IsStairs returns true for either staircase kind.
func (k Kind) IsStairs() bool {
	return k == KindStairsUp || k == KindStairsDown
}

// defaults returns the blocked and sight-blocking flags a fresh cell of this kind has.
// Stairs are walkable and never block sight; walls block both.
func (k Kind) defaults() (blocked, blocksSight bool) {
	if k == KindWall {
		return true, true
	}
	return false, false
}

// Cell is one unit of the dungeon floor plan.
type Cell struct {
	Pos         geom.Point // Cell coordinates within the grid
	Kind        Kind
	Blocked     bool // Entities cannot occupy the cell
	BlocksSight bool // Nothing beyond the cell is lit through it
	EverSeen    bool // Fog memory; only ever goes false -> true
}

// SetKind changes the cell kind and resets Blocked and BlocksSight to the kind's defaults.
// EverSeen is preserved.
func (c *Cell) SetKind(k Kind) {
	c.Kind = k
	c.Blocked, c.BlocksSight = k.defaults()
}

// MarkSeen sets the fog memory flag. It never clears it.
func (c *Cell) MarkSeen() {
	c.EverSeen = true
}

// Rect returns the pixel rectangle the cell covers.
func (c *Cell) Rect() geom.Rect {
	return geom.CellRect(c.Pos)
}
