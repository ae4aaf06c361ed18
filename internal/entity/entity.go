// Package entity provides the things placed on top of the grid: keys, stairs,
// decorations, enemies and the player.
package entity

import (
	"github.com/samdwyer/dungen/internal/gamedata"
	"github.com/samdwyer/dungen/internal/geom"
)

// Size is the edge length of every entity's box in pixels.
const Size = geom.CellSize

// Kind identifies an entity variant.
type Kind int

const (
	KindKey Kind = iota
	KindStairs
	KindDecoration
	KindEnemy
	KindPlayer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindStairs:
		return "stairs"
	case KindDecoration:
		return "decoration"
	case KindEnemy:
		return "enemy"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Entity is the capability set shared by every variant.
type Entity interface {
	Kind() Kind
	Bounds() geom.Rect // Pixel box
	Blocks() bool      // Moving entities cannot overlap it
	BlocksSight() bool // It is never drawn lit
	Visited() bool     // Seen at least once this level
	MarkVisited()
}

// Prop is the state shared by static entities anchored to a cell.
type Prop struct {
	Pos     geom.Point // Pixel position of the top-left corner
	visited bool
}

func newProp(cell geom.Point) Prop {
	return Prop{Pos: cell.ToPixel()}
}

// Bounds returns the prop's pixel box.
func (p *Prop) Bounds() geom.Rect {
	return geom.Rect{X: p.Pos.X, Y: p.Pos.Y, W: Size, H: Size}
}

// Cell returns the grid cell the prop sits on.
func (p *Prop) Cell() geom.Point {
	return p.Pos.ToCell()
}

// Visited returns true once the prop has been seen.
func (p *Prop) Visited() bool { return p.visited }

// MarkVisited records that the prop has been seen. It is never undone.
func (p *Prop) MarkVisited() { p.visited = true }

// Key must be collected before the stairs can be used.
type Key struct {
	Prop
}

// NewKey creates a key on the given cell.
func NewKey(cell geom.Point) *Key {
	return &Key{Prop: newProp(cell)}
}

func (*Key) Kind() Kind        { return KindKey }
func (*Key) Blocks() bool      { return false }
func (*Key) BlocksSight() bool { return false }

// Stairs is the level exit. Up or down is cosmetic.
type Stairs struct {
	Prop
	Up bool
}

// NewStairs creates a staircase on the given cell.
func NewStairs(cell geom.Point, up bool) *Stairs {
	return &Stairs{Prop: newProp(cell), Up: up}
}

func (*Stairs) Kind() Kind        { return KindStairs }
func (*Stairs) Blocks() bool      { return false }
func (*Stairs) BlocksSight() bool { return false }

// Decoration is scenery. It blocks movement but not light.
type Decoration struct {
	Prop
	Tile gamedata.TileDef
}

// NewDecoration creates a decoration on the given cell.
func NewDecoration(cell geom.Point, tile gamedata.TileDef) *Decoration {
	return &Decoration{Prop: newProp(cell), Tile: tile}
}

func (*Decoration) Kind() Kind        { return KindDecoration }
func (*Decoration) Blocks() bool      { return true }
func (*Decoration) BlocksSight() bool { return false }

var (
	_ Entity = (*Key)(nil)
	_ Entity = (*Stairs)(nil)
	_ Entity = (*Decoration)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Player)(nil)
)
