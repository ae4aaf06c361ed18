package world

import (
	"math/rand"

	"github.com/samdwyer/dungen/internal/geom"
)

// Room is a rectangular area carved during generation. Rooms only live for the
// duration of a build; nothing keeps them once a level is populated.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Bounds returns the room as a rectangle in cell units.
func (r Room) Bounds() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// Center returns the center cell of the room.
func (r Room) Center() geom.Point {
	return r.Bounds().Center()
}

// Contains returns true if the given cell is inside the room.
func (r Room) Contains(p geom.Point) bool {
	return r.Bounds().Contains(p)
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.Bounds().Intersects(other.Bounds())
}

// CollidesWithMargin returns true if the room, grown by one cell on every side,
// overlaps other. Accepted rooms are therefore always separated by a wall.
func (r Room) CollidesWithMargin(other Room) bool {
	return r.Bounds().Expand(1).Intersects(other.Bounds())
}

// RandomInteriorPoint picks a cell uniformly inside the room, keeping one cell
// away from its walls: x in [X+1, X+Width-2], y in [Y+1, Y+Height-2].
// Rooms are at least minRoomDim wide, so the range is never empty.
func RandomInteriorPoint(r Room, rng *rand.Rand) geom.Point {
	x := r.X + 1 + rng.Intn(r.Width-2)
	y := r.Y + 1 + rng.Intn(r.Height-2)
	return geom.Point{X: x, Y: y}
}
