// Package geom provides the integer geometry shared by the grid and the entities.
//
// Two coordinate spaces are in use: cells (grid indices) and pixels (sub-cell
// positions used for smooth movement). CellSize converts between them.
package geom

import "math"

// CellSize is the edge length of one grid cell in pixels.
const CellSize = 32

// Point is a position in either cell or pixel units.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// ToPixel converts a cell coordinate to the pixel coordinate of its top-left corner.
func (p Point) ToPixel() Point {
	return Point{X: p.X * CellSize, Y: p.Y * CellSize}
}

// ToCell converts a pixel coordinate to the cell that encloses it.
func (p Point) ToCell() Point {
	return Point{X: floorDiv(p.X, CellSize), Y: floorDiv(p.Y, CellSize)}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner; the
// rectangle covers [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the integer center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects returns true if the two rectangles share any area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Expand grows the rectangle by n on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// CenterF returns the exact center of the rectangle.
func (r Rect) CenterF() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// HalfDiagonal is the radius of the circle circumscribing the rectangle.
func (r Rect) HalfDiagonal() float64 {
	return math.Hypot(float64(r.W), float64(r.H)) / 2
}

// CellRect returns the pixel rectangle covered by a cell.
func CellRect(cell Point) Rect {
	p := cell.ToPixel()
	return Rect{X: p.X, Y: p.Y, W: CellSize, H: CellSize}
}

// CirclesOverlap reports whether two circles centred on the rectangles' centers
// touch or overlap. Distances are Euclidean and compared squared.
func CirclesOverlap(a Rect, ra float64, b Rect, rb float64) bool {
	ax, ay := a.CenterF()
	bx, by := b.CenterF()
	dx, dy := ax-bx, ay-by
	reach := ra + rb
	return dx*dx+dy*dy <= reach*reach
}
