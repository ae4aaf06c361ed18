package ui

import "github.com/samdwyer/dungen/internal/geom"

// Camera maps grid cells onto a screen viewport. It follows a target and stops
// scrolling at the map edges.
type Camera struct {
	Offset       geom.Point // Top-left visible cell
	ViewW, ViewH int
	MapW, MapH   int
}

// NewCamera creates a camera for a map and viewport, both in cells.
func NewCamera(mapW, mapH, viewW, viewH int) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH, MapW: mapW, MapH: mapH}
}

// Follow centers the camera on target, clamped so it never shows past the
// map's edges. A map smaller than the viewport stays anchored at the origin.
func (c *Camera) Follow(target geom.Point) {
	c.Offset = geom.Point{
		X: clamp(target.X-c.ViewW/2, 0, max(c.MapW-c.ViewW, 0)),
		Y: clamp(target.Y-c.ViewH/2, 0, max(c.MapH-c.ViewH, 0)),
	}
}

// ToScreen converts a cell to a viewport position and reports whether it is visible.
func (c *Camera) ToScreen(cell geom.Point) (x, y int, ok bool) {
	x, y = cell.X-c.Offset.X, cell.Y-c.Offset.Y
	return x, y, x >= 0 && x < c.ViewW && y >= 0 && y < c.ViewH
}

// Visible returns the cell rectangle the viewport covers.
func (c *Camera) Visible() geom.Rect {
	return geom.Rect{X: c.Offset.X, Y: c.Offset.Y, W: c.ViewW, H: c.ViewH}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
