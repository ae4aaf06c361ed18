package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungen/internal/geom"
)

// Grid is the rectangular array of cells making up one level. It owns its cells.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid of the given size with every cell set to wall.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("world: negative grid size %dx%d", width, height))
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[y*width+x]
			c.Pos = geom.Point{X: x, Y: y}
			c.SetKind(KindWall)
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds returns true if the cell coordinate lies inside the grid.
func (g *Grid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. Callers must bounds-check first; an out-of-range
// index is a programming error and panics.
func (g *Grid) At(p geom.Point) *Cell {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("world: cell %v outside %dx%d grid", p, g.width, g.height))
	}
	return &g.cells[p.Y*g.width+p.X]
}

// Lookup returns the cell at p, or false if p is outside the grid.
func (g *Grid) Lookup(p geom.Point) (*Cell, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.cells[p.Y*g.width+p.X], true
}

// IsBlocked returns true if the cell cannot be entered. Cells outside the grid are blocked.
func (g *Grid) IsBlocked(p geom.Point) bool {
	c, ok := g.Lookup(p)
	return !ok || c.Blocked
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid) ForEach(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// ForEachIn calls fn for every in-bounds cell inside r (cell units).
func (g *Grid) ForEachIn(r geom.Rect, fn func(c *Cell)) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), g.width), min(r.Bottom(), g.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fn(&g.cells[y*g.width+x])
		}
	}
}

// carve turns an in-bounds cell into floor.
func (g *Grid) carve(p geom.Point) {
	if c, ok := g.Lookup(p); ok {
		c.SetKind(KindFloor)
	}
}

// clearSight lets light reach an in-bounds cell without making it walkable.
func (g *Grid) clearSight(p geom.Point) {
	if c, ok := g.Lookup(p); ok {
		c.BlocksSight = false
	}
}

// Reachable flood-fills from start across 4-connected unblocked cells.
// An empty set is returned if start itself is blocked.
func (g *Grid) Reachable(start geom.Point) *mapset.Set[geom.Point] {
	visited := mapset.New[geom.Point]()
	if g.IsBlocked(start) {
		return &visited
	}

	queue := []geom.Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range []geom.Point{
			current.Add(0, -1), current.Add(1, 0), current.Add(0, 1), current.Add(-1, 0),
		} {
			if visited.Has(next) || g.IsBlocked(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return &visited
}

// CountKind returns the number of cells of the given kind.
func (g *Grid) CountKind(k Kind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind == k {
			n++
		}
	}
	return n
}
