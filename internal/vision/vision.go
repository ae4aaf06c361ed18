// Package vision maintains fog of war. Each tick it marks the cells and props
// near the player as seen and derives how everything should be shaded.
package vision

import (
	"github.com/samdwyer/dungen/internal/entity"
	"github.com/samdwyer/dungen/internal/geom"
	"github.com/samdwyer/dungen/internal/world"
)

// Shade is how a cell or entity is drawn.
type Shade int

const (
	Hidden Shade = iota // Never seen
	Dim                 // Remembered but not currently near
	Lit                 // Near the player this tick
)

// String returns the shade name.
func (s Shade) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Dim:
		return "dim"
	case Lit:
		return "lit"
	default:
		return "unknown"
	}
}

// Near reports whether a box is within a viewer's sight circle. The box's own
// circle is its half-diagonal, so a cell counts as soon as its corner is reached.
func Near(viewer geom.Rect, radius float64, box geom.Rect) bool {
	return geom.CirclesOverlap(viewer, radius, box, box.HalfDiagonal())
}

// Update refreshes fog memory around the player and the per-tick visibility of
// enemies. Cells and props only ever go from unseen to seen. Sight-blocking
// cells are never marked, so they stay hidden.
func Update(g *world.Grid, props []entity.Entity, enemies []*entity.Enemy, player *entity.Player) {
	viewer := player.Bounds()
	radius := player.Radius()

	// Only cells inside the circle's bounding box can be near.
	reach := int(radius)/geom.CellSize + 1
	area := geom.Rect{
		X: player.Cell().X - reach,
		Y: player.Cell().Y - reach,
		W: 2*reach + 2,
		H: 2*reach + 2,
	}
	g.ForEachIn(area, func(c *world.Cell) {
		if !c.BlocksSight && Near(viewer, radius, c.Rect()) {
			c.MarkSeen()
		}
	})

	for _, p := range props {
		if !p.BlocksSight() && Near(viewer, radius, p.Bounds()) {
			p.MarkVisited()
		}
	}

	for _, e := range enemies {
		e.Visible = InSight(e, player)
		if e.Visible {
			e.MarkVisited()
		}
	}
}

// InSight reports whether the enemy's and the player's sight circles overlap.
// Enemies are drawn and give chase only while this holds.
func InSight(e *entity.Enemy, player *entity.Player) bool {
	return geom.CirclesOverlap(e.Bounds(), e.Radius(), player.Bounds(), player.Radius())
}

// CellShade derives how a cell is drawn this tick.
func CellShade(c *world.Cell, player *entity.Player) Shade {
	switch {
	case c.BlocksSight:
		return Hidden
	case Near(player.Bounds(), player.Radius(), c.Rect()):
		return Lit
	case c.EverSeen:
		return Dim
	default:
		return Hidden
	}
}

// PropShade derives how a static entity is drawn this tick.
func PropShade(p entity.Entity, player *entity.Player) Shade {
	switch {
	case p.BlocksSight():
		return Hidden
	case Near(player.Bounds(), player.Radius(), p.Bounds()):
		return Lit
	case p.Visited():
		return Dim
	default:
		return Hidden
	}
}

// EnemyShade derives how an enemy is drawn. Enemies are never remembered.
func EnemyShade(e *entity.Enemy) Shade {
	if e.Visible {
		return Lit
	}
	return Hidden
}
