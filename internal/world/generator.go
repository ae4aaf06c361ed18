package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungen/internal/geom"
	"github.com/samdwyer/dungen/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 50
	DefaultHeight = 50

	minRoomDim        = 4  // Smallest room edge
	minMaxRoomDim     = 5  // Lower clamp of the largest room edge
	maxMaxRoomDim     = 14 // Upper clamp of the largest room edge
	cellsPerAttempt   = 64 // One placement attempt per this many cells
	decorationChances = 3  // One in this many rooms gets a decoration
)

// Layout is the result of generating a grid: the accepted rooms in placement
// order, where the player starts, and where decorations go.
type Layout struct {
	Rooms       []Room
	Start       geom.Point   // Center of the first room (cell units)
	HasStart    bool         // False when no room could be placed
	Decorations []geom.Point // Interior cells chosen for decorations
	Attempts    int          // Placement attempts made
}

// AttemptBudget returns how many room placements are tried for a grid size.
func AttemptBudget(width, height int) int {
	return width * height / cellsPerAttempt
}

// MaxRoomDim returns the largest room edge for a grid size:
// clamp(max(5, budget/4), 5, 14).
func MaxRoomDim(width, height int) int {
	return min(max(minMaxRoomDim, AttemptBudget(width, height)/4), maxMaxRoomDim)
}

// Generate carves rooms and corridors into g, which must be all walls.
//
// Each attempt samples a room and rejects it if, grown by a one-cell margin, it
// overlaps an accepted room. The attempt count is fixed, so a small grid may
// end up with few or no rooms. Each accepted room after the first is joined to
// the previous one by an L-shaped corridor.
func Generate(ctx context.Context, g *Grid, rng *rand.Rand) Layout {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	attempts := AttemptBudget(g.Width(), g.Height())
	maxDim := MaxRoomDim(g.Width(), g.Height())
	layout := Layout{Attempts: attempts}

	for n := 0; n < attempts; n++ {
		room, ok := sampleRoom(g, rng, maxDim)
		if !ok {
			continue
		}
		if collidesWithAny(room, layout.Rooms) {
			continue
		}

		g.carveRoom(room)

		if len(layout.Rooms) == 0 {
			layout.Start = room.Center()
			layout.HasStart = true
		} else {
			g.carveCorridor(layout.Rooms[len(layout.Rooms)-1].Center(), room.Center(), rng)
		}
		layout.Rooms = append(layout.Rooms, room)

		if rng.Intn(decorationChances) == 1 {
			// The start cell stays clear or the player spawns inside a prop.
			if spot := RandomInteriorPoint(room, rng); spot != layout.Start {
				layout.Decorations = append(layout.Decorations, spot)
			}
		}
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", g.Width()),
		attribute.Int("dungeon.height", g.Height()),
		attribute.Int("dungeon.attempts", attempts),
		attribute.Int("dungeon.room_count", len(layout.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return layout
}

// sampleRoom draws a room size and a position that keeps the room and its wall
// margin off the grid's outer border. It fails when the grid is too small for
// the drawn size.
func sampleRoom(g *Grid, rng *rand.Rand, maxDim int) (Room, bool) {
	w := minRoomDim + rng.Intn(maxDim-minRoomDim+1)
	h := minRoomDim + rng.Intn(maxDim-minRoomDim+1)

	// x in [1, width-w-2] leaves column x+w for the room's wall and the last column as border.
	spanX := g.Width() - w - 2
	spanY := g.Height() - h - 2
	if spanX < 1 || spanY < 1 {
		return Room{}, false
	}

	return Room{
		X:      1 + rng.Intn(spanX),
		Y:      1 + rng.Intn(spanY),
		Width:  w,
		Height: h,
	}, true
}

func collidesWithAny(room Room, accepted []Room) bool {
	for _, other := range accepted {
		if room.CollidesWithMargin(other) {
			return true
		}
	}
	return false
}

// carveRoom sets all cells within the room to floor and lets light reach the
// walls directly bordering it.
func (g *Grid) carveRoom(room Room) {
	x1, y1 := room.X, room.Y
	x2, y2 := room.X+room.Width, room.Y+room.Height

	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			g.carve(geom.Point{X: x, Y: y})
		}
	}
	for x := x1; x < x2; x++ {
		g.clearSight(geom.Point{X: x, Y: y1 - 1})
		g.clearSight(geom.Point{X: x, Y: y2})
	}
	for y := y1; y < y2; y++ {
		g.clearSight(geom.Point{X: x1 - 1, Y: y})
		g.clearSight(geom.Point{X: x2, Y: y})
	}
}

// carveCorridor joins two room centers with one horizontal and one vertical
// segment, choosing which comes first with a coin flip.
func (g *Grid) carveCorridor(prev, curr geom.Point, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		g.carveHorizontalTunnel(prev.X, curr.X, prev.Y)
		g.carveVerticalTunnel(prev.Y, curr.Y, curr.X)
	} else {
		g.carveVerticalTunnel(prev.Y, curr.Y, prev.X)
		g.carveHorizontalTunnel(prev.X, curr.X, curr.Y)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel and lights its flanking walls.
func (g *Grid) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carve(geom.Point{X: x, Y: y})
		g.clearSight(geom.Point{X: x, Y: y - 1})
		g.clearSight(geom.Point{X: x, Y: y + 1})
	}
}

// carveVerticalTunnel carves a vertical tunnel and lights its flanking walls.
func (g *Grid) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carve(geom.Point{X: x, Y: y})
		g.clearSight(geom.Point{X: x - 1, Y: y})
		g.clearSight(geom.Point{X: x + 1, Y: y})
	}
}
