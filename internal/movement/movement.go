// Package movement validates and applies steps for the player and enemies.
//
// A step is legal when a small probe box placed at the candidate position
// lands on an unblocked cell and overlaps no blocking entity. Legal steps are
// applied whole; illegal ones leave the position untouched.
package movement

import (
	"github.com/samdwyer/dungen/internal/entity"
	"github.com/samdwyer/dungen/internal/geom"
	"github.com/samdwyer/dungen/internal/world"
)

const (
	probeW = 4
	probeH = 8

	// Probe offsets from the actor's top-left corner.
	probeOffsetX      = 8
	probeOffsetXRight = 16
	probeOffsetY      = 16

	// Enemies only move along an axis once the player is more than this many
	// pixels ahead on it; otherwise they drift back.
	chaseThreshold = 4
)

// Probe returns the collision box for an actor whose top-left corner would be
// at pos. Moving right shifts the probe toward the leading edge.
func Probe(pos geom.Point, movingRight bool) geom.Rect {
	offX := probeOffsetX
	if movingRight {
		offX = probeOffsetXRight
	}
	return geom.Rect{X: pos.X + offX, Y: pos.Y + probeOffsetY, W: probeW, H: probeH}
}

// Legal reports whether an actor may occupy candidate, checking the probe's
// anchor cell against the grid and the probe box against obstacles.
func Legal(candidate geom.Point, movingRight bool, g *world.Grid, obstacles []entity.Entity) bool {
	probe := Probe(candidate, movingRight)

	anchor := geom.Point{X: probe.X, Y: probe.Y}.ToCell()
	if g.IsBlocked(anchor) {
		return false
	}
	for _, o := range obstacles {
		if o.Blocks() && o.Bounds().Intersects(probe) {
			return false
		}
	}
	return true
}

// Step moves the actor one step in dir if the move is legal and reports whether
// it moved. The walk animation advances either way. Invalid directions are ignored.
func Step(a *entity.Actor, dir entity.Direction, g *world.Grid, obstacles []entity.Entity) bool {
	if !dir.IsValid() {
		return false
	}
	a.Anim.Advance(dir)

	dx, dy := dir.Delta()
	return apply(a, dx*a.Step, dy*a.Step, dir == entity.Right, g, obstacles)
}

// Chase moves the enemy greedily toward the player, one step on each axis at
// once. Enemies stay put unless their sight circle overlaps the player's.
func Chase(e *entity.Enemy, player *entity.Player, g *world.Grid, obstacles []entity.Entity) bool {
	if !geom.CirclesOverlap(e.Bounds(), e.Radius(), player.Bounds(), player.Radius()) {
		return false
	}

	distX := player.Pos.X - e.Pos.X
	distY := player.Pos.Y - e.Pos.Y

	dx, dy := -e.Step, -e.Step
	if distX > chaseThreshold {
		dx = e.Step
	}
	if distY > chaseThreshold {
		dy = e.Step
	}

	e.Anim.Advance(Facing(distX, distY))
	return apply(&e.Actor, dx, dy, dx > 0, g, obstacles)
}

// Facing returns the direction that points along the dominant axis of (dx, dy).
func Facing(dx, dy int) entity.Direction {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return entity.Down
		}
		return entity.Up
	}
	if dx > 0 {
		return entity.Right
	}
	return entity.Left
}

func apply(a *entity.Actor, dx, dy int, movingRight bool, g *world.Grid, obstacles []entity.Entity) bool {
	candidate := a.Pos.Add(dx, dy)
	if !Legal(candidate, movingRight, g, obstacles) {
		return false
	}
	a.Pos = candidate
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
