// Package level builds and owns one complete dungeon: the grid plus every
// entity placed on it.
package level

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungen/internal/entity"
	"github.com/samdwyer/dungen/internal/gamedata"
	"github.com/samdwyer/dungen/internal/geom"
	"github.com/samdwyer/dungen/internal/logger"
	"github.com/samdwyer/dungen/internal/telemetry"
	"github.com/samdwyer/dungen/internal/world"
)

// Entity collection names.
const (
	CategoryKeys        = "keys"
	CategoryStairs      = "stairs"
	CategoryDecorations = "decorations"
)

// Params describes the level to build.
type Params struct {
	Width, Height int
	EnemyBonus    int // Difficulty ratchet, clamped to [0, MaxEnemyBonus]
	Theme         *gamedata.Theme
}

// Level is one generated dungeon. It is built once and replaced wholesale on
// level transition; only fog flags and entity lists change afterwards.
type Level struct {
	ID         uuid.UUID
	Grid       *world.Grid
	Theme      *gamedata.Theme
	EnemyBonus int
	RoomCount  int

	Keys        []*entity.Key
	Stairs      []*entity.Stairs
	Decorations []*entity.Decoration
	Enemies     []*entity.Enemy

	start    geom.Point // Pixel position
	hasStart bool
}

// New generates the grid and places every entity. All randomness comes from rng,
// so the same seed and params give the same level.
func New(ctx context.Context, p Params, rng *rand.Rand) *Level {
	tracer := telemetry.Tracer("level")
	ctx, span := tracer.Start(ctx, "level.build")
	defer span.End()

	theme := p.Theme
	if theme == nil {
		theme = &gamedata.Theme{ID: "none"}
	}

	lvl := &Level{
		ID:         uuid.New(),
		Grid:       world.NewGrid(p.Width, p.Height),
		Theme:      theme,
		EnemyBonus: ClampBonus(p.EnemyBonus),
	}

	layout := world.Generate(ctx, lvl.Grid, rng)
	lvl.RoomCount = len(layout.Rooms)
	lvl.placeDecorations(layout.Decorations, rng)

	if layout.HasStart {
		lvl.start = layout.Start.ToPixel()
		lvl.hasStart = true
	} else {
		lvl.start = geom.Point{X: p.Width / 2, Y: p.Height / 2}.ToPixel()
	}

	lvl.populate(ctx, layout.Rooms, rng)

	span.SetAttributes(
		attribute.String("level.id", lvl.ID.String()),
		attribute.String("level.theme", theme.ID),
		attribute.Int("level.width", p.Width),
		attribute.Int("level.height", p.Height),
		attribute.Int("level.rooms", lvl.RoomCount),
		attribute.Int("level.keys", len(lvl.Keys)),
		attribute.Int("level.enemies", len(lvl.Enemies)),
		attribute.Int("level.enemy_bonus", lvl.EnemyBonus),
	)

	logger.Log.WithFields(logrus.Fields{
		"level_id":    lvl.ID.String(),
		"width":       p.Width,
		"height":      p.Height,
		"theme":       theme.ID,
		"rooms":       lvl.RoomCount,
		"keys":        len(lvl.Keys),
		"enemies":     len(lvl.Enemies),
		"decorations": len(lvl.Decorations),
		"enemy_bonus": lvl.EnemyBonus,
	}).Info("Level built")

	return lvl
}

// placeDecorations turns the generator's decoration spots into entities,
// drawing each sprite from the theme.
func (l *Level) placeDecorations(spots []geom.Point, rng *rand.Rand) {
	for _, cell := range spots {
		var tile gamedata.TileDef
		if n := len(l.Theme.Decorations); n > 0 {
			tile = l.Theme.Decorations[rng.Intn(n)]
		}
		l.Decorations = append(l.Decorations, entity.NewDecoration(cell, tile))
	}
}

// PlayerStart returns the pixel position the player starts at and whether it
// came from a room. Without rooms the grid center is returned.
func (l *Level) PlayerStart() (geom.Point, bool) {
	return l.start, l.hasStart
}

// Category returns the named static entity collection, or nil for an unknown name.
func (l *Level) Category(name string) []entity.Entity {
	var out []entity.Entity
	switch name {
	case CategoryKeys:
		for _, k := range l.Keys {
			out = append(out, k)
		}
	case CategoryStairs:
		for _, s := range l.Stairs {
			out = append(out, s)
		}
	case CategoryDecorations:
		for _, d := range l.Decorations {
			out = append(out, d)
		}
	}
	return out
}

// Props returns every static entity: keys, stairs and decorations.
func (l *Level) Props() []entity.Entity {
	out := make([]entity.Entity, 0, len(l.Keys)+len(l.Stairs)+len(l.Decorations))
	out = append(out, l.Category(CategoryKeys)...)
	out = append(out, l.Category(CategoryStairs)...)
	out = append(out, l.Category(CategoryDecorations)...)
	return out
}

// Obstacles returns the entities that block movement.
func (l *Level) Obstacles() []entity.Entity {
	var out []entity.Entity
	for _, e := range l.Props() {
		if e.Blocks() {
			out = append(out, e)
		}
	}
	return out
}

// RemainingKeys returns how many keys are still on the map.
func (l *Level) RemainingKeys() int {
	return len(l.Keys)
}

// TakeKeyAt removes the first key overlapping box. It returns false if none does.
func (l *Level) TakeKeyAt(box geom.Rect) bool {
	for i, k := range l.Keys {
		if k.Bounds().Intersects(box) {
			l.Keys = append(l.Keys[:i], l.Keys[i+1:]...)
			return true
		}
	}
	return false
}

// StairsAt returns true if any staircase overlaps box.
func (l *Level) StairsAt(box geom.Rect) bool {
	for _, s := range l.Stairs {
		if s.Bounds().Intersects(box) {
			return true
		}
	}
	return false
}

// KeyAt returns true if any key overlaps box.
func (l *Level) KeyAt(box geom.Rect) bool {
	for _, k := range l.Keys {
		if k.Bounds().Intersects(box) {
			return true
		}
	}
	return false
}
