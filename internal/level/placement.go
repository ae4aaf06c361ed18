package level

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungen/internal/entity"
	"github.com/samdwyer/dungen/internal/geom"
	"github.com/samdwyer/dungen/internal/telemetry"
	"github.com/samdwyer/dungen/internal/world"
)

const (
	// MaxEnemyBonus caps the difficulty ratchet. At the cap every key room gets an enemy.
	MaxEnemyBonus = 15

	enemyRollRange  = 20 // Guard roll is uniform in [0, enemyRollRange-bonus)
	enemyRollHit    = 5  // Rolls below this spawn a guard
	minKeys         = 4
	maxKeys         = 8
	fewRoomsForKeys = 3 // At or below this, every remaining room gets a key
)

// ClampBonus bounds a difficulty bonus to [0, MaxEnemyBonus].
func ClampBonus(bonus int) int {
	return min(max(bonus, 0), MaxEnemyBonus)
}

// KeyCount returns how many keys to place among the given number of free
// rooms. More than three rooms draw 4..8 keys; the count never exceeds rooms.
func KeyCount(rooms int, rng *rand.Rand) int {
	if rooms > fewRoomsForKeys {
		return min(minKeys+rng.Intn(maxKeys-minKeys+1), rooms)
	}
	return rooms
}

// populate places the stairs, keys and guards. Rooms are consumed as they are
// used so no two of these share a room, and nothing spawns in the start room.
func (l *Level) populate(ctx context.Context, accepted []world.Room, rng *rand.Rand) {
	_, span := telemetry.Tracer("level").Start(ctx, "level.place")
	defer span.End()

	if len(accepted) == 0 {
		return
	}
	start := accepted[0]
	rooms := append([]world.Room(nil), accepted...)

	var stairsRoom world.Room
	stairsRoom, rooms = takeRandom(rooms, rng)
	l.addStairs(stairsRoom, rng)

	rooms = without(rooms, start)

	keys := KeyCount(len(rooms), rng)
	for i := 0; i < keys; i++ {
		var room world.Room
		room, rooms = takeRandom(rooms, rng)
		l.Keys = append(l.Keys, entity.NewKey(world.RandomInteriorPoint(room, rng)))

		if rng.Intn(enemyRollRange-l.EnemyBonus) < enemyRollHit {
			l.Enemies = append(l.Enemies, entity.NewEnemy(l.openInteriorPoint(room, rng)))
		}
	}

	span.SetAttributes(
		attribute.Int("level.keys", len(l.Keys)),
		attribute.Int("level.enemies", len(l.Enemies)),
	)
}

// addStairs places the staircase and marks its cell. A decoration already on
// that cell is removed so the exit is never buried.
func (l *Level) addStairs(room world.Room, rng *rand.Rand) {
	cell := world.RandomInteriorPoint(room, rng)
	up := rng.Intn(2) == 1

	kind := world.KindStairsDown
	if up {
		kind = world.KindStairsUp
	}
	l.Grid.At(cell).SetKind(kind)
	l.Stairs = append(l.Stairs, entity.NewStairs(cell, up))

	kept := l.Decorations[:0]
	for _, d := range l.Decorations {
		if d.Cell() != cell {
			kept = append(kept, d)
		}
	}
	l.Decorations = kept
}

// openInteriorPoint draws interior cells until one holds no decoration. A room
// has at most one decoration and at least four interior cells.
func (l *Level) openInteriorPoint(room world.Room, rng *rand.Rand) geom.Point {
	for {
		cell := world.RandomInteriorPoint(room, rng)
		if !l.decorationAt(cell) {
			return cell
		}
	}
}

func (l *Level) decorationAt(cell geom.Point) bool {
	for _, d := range l.Decorations {
		if d.Cell() == cell {
			return true
		}
	}
	return false
}

// takeRandom removes and returns a uniformly chosen room. rooms must not be empty.
func takeRandom(rooms []world.Room, rng *rand.Rand) (world.Room, []world.Room) {
	i := rng.Intn(len(rooms))
	room := rooms[i]
	return room, append(rooms[:i], rooms[i+1:]...)
}

// without removes the first occurrence of room, if present.
func without(rooms []world.Room, room world.Room) []world.Room {
	for i, r := range rooms {
		if r == room {
			return append(rooms[:i], rooms[i+1:]...)
		}
	}
	return rooms
}
