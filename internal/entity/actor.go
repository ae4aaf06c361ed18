package entity

import "github.com/samdwyer/dungen/internal/geom"

const (
	// FrameCount is the number of walk frames per facing.
	FrameCount = 9

	// PlayerStep and EnemyStep are movement speeds in pixels per step.
	PlayerStep = 8
	EnemyStep  = 1

	// PlayerFOV and EnemyFOV are sight radii in cells.
	PlayerFOV = 6
	EnemyFOV  = 4
)

// Animation is an actor's facing and current walk frame.
type Animation struct {
	Facing  Direction
	Frame   int
	elapsed int
}

// Advance updates the facing and steps the walk cycle. It runs once per tick
// whether or not the actor actually moved: the frame moves on every third
// call and wraps to 0 after the last frame.
func (a *Animation) Advance(facing Direction) {
	if a.Frame < FrameCount-1 {
		if a.elapsed > 1 {
			a.Frame++
			a.elapsed = -1
		}
	} else {
		a.Frame = 0
	}
	a.elapsed++
	a.Facing = facing
}

// Actor is the state shared by moving entities.
type Actor struct {
	Pos     geom.Point // Pixel position of the top-left corner
	Step    int        // Pixels per move
	FOV     int        // Sight radius in cells
	Anim    Animation
	visited bool
}

// Bounds returns the actor's pixel box.
func (a *Actor) Bounds() geom.Rect {
	return geom.Rect{X: a.Pos.X, Y: a.Pos.Y, W: Size, H: Size}
}

// Cell returns the grid cell containing the actor's top-left corner.
func (a *Actor) Cell() geom.Point {
	return a.Pos.ToCell()
}

// Radius returns the sight radius in pixels.
func (a *Actor) Radius() float64 {
	return float64(a.FOV * geom.CellSize)
}

// Visited returns true once the actor has been seen.
func (a *Actor) Visited() bool { return a.visited }

// MarkVisited records that the actor has been seen.
func (a *Actor) MarkVisited() { a.visited = true }

// Player is the controlled character.
type Player struct {
	Actor
}

// NewPlayer creates the player at a pixel position, facing down.
func NewPlayer(pos geom.Point) *Player {
	return &Player{Actor: Actor{
		Pos:  pos,
		Step: PlayerStep,
		FOV:  PlayerFOV,
		Anim: Animation{Facing: Down},
	}}
}

func (*Player) Kind() Kind        { return KindPlayer }
func (*Player) Blocks() bool      { return false }
func (*Player) BlocksSight() bool { return false }

// Enemy chases the player when close enough.
type Enemy struct {
	Actor
	// Visible is true while the enemy is within the player's sight this tick.
	Visible bool
}

// NewEnemy creates an enemy on the given cell.
func NewEnemy(cell geom.Point) *Enemy {
	return &Enemy{Actor: Actor{
		Pos:  cell.ToPixel(),
		Step: EnemyStep,
		FOV:  EnemyFOV,
		Anim: Animation{Facing: Down},
	}}
}

func (*Enemy) Kind() Kind        { return KindEnemy }
func (*Enemy) Blocks() bool      { return false }
func (*Enemy) BlocksSight() bool { return false }
