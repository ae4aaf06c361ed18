package entity

// Direction is one of the four cardinal directions. It doubles as the facing
// of an actor; the values follow the walk sprite sheet's row order.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// AllDirections returns all valid directions for iteration.
func AllDirections() []Direction {
	return []Direction{Up, Left, Down, Right}
}

// IsValid returns true if the direction is a cardinal direction.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit offset for the direction; (0, 0) if invalid.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Left:
		return -1, 0
	case Down:
		return 0, 1
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}
