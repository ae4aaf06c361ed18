// Package game runs a play session: the level progression state machine, the
// per-tick command processing, and the terminal loop that drives it.
package game

// State is the progression state of a session.
type State int

const (
	// StatePlaying is normal play: commands are processed every tick.
	StatePlaying State = iota
	// StateTransitioning holds the freshly built level behind the loading
	// screen for a fixed number of ticks. Commands are dropped.
	StateTransitioning
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}
