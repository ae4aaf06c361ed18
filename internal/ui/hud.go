package ui

import (
	"github.com/leonelquinteros/gotext"
)

// HUD strings are looked up through gotext, so a configured locale translates
// them and the English text is used otherwise.

// KeysMessage returns the objective line for the remaining key count.
func KeysMessage(remaining int) string {
	switch {
	case remaining == 0:
		return gotext.Get("Climb the stairs!")
	case remaining == 1:
		return gotext.Get("Collect the last key")
	default:
		return gotext.Get("Collect %d Keys", remaining)
	}
}

// CollectKeyHint is shown the first time the player stands on a key.
func CollectKeyHint() string {
	return gotext.Get("Press SPACE to collect the key")
}

// ClimbStairsHint is shown on the stairs once every key is collected.
func ClimbStairsHint() string {
	return gotext.Get("Press SPACE to climb the stairs")
}

// KeysFirstHint is shown on the stairs while keys remain.
func KeysFirstHint() string {
	return gotext.Get("Collect all of the keys and then come back")
}

// CaughtMessage is shown while an enemy is on top of the player.
func CaughtMessage() string {
	return gotext.Get("This is when he realizes he hasn't been programmed any weapons")
}

// LoadingMessage is the loading screen title.
func LoadingMessage() string {
	return gotext.Get("Loading...")
}

// DebugLines returns the debug panel text.
func DebugLines(debug, god bool) []string {
	if !debug {
		return []string{gotext.Get("Debug mode(d): off")}
	}
	godLine := gotext.Get("God mode(g): off")
	if god {
		godLine = gotext.Get("God mode(g): on")
	}
	return []string{
		gotext.Get("Debug mode(d): on"),
		godLine,
		gotext.Get("Skip level key: s"),
	}
}
