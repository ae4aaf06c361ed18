package game

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungen/internal/ui"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return &Game{session: newTestSession(t, 42, 0), running: true}
}

func TestDebugToggleDebounce(t *testing.T) {
	g := newTestGame(t)
	now := time.Unix(1000, 0)
	d := tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)

	g.handleKeyEvent(d, now)
	if !g.debug {
		t.Fatal("d should enable debug mode")
	}
	g.handleKeyEvent(d, now.Add(100*time.Millisecond))
	if !g.debug {
		t.Error("second toggle within 250ms should be ignored")
	}
	g.handleKeyEvent(d, now.Add(400*time.Millisecond))
	if g.debug {
		t.Error("toggle after the debounce window should disable debug mode")
	}
}

func TestGodModeNeedsDebug(t *testing.T) {
	g := newTestGame(t)
	now := time.Unix(1000, 0)
	godKey := tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone)

	g.handleKeyEvent(godKey, now)
	if g.god {
		t.Fatal("god mode should require debug mode")
	}

	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), now)
	g.handleKeyEvent(godKey, now.Add(time.Second))
	if !g.god {
		t.Fatal("g should enable god mode in debug mode")
	}

	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), now.Add(2*time.Second))
	if g.debug || g.god {
		t.Error("leaving debug mode should also clear god mode")
	}
}

func TestSkipOnlyInDebug(t *testing.T) {
	g := newTestGame(t)
	skip := tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)

	g.handleKeyEvent(skip, time.Unix(1000, 0))
	if len(g.session.queue) != 0 {
		t.Fatal("skip outside debug mode should be ignored")
	}

	g.debug = true
	g.handleKeyEvent(skip, time.Unix(1001, 0))
	if len(g.session.queue) != 1 || g.session.queue[0].kind != cmdSkip {
		t.Errorf("queue = %+v, want one skip", g.session.queue)
	}
}

func TestArrowKeysAndQuit(t *testing.T) {
	g := newTestGame(t)
	now := time.Unix(1000, 0)

	for _, k := range []tcell.Key{tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight} {
		g.handleKeyEvent(tcell.NewEventKey(k, 0, tcell.ModNone), now)
	}
	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now)
	if len(g.session.queue) != 5 {
		t.Errorf("queued %d commands, want 5", len(g.session.queue))
	}

	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now)
	if g.running {
		t.Error("escape should stop the game")
	}
}

func TestHintText(t *testing.T) {
	tests := []struct {
		hint Hint
		want string
	}{
		{HintNone, ""},
		{HintCollectKey, "Press SPACE to collect the key"},
		{HintClimbStairs, "Press SPACE to climb the stairs"},
		{HintKeysFirst, "Collect all of the keys and then come back"},
		{Hint(99), ""},
	}
	for _, tt := range tests {
		if got := hintText(tt.hint); got != tt.want {
			t.Errorf("hintText(%v) = %q, want %q", tt.hint, got, tt.want)
		}
	}
}

func TestPollEventsStopsWhenLoopExits(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	defer screen.Close()
	g := &Game{screen: screen}

	// Nobody reads events, as after Run has returned.
	events := make(chan tcell.Event)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		g.pollEvents(events, done)
		close(exited)
	}()

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	close(done)

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents blocked on a send nobody receives")
	}
}
