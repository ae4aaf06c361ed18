package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungen/internal/entity"
	"github.com/samdwyer/dungen/internal/logger"
	"github.com/samdwyer/dungen/internal/telemetry"
	"github.com/samdwyer/dungen/internal/ui"
)

// toggleDebounce is the minimum time between debug or god mode toggles.
const toggleDebounce = 250 * time.Millisecond

// Game drives a Session from the terminal: it polls input, ticks the
// simulation at a fixed rate and renders every tick.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool

	// Presentation-only flags.
	debug      bool
	god        bool
	lastToggle time.Time
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	initCtx, initSpan := tracer.Start(ctx, "game.init")
	session, err := NewSession(initCtx, g.cfg)
	if err != nil {
		initSpan.End()
		g.Close()
		return fmt.Errorf("start session: %w", err)
	}
	g.session = session
	initSpan.SetAttributes(
		attribute.Int64("game.seed", session.Seed()),
		attribute.Int("level.rooms", session.Level().RoomCount),
	)
	initSpan.End()
	logger.Log.WithField("seed", session.Seed()).Info("Game started")

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(g.cfg.TickRate)
	defer ticker.Stop()

	// Main game loop
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ev)
		case <-ticker.C:
			g.session.Tick(ctx)
			g.render()
		}
	}

	// Cleanup
	g.Close()
	return nil
}

// pollEvents forwards terminal events until the screen is closed or the loop
// stops reading.
func (g *Game) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) render() {
	s := g.session
	g.renderer.Render(ui.Frame{
		Level:   s.Level(),
		Player:  s.Player(),
		Common:  s.themes.Common(),
		Hint:    hintText(s.Hint()),
		Caught:  s.Caught(),
		Loading: s.IsTransitioning(),
		Tip:     s.LoadingTip(),
		Debug:   g.debug,
		God:     g.god,
	})
}

// hintText returns the HUD text for a hint, or "" for none.
func hintText(h Hint) string {
	switch h {
	case HintCollectKey:
		return ui.CollectKeyHint()
	case HintClimbStairs:
		return ui.ClimbStairsHint()
	case HintKeysFirst:
		return ui.KeysFirstHint()
	default:
		return ""
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev, time.Now())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.SubmitDirectionalInput(entity.Up)
	case tcell.KeyDown:
		g.session.SubmitDirectionalInput(entity.Down)
	case tcell.KeyLeft:
		g.session.SubmitDirectionalInput(entity.Left)
	case tcell.KeyRight:
		g.session.SubmitDirectionalInput(entity.Right)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case ' ':
			g.session.SubmitInteract()
		case 'd':
			if g.debounced(now) {
				g.debug = !g.debug
				g.god = false
			}
		case 'g':
			if g.debug && g.debounced(now) {
				g.god = !g.god
			}
		case 's':
			if g.debug {
				g.session.SubmitDebugSkip()
			}
		}
	}
}

// debounced reports whether enough time has passed since the last toggle and
// records now as the latest one if so.
func (g *Game) debounced(now time.Time) bool {
	if now.Sub(g.lastToggle) <= toggleDebounce {
		return false
	}
	g.lastToggle = now
	return true
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
