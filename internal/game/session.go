package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungen/internal/entity"
	"github.com/samdwyer/dungen/internal/gamedata"
	"github.com/samdwyer/dungen/internal/geom"
	"github.com/samdwyer/dungen/internal/level"
	"github.com/samdwyer/dungen/internal/logger"
	"github.com/samdwyer/dungen/internal/movement"
	"github.com/samdwyer/dungen/internal/telemetry"
	"github.com/samdwyer/dungen/internal/vision"
)

// Hint is a first-time help message the HUD shows.
type Hint int

const (
	HintNone Hint = iota
	HintCollectKey
	HintClimbStairs
	HintKeysFirst
)

// String returns the hint's identifier.
func (h Hint) String() string {
	switch h {
	case HintNone:
		return "none"
	case HintCollectKey:
		return "collect_key"
	case HintClimbStairs:
		return "climb_stairs"
	case HintKeysFirst:
		return "keys_first"
	default:
		return "unknown"
	}
}

type commandKind int

const (
	cmdMove commandKind = iota
	cmdInteract
	cmdSkip
)

type command struct {
	kind commandKind
	dir  entity.Direction
}

// transition reasons, used in logs and spans.
const (
	reasonStart = "start"
	reasonWin   = "stairs"
	reasonSkip  = "skip"
)

// Session owns the current level and the player and advances them one tick at
// a time. Commands are queued and applied at the start of the next tick.
// A Session is not safe for concurrent use.
type Session struct {
	cfg    Config
	seed   int64
	rng    *rand.Rand
	themes *gamedata.ThemeRegistry

	level  *level.Level
	player *entity.Player
	state  State

	width, height int
	bonus         int
	depth         int
	loadingLeft   int
	tip           string

	queue []command

	seenFirstKey    bool
	seenFirstStairs bool
}

// NewSession builds the first level. A zero seed is replaced by a time-based one.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	themes, err := gamedata.LoadThemeRegistry()
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		themes: themes,
		width:  cfg.Width,
		height: cfg.Height,
	}
	s.player = entity.NewPlayer(geom.Point{})
	s.player.FOV = cfg.PlayerFOV

	s.swapLevel(ctx, reasonStart)
	s.state = StatePlaying
	s.loadingLeft = 0
	return s, nil
}

// Seed returns the seed the session's randomness derives from.
func (s *Session) Seed() int64 { return s.seed }

// Level returns the current level.
func (s *Session) Level() *level.Level { return s.level }

// Player returns the player.
func (s *Session) Player() *entity.Player { return s.player }

// State returns the progression state.
func (s *Session) State() State { return s.state }

// Depth returns how many levels have been completed by climbing stairs.
func (s *Session) Depth() int { return s.depth }

// EnemyBonus returns the difficulty bonus applied to the current level.
func (s *Session) EnemyBonus() int { return s.bonus }

// IsTransitioning returns true while the loading screen should be shown.
func (s *Session) IsTransitioning() bool { return s.state == StateTransitioning }

// LoadingTip returns the tip chosen for the latest level transition.
func (s *Session) LoadingTip() string { return s.tip }

// RemainingKeyCount returns how many keys are still to be collected.
func (s *Session) RemainingKeyCount() int { return s.level.RemainingKeys() }

// PlayerStartPosition returns the pixel position the player starts the current level at.
func (s *Session) PlayerStartPosition() geom.Point {
	start, _ := s.level.PlayerStart()
	return start
}

// SubmitDirectionalInput queues a step. Invalid directions are ignored.
func (s *Session) SubmitDirectionalInput(dir entity.Direction) {
	if !dir.IsValid() {
		return
	}
	s.queue = append(s.queue, command{kind: cmdMove, dir: dir})
}

// SubmitInteract queues a key pickup or stairs use.
func (s *Session) SubmitInteract() {
	s.queue = append(s.queue, command{kind: cmdInteract})
}

// SubmitDebugSkip queues a jump to a new, smaller level.
func (s *Session) SubmitDebugSkip() {
	s.queue = append(s.queue, command{kind: cmdSkip})
}

// Tick advances the simulation: queued player commands first, then enemy
// movement toward the player's new position, then visibility.
func (s *Session) Tick(ctx context.Context) {
	if s.state == StateTransitioning {
		s.queue = s.queue[:0]
		s.loadingLeft--
		if s.loadingLeft <= 0 {
			s.state = StatePlaying
		}
		return
	}

	for i, cmd := range s.queue {
		if s.runCommand(ctx, cmd) {
			// A new level discards the rest of the old level's input.
			logger.Log.WithField("dropped", len(s.queue)-i-1).Debug("Level changed mid-queue")
			break
		}
	}
	s.queue = s.queue[:0]
	if s.state == StateTransitioning {
		return
	}

	grid := s.level.Grid
	obstacles := s.level.Obstacles()
	for _, e := range s.level.Enemies {
		movement.Chase(e, s.player, grid, obstacles)
	}

	vision.Update(grid, s.level.Props(), s.level.Enemies, s.player)
}

// runCommand applies one command and reports whether the level was replaced.
func (s *Session) runCommand(ctx context.Context, cmd command) bool {
	switch cmd.kind {
	case cmdMove:
		movement.Step(&s.player.Actor, cmd.dir, s.level.Grid, s.level.Obstacles())
	case cmdInteract:
		return s.interact(ctx)
	case cmdSkip:
		s.width = max(s.width-2, MinSize)
		s.height = max(s.height-2, MinSize)
		s.transition(ctx, reasonSkip)
		return true
	}
	return false
}

// interact picks up one key under the player, then uses the stairs if every
// key is gone and the player stands on them.
func (s *Session) interact(ctx context.Context) bool {
	box := s.player.Bounds()

	if s.level.TakeKeyAt(box) {
		s.seenFirstKey = true
		logger.Log.WithFields(logrus.Fields{
			"level_id":  s.level.ID.String(),
			"remaining": s.level.RemainingKeys(),
		}).Info("Key collected")
	}

	if s.level.RemainingKeys() == 0 && s.level.StairsAt(box) {
		s.seenFirstStairs = true
		s.width += 2
		s.height += 2
		s.bonus = level.ClampBonus(s.bonus + 1)
		s.depth++
		s.transition(ctx, reasonWin)
		return true
	}
	return false
}

// transition replaces the level and starts the loading countdown.
func (s *Session) transition(ctx context.Context, reason string) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.transition")
	defer span.End()

	old := s.level
	s.swapLevel(ctx, reason)
	s.tip = s.themes.RandomTip(s.rng)

	s.state = StatePlaying
	if s.cfg.LoadingTicks > 0 {
		s.state = StateTransitioning
		s.loadingLeft = s.cfg.LoadingTicks
	}

	span.SetAttributes(
		attribute.String("transition.reason", reason),
		attribute.String("transition.from", old.ID.String()),
		attribute.String("transition.to", s.level.ID.String()),
		attribute.Int("level.width", s.width),
		attribute.Int("level.height", s.height),
		attribute.Int("level.enemy_bonus", s.bonus),
		attribute.Int("session.depth", s.depth),
	)

	logger.Log.WithFields(logrus.Fields{
		"reason":      reason,
		"from":        old.ID.String(),
		"to":          s.level.ID.String(),
		"width":       s.width,
		"height":      s.height,
		"enemy_bonus": s.bonus,
		"depth":       s.depth,
	}).Info("Level transition")
}

// swapLevel builds the next level in full before it replaces the current one,
// so the half-built level is never observable.
func (s *Session) swapLevel(ctx context.Context, reason string) {
	levelRng := rand.New(rand.NewSource(s.rng.Int63()))
	next := level.New(ctx, level.Params{
		Width:      s.width,
		Height:     s.height,
		EnemyBonus: s.bonus,
		Theme:      s.themes.Random(levelRng),
	}, levelRng)
	for _, e := range next.Enemies {
		e.FOV = s.cfg.EnemyFOV
	}

	start, ok := next.PlayerStart()
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"level_id": next.ID.String(),
			"reason":   reason,
		}).Warn("No rooms generated, using fallback position")
	}

	s.level = next
	s.player.Pos = start
	s.player.Anim = entity.Animation{Facing: entity.Down}
	vision.Update(next.Grid, next.Props(), next.Enemies, s.player)
}

// Hint returns the first-time help message for the player's position.
// Each hint stops appearing once its action has been performed.
func (s *Session) Hint() Hint {
	if s.state != StatePlaying {
		return HintNone
	}
	box := s.player.Bounds()
	if !s.seenFirstKey && s.level.KeyAt(box) {
		return HintCollectKey
	}
	if !s.seenFirstStairs && s.level.StairsAt(box) {
		if s.level.RemainingKeys() == 0 {
			return HintClimbStairs
		}
		return HintKeysFirst
	}
	return HintNone
}

// Caught returns true while any enemy overlaps the player.
func (s *Session) Caught() bool {
	box := s.player.Bounds()
	for _, e := range s.level.Enemies {
		if e.Bounds().Intersects(box) {
			return true
		}
	}
	return false
}

// Size returns the current level dimensions in cells.
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}
