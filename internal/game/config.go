package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/dungen/internal/entity"
	"github.com/samdwyer/dungen/internal/world"
)

// MinSize is the smallest width or height a debug skip can shrink the map to.
const MinSize = 16

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Width and Height of the first level in cells.
	Width, Height int

	// Sight radii in cells.
	PlayerFOV, EnemyFOV int

	// LoadingTicks is how long a new level stays behind the loading screen.
	LoadingTicks int

	// TickRate is the simulation tick interval of the terminal loop.
	TickRate time.Duration

	// LocaleDir and Language select translated HUD text. Empty LocaleDir
	// keeps the built-in English strings.
	LocaleDir string
	Language  string
}

// DefaultConfig returns the standard settings: a 50x50 first level, roughly
// 60 ticks per second, and a three second loading screen.
func DefaultConfig() Config {
	return Config{
		Width:        world.DefaultWidth,
		Height:       world.DefaultHeight,
		PlayerFOV:    entity.PlayerFOV,
		EnemyFOV:     entity.EnemyFOV,
		LoadingTicks: 180,
		TickRate:     time.Second / 60,
		Language:     "en_US",
	}
}

// ConfigFromEnv returns DefaultConfig overridden by DUNGEN_* environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{"DUNGEN_WIDTH", &cfg.Width},
		{"DUNGEN_HEIGHT", &cfg.Height},
		{"DUNGEN_LOADING_TICKS", &cfg.LoadingTicks},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw := os.Getenv("DUNGEN_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse DUNGEN_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if dir := os.Getenv("DUNGEN_LOCALE_DIR"); dir != "" {
		cfg.LocaleDir = dir
	}
	if lang := os.Getenv("DUNGEN_LANG"); lang != "" {
		cfg.Language = lang
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration can start a session.
func (c Config) Validate() error {
	if c.Width < MinSize || c.Height < MinSize {
		return fmt.Errorf("map size %dx%d is below the minimum %d", c.Width, c.Height, MinSize)
	}
	if c.PlayerFOV <= 0 || c.EnemyFOV <= 0 {
		return fmt.Errorf("sight radii must be positive, got player=%d enemy=%d", c.PlayerFOV, c.EnemyFOV)
	}
	if c.LoadingTicks < 0 {
		return fmt.Errorf("loading ticks must not be negative, got %d", c.LoadingTicks)
	}
	return nil
}
