// Command mapdump generates a level from a seed and prints it as ASCII.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/samdwyer/dungen/internal/devtools"
	"github.com/samdwyer/dungen/internal/gamedata"
	"github.com/samdwyer/dungen/internal/level"
	"github.com/samdwyer/dungen/internal/logger"
	"github.com/samdwyer/dungen/internal/world"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	width := flag.Int("width", world.DefaultWidth, "level width in cells")
	height := flag.Int("height", world.DefaultHeight, "level height in cells")
	bonus := flag.Int("bonus", 0, "enemy probability bonus (0-15)")
	themeID := flag.String("theme", "", "theme id (random when empty)")
	colorMode := flag.String("color", "auto", "colour output: auto, always or never")
	stats := flag.Bool("stats", true, "print a summary line")
	verbose := flag.Bool("v", false, "log generation details to stderr")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(os.Stderr, "mapdump: invalid size %dx%d\n", *width, *height)
		os.Exit(2)
	}
	if *verbose {
		logger.Init(os.Stderr)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	registry, err := gamedata.LoadThemeRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapdump: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	theme := registry.Random(rng)
	if *themeID != "" {
		if theme = registry.GetByID(*themeID); theme == nil {
			fmt.Fprintf(os.Stderr, "mapdump: unknown theme %q\n", *themeID)
			os.Exit(2)
		}
	}

	lvl := level.New(context.Background(), level.Params{
		Width:      *width,
		Height:     *height,
		EnemyBonus: *bonus,
		Theme:      theme,
	}, rng)

	colorize := false
	switch *colorMode {
	case "always":
		colorize = true
	case "auto":
		colorize = term.IsTerminal(int(os.Stdout.Fd()))
	}

	fmt.Printf("seed %d\n", *seed)
	if err := devtools.DumpLevel(os.Stdout, lvl, devtools.Options{Colorize: colorize, Stats: *stats}); err != nil {
		fmt.Fprintf(os.Stderr, "mapdump: %v\n", err)
		os.Exit(1)
	}
}
