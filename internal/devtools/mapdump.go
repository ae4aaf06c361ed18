// Package devtools holds developer aids for inspecting generated levels.
package devtools

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/dungen/internal/geom"
	"github.com/samdwyer/dungen/internal/level"
	"github.com/samdwyer/dungen/internal/world"
)

// Map dump glyphs.
const (
	GlyphPlayer     = '@'
	GlyphEnemy      = 'e'
	GlyphKey        = 'k'
	GlyphDecoration = 'o'
)

var (
	styleWall       = color.Style{color.FgGray}
	styleFloor      = color.Style{color.FgWhite}
	styleStairs     = color.Style{color.FgCyan, color.OpBold}
	styleKey        = color.Style{color.FgYellow, color.OpBold}
	styleDecoration = color.Style{color.FgGreen}
	styleEnemy      = color.Style{color.FgRed, color.OpBold}
	stylePlayer     = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
)

// Options control how a level is dumped.
type Options struct {
	Colorize bool // Wrap glyphs in ANSI colour codes
	Stats    bool // Append a summary line
}

// Stats summarises a level.
type Stats struct {
	Rooms         int
	FloorCells    int
	Reachable     int // Walkable cells 4-connected to the player start
	Keys          int
	KeysReachable int
	Enemies       int
	Decorations   int
}

// Analyze computes summary statistics for a level.
func Analyze(lvl *level.Level) Stats {
	g := lvl.Grid
	start, _ := lvl.PlayerStart()
	reachable := g.Reachable(start.ToCell())

	s := Stats{
		Rooms:       lvl.RoomCount,
		FloorCells:  g.CountKind(world.KindFloor) + g.CountKind(world.KindStairsUp) + g.CountKind(world.KindStairsDown),
		Reachable:   reachable.Size(),
		Keys:        len(lvl.Keys),
		Enemies:     len(lvl.Enemies),
		Decorations: len(lvl.Decorations),
	}
	for _, k := range lvl.Keys {
		if reachable.Has(k.Cell()) {
			s.KeysReachable++
		}
	}
	return s
}

// DumpLevel writes the level as one line of glyphs per grid row.
func DumpLevel(w io.Writer, lvl *level.Level, opts Options) error {
	overlay := make(map[geom.Point]rune)
	for _, d := range lvl.Decorations {
		overlay[d.Cell()] = GlyphDecoration
	}
	for _, k := range lvl.Keys {
		overlay[k.Cell()] = GlyphKey
	}
	for _, e := range lvl.Enemies {
		overlay[e.Cell()] = GlyphEnemy
	}
	if start, ok := lvl.PlayerStart(); ok {
		overlay[start.ToCell()] = GlyphPlayer
	}

	bw := bufio.NewWriter(w)
	g := lvl.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := geom.Point{X: x, Y: y}
			kind := g.At(p).Kind
			r, ok := overlay[p]
			if !ok {
				r = kind.Rune()
			}
			if opts.Colorize {
				bw.WriteString(styleFor(r, kind).Sprint(string(r)))
			} else {
				bw.WriteRune(r)
			}
		}
		bw.WriteByte('\n')
	}

	if opts.Stats {
		s := Analyze(lvl)
		fmt.Fprintf(bw, "level %s theme=%s size=%dx%d rooms=%d floor=%d reachable=%d keys=%d/%d enemies=%d decorations=%d\n",
			lvl.ID, lvl.Theme.ID, g.Width(), g.Height(), s.Rooms, s.FloorCells, s.Reachable,
			s.KeysReachable, s.Keys, s.Enemies, s.Decorations)
	}
	return bw.Flush()
}

func styleFor(r rune, kind world.Kind) color.Style {
	switch r {
	case GlyphPlayer:
		return stylePlayer
	case GlyphEnemy:
		return styleEnemy
	case GlyphKey:
		return styleKey
	case GlyphDecoration:
		return styleDecoration
	}
	switch {
	case kind.IsStairs():
		return styleStairs
	case kind == world.KindFloor:
		return styleFloor
	default:
		return styleWall
	}
}
