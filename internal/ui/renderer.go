package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungen/internal/entity"
	"github.com/samdwyer/dungen/internal/gamedata"
	"github.com/samdwyer/dungen/internal/geom"
	"github.com/samdwyer/dungen/internal/level"
	"github.com/samdwyer/dungen/internal/vision"
	"github.com/samdwyer/dungen/internal/world"
)

// hudRows is the number of text rows reserved below the map.
const hudRows = 2

var (
	colorObjective = gamedata.MustParseHexColor("#FFFFFF")
	colorClimb     = gamedata.MustParseHexColor("#FF0000")
	colorHint      = gamedata.MustParseHexColor("#FFFF00")
	colorTip       = gamedata.MustParseHexColor("#FF1919")
	colorDebug     = gamedata.MustParseHexColor("#A0A0A0")
)

// Frame is everything the renderer needs for one frame.
type Frame struct {
	Level   *level.Level
	Player  *entity.Player
	Common  gamedata.CommonTiles
	Hint    string // Localised hint text, empty for none
	Caught  bool
	Loading bool
	Tip     string
	Debug   bool
	God     bool // Draw every see-through cell and all enemies lit
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	camera *Camera
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame: the loading screen while transitioning, otherwise
// the map around the player and the HUD.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	defer r.screen.Show()

	width, height := r.screen.Size()
	if f.Loading {
		r.renderLoading(f, width, height)
		return
	}

	grid := f.Level.Grid
	viewH := max(height-hudRows, 0)
	if r.camera == nil || r.camera.MapW != grid.Width() || r.camera.MapH != grid.Height() ||
		r.camera.ViewW != width || r.camera.ViewH != viewH {
		r.camera = NewCamera(grid.Width(), grid.Height(), width, viewH)
	}
	r.camera.Follow(f.Player.Cell())

	grid.ForEachIn(r.camera.Visible(), func(c *world.Cell) {
		r.drawCell(f, c)
	})
	for _, p := range f.Level.Props() {
		r.drawProp(f, p)
	}
	for _, e := range f.Level.Enemies {
		shade := vision.EnemyShade(e)
		if f.God {
			shade = vision.Lit
		}
		r.drawTile(e.Cell(), f.Common.Enemy, shade)
	}
	r.drawTile(f.Player.Cell(), f.Common.Player, vision.Lit)

	r.renderHUD(f, width, height)
}

func (r *Renderer) drawCell(f Frame, c *world.Cell) {
	shade := vision.CellShade(c, f.Player)
	if f.God && !c.BlocksSight {
		shade = vision.Lit
	}
	r.drawTile(c.Pos, tileForKind(f.Level.Theme, c.Kind), shade)
}

func (r *Renderer) drawProp(f Frame, p entity.Entity) {
	shade := vision.PropShade(p, f.Player)
	if f.God && !p.BlocksSight() {
		shade = vision.Lit
	}

	var tile gamedata.TileDef
	switch v := p.(type) {
	case *entity.Key:
		tile = f.Common.Key
	case *entity.Stairs:
		tile = f.Level.Theme.StairsDown
		if v.Up {
			tile = f.Level.Theme.StairsUp
		}
	case *entity.Decoration:
		tile = v.Tile
	default:
		return
	}
	r.drawTile(p.Bounds().Center().ToCell(), tile, shade)
}

func (r *Renderer) drawTile(cell geom.Point, tile gamedata.TileDef, shade vision.Shade) {
	x, y, ok := r.camera.ToScreen(cell)
	if !ok || shade == vision.Hidden {
		return
	}
	color := tile.LitColor()
	if shade == vision.Dim {
		color = tile.DimColor()
	}
	r.screen.SetContent(x, y, tile.GlyphRune(), tcell.StyleDefault.Foreground(color))
}

func tileForKind(theme *gamedata.Theme, k world.Kind) gamedata.TileDef {
	switch k {
	case world.KindFloor:
		return theme.Floor
	case world.KindStairsUp:
		return theme.StairsUp
	case world.KindStairsDown:
		return theme.StairsDown
	default:
		return theme.Wall
	}
}

func (r *Renderer) renderHUD(f Frame, width, height int) {
	remaining := f.Level.RemainingKeys()
	objective := tcell.StyleDefault.Foreground(colorObjective)
	if remaining == 0 {
		objective = objective.Foreground(colorClimb).Bold(true)
	}
	r.centerText(KeysMessage(remaining), height-2, width, objective)

	switch {
	case f.Caught:
		r.centerText(CaughtMessage(), height-1, width, tcell.StyleDefault.Foreground(colorTip))
	case f.Hint != "":
		r.centerText(f.Hint, height-1, width, tcell.StyleDefault.Foreground(colorHint))
	}

	debugStyle := tcell.StyleDefault.Foreground(colorDebug)
	for i, line := range DebugLines(f.Debug, f.God) {
		r.RenderText(line, max(width-len(line)-1, 0), i, debugStyle)
	}
}

func (r *Renderer) renderLoading(f Frame, width, height int) {
	mid := height / 2
	r.centerText(LoadingMessage(), mid, width, tcell.StyleDefault.Foreground(colorObjective).Bold(true))
	if f.Tip != "" {
		r.centerText(f.Tip, mid+2, width, tcell.StyleDefault.Foreground(colorTip))
	}
}

func (r *Renderer) centerText(msg string, y, width int, style tcell.Style) {
	x := max((width-len([]rune(msg)))/2, 0)
	r.RenderText(msg, x, y, style)
}

// RenderText draws a message starting at (x, y).
func (r *Renderer) RenderText(msg string, x, y int, style tcell.Style) {
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
}
