package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileDef names the assets for one drawable thing: sprite images for a
// graphical front end and a glyph with lit and dark colours for the terminal.
type TileDef struct {
	Sprite     string `json:"sprite"`               // Image shown when lit
	DarkSprite string `json:"darkSprite,omitempty"` // Image shown when remembered
	Glyph      string `json:"glyph"`                // Single terminal character
	Color      string `json:"color"`                // Lit hex colour
	DarkColor  string `json:"darkColor,omitempty"`  // Remembered hex colour
}

// GlyphRune returns the glyph as a rune for rendering.
func (t TileDef) GlyphRune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

// LitColor returns the lit colour, white if unparsable.
func (t TileDef) LitColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// DimColor returns the remembered colour, dark grey if unset or unparsable.
func (t TileDef) DimColor() tcell.Color {
	color, err := ParseHexColor(t.DarkColor)
	if err != nil {
		return tcell.ColorDarkGray
	}
	return color
}

// Theme is the visual set a level is drawn with.
type Theme struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Decorations []TileDef `json:"decorations"` // One is picked per decoration
	Floor       TileDef   `json:"floor"`
	Wall        TileDef   `json:"wall"`
	StairsUp    TileDef   `json:"stairsUp"`
	StairsDown  TileDef   `json:"stairsDown"`
}

// Validate checks that the theme can be used for generation.
func (t *Theme) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("theme without id")
	}
	if len(t.Decorations) == 0 {
		return fmt.Errorf("theme %s: no decorations", t.ID)
	}
	return nil
}

// CommonTiles are drawn the same way in every theme.
type CommonTiles struct {
	Key    TileDef `json:"key"`
	Player TileDef `json:"player"`
	Enemy  TileDef `json:"enemy"`
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Common CommonTiles `json:"common"`
	Themes []Theme     `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() (ThemesFile, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return ThemesFile{}, err
	}
	for i := range file.Themes {
		if err := file.Themes[i].Validate(); err != nil {
			return ThemesFile{}, fmt.Errorf("themes.json: %w", err)
		}
	}
	return file, nil
}

// TipsFile represents the structure of tips.json.
type TipsFile struct {
	Tips []string `json:"tips"`
}

// LoadTips loads the loading-screen tips from the embedded tips.json file.
func LoadTips() ([]string, error) {
	file, err := Load[TipsFile]("tips.json")
	if err != nil {
		return nil, err
	}
	return file.Tips, nil
}
