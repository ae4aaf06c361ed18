package gamedata

import (
	"errors"
	"math/rand"
)

// ThemeRegistry holds loaded themes and picks one per level.
type ThemeRegistry struct {
	themes []Theme
	common CommonTiles
	tips   []string
}

// NewThemeRegistry creates a registry from loaded definitions.
func NewThemeRegistry(themes []Theme, common CommonTiles, tips []string) *ThemeRegistry {
	return &ThemeRegistry{
		themes: themes,
		common: common,
		tips:   tips,
	}
}

// LoadThemeRegistry loads and creates a registry from the embedded data files.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	file, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(file.Themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	tips, err := LoadTips()
	if err != nil {
		return nil, err
	}
	return NewThemeRegistry(file.Themes, file.Common, tips), nil
}

// MustLoadThemeRegistry loads a registry, panicking on error.
func MustLoadThemeRegistry() *ThemeRegistry {
	registry, err := LoadThemeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Random picks a theme uniformly. It returns nil for an empty registry.
func (r *ThemeRegistry) Random(rng *rand.Rand) *Theme {
	if len(r.themes) == 0 {
		return nil
	}
	return &r.themes[rng.Intn(len(r.themes))]
}

// RandomTip picks a loading tip uniformly, or "" when there are none.
func (r *ThemeRegistry) RandomTip(rng *rand.Rand) string {
	if len(r.tips) == 0 {
		return ""
	}
	return r.tips[rng.Intn(len(r.tips))]
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *ThemeRegistry) GetByID(id string) *Theme {
	for i := range r.themes {
		if r.themes[i].ID == id {
			return &r.themes[i]
		}
	}
	return nil
}

// Common returns the theme-independent tiles.
func (r *ThemeRegistry) Common() CommonTiles {
	return r.common
}

// All returns all theme definitions.
func (r *ThemeRegistry) All() []Theme {
	return r.themes
}

// Count returns the number of themes in the registry.
func (r *ThemeRegistry) Count() int {
	return len(r.themes)
}
