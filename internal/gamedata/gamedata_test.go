package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadThemes(t *testing.T) {
	file, err := LoadThemes()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	if len(file.Themes) != 3 {
		t.Errorf("Expected 3 themes, got %d", len(file.Themes))
	}

	expectedIDs := map[string]bool{"dungeon": false, "forest": false, "desert": false}
	for _, th := range file.Themes {
		if _, ok := expectedIDs[th.ID]; ok {
			expectedIDs[th.ID] = true
		}
		if len(th.Decorations) == 0 {
			t.Errorf("Theme %q has no decorations", th.ID)
		}
		if th.Floor.Sprite == "" || th.Wall.DarkSprite == "" {
			t.Errorf("Theme %q is missing tile sprites", th.ID)
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected theme %q not found", id)
		}
	}

	if file.Common.Key.Sprite != "key.png" {
		t.Errorf("Common key sprite = %q, want key.png", file.Common.Key.Sprite)
	}
}

func TestThemeRegistry(t *testing.T) {
	registry, err := LoadThemeRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 themes, got %d", registry.Count())
	}

	desert := registry.GetByID("desert")
	if desert == nil {
		t.Fatal("Desert not found by ID")
	}
	if desert.Wall.Sprite != "cactus.png" {
		t.Errorf("Expected desert wall 'cactus.png', got %q", desert.Wall.Sprite)
	}
	if registry.GetByID("space") != nil {
		t.Error("Unknown theme should be nil")
	}

	// Picks are deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 10; i++ {
		if registry.Random(rng1).ID != registry.Random(rng2).ID {
			t.Fatalf("Pick %d differs with the same seed", i)
		}
	}

	if tip := registry.RandomTip(rng1); tip == "" {
		t.Error("RandomTip() returned empty tip")
	}
}

func TestEmptyRegistry(t *testing.T) {
	registry := NewThemeRegistry(nil, CommonTiles{}, nil)
	rng := rand.New(rand.NewSource(1))

	if registry.Random(rng) != nil {
		t.Error("Random() on empty registry should be nil")
	}
	if registry.RandomTip(rng) != "" {
		t.Error("RandomTip() on empty registry should be empty")
	}
}

func TestThemeValidate(t *testing.T) {
	bad := Theme{ID: "bare"}
	if err := bad.Validate(); err == nil {
		t.Error("Theme without decorations should be invalid")
	}
	if err := (&Theme{}).Validate(); err == nil {
		t.Error("Theme without id should be invalid")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestTileDefMethods(t *testing.T) {
	def := TileDef{
		Sprite: "floor.png",
		Glyph:  "\"",
		Color:  "#7CFC00",
	}

	if def.GlyphRune() != '"' {
		t.Errorf("Expected glyph '\"', got %c", def.GlyphRune())
	}
	if def.LitColor() == tcell.ColorWhite {
		t.Error("LitColor() fell back to white for a valid colour")
	}
	if def.DimColor() != tcell.ColorDarkGray {
		t.Error("DimColor() without darkColor should fall back to dark grey")
	}
	if (TileDef{}).GlyphRune() != '?' {
		t.Error("Empty glyph should render as '?'")
	}
}
