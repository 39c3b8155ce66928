package tileset

import (
	"testing"

	"github.com/samdwyer/tilewalker/internal/grid"
	"github.com/samdwyer/tilewalker/internal/tile"
)

func TestLoadTiles(t *testing.T) {
	defs, err := LoadTiles()
	if err != nil {
		t.Fatalf("Failed to load tiles: %v", err)
	}

	if len(defs) != 2 {
		t.Errorf("Expected 2 tile kinds, got %d", len(defs))
	}

	expectedIDs := map[string]bool{"floor": false, "ramp": false}
	for _, d := range defs {
		if _, ok := expectedIDs[d.ID]; ok {
			expectedIDs[d.ID] = true
		}
	}
	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected tile kind %q not found", id)
		}
	}
}

func TestRegistry(t *testing.T) {
	r, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if r.Count() != 2 {
		t.Errorf("Expected 2 tile kinds, got %d", r.Count())
	}

	floor := r.GetByID("floor")
	if floor == nil {
		t.Fatal("Floor not found by ID")
	}
	if floor.Name != "Floor" {
		t.Errorf("Expected name 'Floor', got %q", floor.Name)
	}
	if floor.GlyphRune() != '.' {
		t.Errorf("Floor glyph = %q, want '.'", floor.GlyphRune())
	}

	if r.GetByID("lava") != nil {
		t.Error("Unknown ID should return nil")
	}

	if r.ForKind(tile.KindRamp) == nil {
		t.Error("ForKind should resolve ramp defs")
	}
}

func TestAscentGlyph(t *testing.T) {
	r := MustLoadRegistry()
	ramp := r.ForKind(tile.KindRamp)
	if ramp == nil {
		t.Fatal("Ramp def missing")
	}

	cases := []struct {
		dir  grid.Direction
		want rune
	}{
		{grid.North, '^'},
		{grid.East, '>'},
		{grid.South, 'v'},
		{grid.West, '<'},
	}
	for _, tc := range cases {
		if got := ramp.AscentGlyph(tc.dir); got != tc.want {
			t.Errorf("AscentGlyph(%s) = %q, want %q", tc.dir, got, tc.want)
		}
	}

	// Defs without overrides fall back to the base glyph.
	bare := TileDef{Glyph: "/"}
	if bare.AscentGlyph(grid.North) != '/' {
		t.Error("AscentGlyph should fall back to the base glyph")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FF0000")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	r, g, b := c.RGB()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("Expected pure red, got %d,%d,%d", r, g, b)
	}

	if _, err := ParseHexColor("FF0000"); err != nil {
		t.Errorf("ParseHexColor should accept colors without #: %v", err)
	}

	if _, err := ParseHexColor("#F00"); err == nil {
		t.Error("ParseHexColor should reject short colors")
	}
	if _, err := ParseHexColor("#GGGGGG"); err == nil {
		t.Error("ParseHexColor should reject non-hex digits")
	}
}
