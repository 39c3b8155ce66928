package tileset

import (
	"errors"

	"github.com/samdwyer/tilewalker/internal/grid"
	"github.com/samdwyer/tilewalker/internal/tile"
)

// TileDef defines how one tile kind renders, loaded from JSON.
type TileDef struct {
	ID     string `json:"id"`     // Kind identifier ("floor", "ramp")
	Name   string `json:"name"`   // Display name
	Glyph  string `json:"glyph"`  // Single character for rendering
	Color  string `json:"color"`  // Foreground hex color (e.g. "#A8A29E")
	Ascent string `json:"ascent"` // For ramps: direction glyph overrides, "n,e,s,w"
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return []rune(d.Glyph)[0]
}

// AscentGlyph returns the glyph for a ramp ascending in the given
// direction, falling back to the base glyph when the def carries no
// per-direction overrides.
func (d *TileDef) AscentGlyph(dir grid.Direction) rune {
	runes := []rune(d.Ascent)
	if len(runes) < 4 {
		return d.GlyphRune()
	}
	switch dir {
	case grid.North:
		return runes[0]
	case grid.East:
		return runes[1]
	case grid.South:
		return runes[2]
	default:
		return runes[3]
	}
}

// TilesetFile represents the structure of tileset.json.
type TilesetFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tileset.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesetFile]("tileset.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}

// Registry holds loaded tile definitions keyed by kind identifier.
type Registry struct {
	defs map[string]*TileDef
	all  []TileDef
}

// NewRegistry creates a registry from loaded tile definitions.
func NewRegistry(defs []TileDef) *Registry {
	r := &Registry{
		defs: make(map[string]*TileDef),
		all:  defs,
	}
	for i := range defs {
		r.defs[defs[i].ID] = &defs[i]
	}
	return r
}

// LoadRegistry loads and creates a registry from the embedded tileset.json.
func LoadRegistry() (*Registry, error) {
	defs, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no tile definitions loaded from tileset.json")
	}
	return NewRegistry(defs), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *TileDef {
	return r.defs[id]
}

// ForKind returns the definition for a tile kind, or nil if not found.
func (r *Registry) ForKind(k tile.Kind) *TileDef {
	return r.defs[k.String()]
}

// All returns all tile definitions.
func (r *Registry) All() []TileDef {
	return r.all
}

// Count returns the number of tile kinds in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
