// Package mapdef provides the YAML map-description format and its parser.
package mapdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/tilewalker/internal/grid"
)

// Slot runes used in floor row strings.
const (
	RuneEmpty     = '#'
	RuneFloor     = '.'
	RuneRampNorth = '^'
	RuneRampEast  = '>'
	RuneRampSouth = 'v'
	RuneRampWest  = '<'
)

// MapDef describes a board as parsed from YAML: dimensions plus one block
// of row strings per floor, bottom floor first. Each rune in a row selects
// the tile for that slot.
type MapDef struct {
	Name   string     `yaml:"name"`
	Cols   int        `yaml:"cols"`
	Rows   int        `yaml:"rows"`
	Floors [][]string `yaml:"floors"`
}

// Parse unmarshals and validates a map definition.
func Parse(data []byte) (*MapDef, error) {
	var def MapDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse map definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads and parses a map definition from disk.
func Load(path string) (*MapDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Validate checks dimensions and slot runes. Every floor must have exactly
// Rows rows and every row exactly Cols runes.
func (d *MapDef) Validate() error {
	if d.Cols <= 0 || d.Rows <= 0 {
		return fmt.Errorf("map %q: cols and rows must be positive, got %dx%d", d.Name, d.Cols, d.Rows)
	}
	if len(d.Floors) == 0 {
		return fmt.Errorf("map %q: at least one floor is required", d.Name)
	}

	for f, floor := range d.Floors {
		if len(floor) != d.Rows {
			return fmt.Errorf("map %q: floor %d has %d rows, want %d", d.Name, f, len(floor), d.Rows)
		}
		for r, row := range floor {
			runes := []rune(row)
			if len(runes) != d.Cols {
				return fmt.Errorf("map %q: floor %d row %d has %d columns, want %d", d.Name, f, r, len(runes), d.Cols)
			}
			for col, ch := range runes {
				if _, _, err := SlotFor(ch); err != nil {
					return fmt.Errorf("map %q: floor %d row %d col %d: %w", d.Name, f, r, col, err)
				}
			}
		}
	}
	return nil
}

// FloorCount returns the number of floors in the definition.
func (d *MapDef) FloorCount() int {
	return len(d.Floors)
}

// Slot describes what a map rune puts in a cell.
type Slot int

const (
	// SlotEmpty leaves the cell without a tile.
	SlotEmpty Slot = iota
	// SlotFloor places a floor tile.
	SlotFloor
	// SlotRamp places a ramp tile; the rune encodes its ascent direction.
	SlotRamp
)

// SlotFor maps a row rune to its slot type and, for ramps, the ascent
// direction. Unknown runes are rejected.
func SlotFor(ch rune) (Slot, grid.Direction, error) {
	switch ch {
	case RuneEmpty:
		return SlotEmpty, grid.North, nil
	case RuneFloor:
		return SlotFloor, grid.North, nil
	case RuneRampNorth:
		return SlotRamp, grid.North, nil
	case RuneRampEast:
		return SlotRamp, grid.East, nil
	case RuneRampSouth:
		return SlotRamp, grid.South, nil
	case RuneRampWest:
		return SlotRamp, grid.West, nil
	default:
		return SlotEmpty, grid.North, fmt.Errorf("unknown slot rune %q", ch)
	}
}

// RuneForRamp returns the row rune encoding a ramp ascending in the given
// direction.
func RuneForRamp(d grid.Direction) rune {
	switch d {
	case grid.North:
		return RuneRampNorth
	case grid.East:
		return RuneRampEast
	case grid.South:
		return RuneRampSouth
	default:
		return RuneRampWest
	}
}
