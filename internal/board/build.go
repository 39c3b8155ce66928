package board

import (
	"fmt"

	"github.com/samdwyer/tilewalker/internal/grid"
	"github.com/samdwyer/tilewalker/internal/mapdef"
	"github.com/samdwyer/tilewalker/internal/tile"
)

// Build constructs a board from a validated map definition. Floors are
// stacked bottom-first; each row rune places its slot's tile.
func Build(def *mapdef.MapDef) (*Board, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	b, err := New(def.Cols, def.Rows, def.FloorCount())
	if err != nil {
		return nil, err
	}

	for f, floor := range def.Floors {
		for r, row := range floor {
			for col, ch := range []rune(row) {
				slot, ascent, err := mapdef.SlotFor(ch)
				if err != nil {
					return nil, fmt.Errorf("map %q: floor %d row %d col %d: %w", def.Name, f, r, col, err)
				}

				cell := grid.Cell{Col: col, Row: r, Floor: f}
				var t tile.Tile
				switch slot {
				case mapdef.SlotFloor:
					t = tile.NewFloor(cell)
				case mapdef.SlotRamp:
					t = tile.NewRamp(cell, ascent)
				default:
					continue
				}

				if err := b.Place(t); err != nil {
					return nil, fmt.Errorf("map %q: %w", def.Name, err)
				}
			}
		}
	}
	return b, nil
}
