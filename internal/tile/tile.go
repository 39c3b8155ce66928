// Package tile provides the tile variants that occupy board cells.
package tile

import "github.com/samdwyer/tilewalker/internal/grid"

// Kind identifies a tile variant.
type Kind int

const (
	KindFloor Kind = iota
	KindRamp
)

// String returns the kind's data identifier.
func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindRamp:
		return "ramp"
	default:
		return "unknown"
	}
}

// Tile is a single entity occupying one board cell. Each variant decides
// which adjacent cells it is willing to connect to; the board turns mutual
// willingness into graph edges. A tile never guarantees its links are
// reciprocated.
type Tile interface {
	// Cell returns the grid position the tile occupies.
	Cell() grid.Cell
	// Kind returns the tile's variant.
	Kind() Kind
	// Links enumerates the cells this tile is willing to connect to,
	// in a fixed order. Candidates may be out of bounds or empty; the
	// board filters them.
	Links() []grid.Cell
}
