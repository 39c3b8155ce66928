package tile

import "github.com/samdwyer/tilewalker/internal/grid"

// Floor is a flat walkable tile. In each horizontal direction it connects
// to the adjacent cell on its own floor and to the adjacent cell one floor
// down, which is how it steps down onto the top of a ramp. The downward
// link is one-way against another floor tile (that tile links its own
// floor, not upward), so floors on different levels never form an edge
// without a ramp between them.
type Floor struct {
	cell grid.Cell
}

// NewFloor creates a floor tile at the given cell.
func NewFloor(cell grid.Cell) *Floor {
	return &Floor{cell: cell}
}

// Cell returns the tile's grid position.
func (f *Floor) Cell() grid.Cell {
	return f.cell
}

// Kind returns KindFloor.
func (f *Floor) Kind() Kind {
	return KindFloor
}

// Links returns, per direction, the same-floor neighbor then the neighbor
// one floor down.
func (f *Floor) Links() []grid.Cell {
	links := make([]grid.Cell, 0, 2*len(grid.Directions))
	for _, d := range grid.Directions {
		side := f.cell.Shift(d)
		links = append(links, side, side.Below())
	}
	return links
}
