// Package board provides the fixed-size 3D tile container and the walkable
// graph adapter over it.
package board

import (
	"fmt"

	"github.com/samdwyer/tilewalker/internal/grid"
	"github.com/samdwyer/tilewalker/internal/tile"
)

// Board holds one optional tile per cell of a cols x rows x floors grid.
// It owns its tiles for its lifetime and is not mutated after build.
type Board struct {
	Cols   int
	Rows   int
	Floors int
	tiles  []tile.Tile
}

// New creates an empty board with the given dimensions.
func New(cols, rows, floors int) (*Board, error) {
	if cols <= 0 || rows <= 0 || floors <= 0 {
		return nil, fmt.Errorf("board dimensions must be positive, got %dx%dx%d", cols, rows, floors)
	}
	return &Board{
		Cols:   cols,
		Rows:   rows,
		Floors: floors,
		tiles:  make([]tile.Tile, cols*rows*floors),
	}, nil
}

// InBounds reports whether the cell lies inside the board.
func (b *Board) InBounds(c grid.Cell) bool {
	return c.Col >= 0 && c.Col < b.Cols &&
		c.Row >= 0 && c.Row < b.Rows &&
		c.Floor >= 0 && c.Floor < b.Floors
}

// index maps a cell to its slot. Caller must have checked bounds.
func (b *Board) index(c grid.Cell) int {
	return (c.Floor*b.Rows+c.Row)*b.Cols + c.Col
}

// Place puts a tile into its cell's slot. It fails on out-of-bounds cells
// and on cells already holding a tile; every non-empty cell maps to exactly
// one tile.
func (b *Board) Place(t tile.Tile) error {
	c := t.Cell()
	if !b.InBounds(c) {
		return fmt.Errorf("cell %s is outside the %dx%dx%d board", c, b.Cols, b.Rows, b.Floors)
	}
	i := b.index(c)
	if b.tiles[i] != nil {
		return fmt.Errorf("cell %s already holds a tile", c)
	}
	b.tiles[i] = t
	return nil
}

// At returns the tile occupying the cell, if any. Out-of-bounds cells are
// simply empty.
func (b *Board) At(c grid.Cell) (tile.Tile, bool) {
	if !b.InBounds(c) {
		return nil, false
	}
	t := b.tiles[b.index(c)]
	return t, t != nil
}

// TileCount returns the number of placed tiles.
func (b *Board) TileCount() int {
	n := 0
	for _, t := range b.tiles {
		if t != nil {
			n++
		}
	}
	return n
}

// Each calls fn for every placed tile in slot order (floor-major, then row,
// then column). The order is deterministic.
func (b *Board) Each(fn func(t tile.Tile)) {
	for _, t := range b.tiles {
		if t != nil {
			fn(t)
		}
	}
}

// Neighbors returns the cells walkably connected to c, in the occupying
// tile's link-enumeration order. A candidate becomes a neighbor only when
// it is in bounds, holds a tile, and that tile links back to c; one-way
// links never form an edge. An empty cell has no neighbors.
func (b *Board) Neighbors(c grid.Cell) []grid.Cell {
	t, ok := b.At(c)
	if !ok {
		return nil
	}

	var neighbors []grid.Cell
	for _, cand := range t.Links() {
		other, ok := b.At(cand)
		if !ok {
			continue
		}
		if linksBack(other, c) {
			neighbors = append(neighbors, cand)
		}
	}
	return neighbors
}

// Cost returns the move cost between two connected cells. All edges cost 1;
// climbing a ramp is no more expensive than a flat step.
func (b *Board) Cost(from, to grid.Cell) int {
	return 1
}

func linksBack(t tile.Tile, c grid.Cell) bool {
	for _, l := range t.Links() {
		if l == c {
			return true
		}
	}
	return false
}
