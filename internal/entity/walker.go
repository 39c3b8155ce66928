// Package entity provides the entities that move across the board.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/tilewalker/internal/grid"
)

// Walker is an entity standing on a tile that can follow a computed path
// one step at a time.
type Walker struct {
	ID     uuid.UUID
	Symbol rune // Display symbol

	cell grid.Cell
	path []grid.Cell // Remaining cells ahead of the walker
}

// NewWalker creates a walker standing on the given cell.
func NewWalker(cell grid.Cell) *Walker {
	return &Walker{
		ID:     uuid.New(),
		Symbol: '@',
		cell:   cell,
	}
}

// At returns the walker's current cell.
func (w *Walker) At() grid.Cell {
	return w.cell
}

// FollowPath hands the walker a path to walk. The path must start at the
// walker's current cell; the leading cell is dropped since the walker is
// already there.
func (w *Walker) FollowPath(path []grid.Cell) bool {
	if len(path) == 0 || path[0] != w.cell {
		return false
	}
	w.path = append([]grid.Cell(nil), path[1:]...)
	return true
}

// Step advances one cell along the path. It reports whether the walker
// moved; a walker with no path left stays put.
func (w *Walker) Step() bool {
	if len(w.path) == 0 {
		return false
	}
	w.cell = w.path[0]
	w.path = w.path[1:]
	return true
}

// Remaining returns the cells still ahead of the walker.
func (w *Walker) Remaining() []grid.Cell {
	return w.path
}

// Walking reports whether the walker still has path ahead.
func (w *Walker) Walking() bool {
	return len(w.path) > 0
}
