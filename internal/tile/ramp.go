package tile

import "github.com/samdwyer/tilewalker/internal/grid"

// Ramp is an inclined tile joining two floors. It connects along its axis
// only: the cell behind it on its own floor (the low end) and the cell
// ahead of it one floor up (the high end). It never connects sideways, so
// a floor tile beside a ramp lists the ramp but the ramp does not list it
// back, and no edge forms.
type Ramp struct {
	cell   grid.Cell
	ascent grid.Direction
}

// NewRamp creates a ramp at the given cell ascending toward the given
// direction.
func NewRamp(cell grid.Cell, ascent grid.Direction) *Ramp {
	return &Ramp{cell: cell, ascent: ascent}
}

// Cell returns the tile's grid position.
func (r *Ramp) Cell() grid.Cell {
	return r.cell
}

// Kind returns KindRamp.
func (r *Ramp) Kind() Kind {
	return KindRamp
}

// Ascent returns the direction the ramp climbs toward.
func (r *Ramp) Ascent() grid.Direction {
	return r.ascent
}

// Links returns the low-end cell followed by the high-end cell.
func (r *Ramp) Links() []grid.Cell {
	low := r.cell.Shift(r.ascent.Opposite())
	high := r.cell.Shift(r.ascent).Above()
	return []grid.Cell{low, high}
}
