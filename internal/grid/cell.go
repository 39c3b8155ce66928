// Package grid provides the coordinate system for the tile board.
package grid

import "fmt"

// Cell identifies a single tile slot on the board by column, row, and floor.
// It is an immutable value; all methods return new cells.
type Cell struct {
	Col   int
	Row   int
	Floor int
}

// String returns a compact "col,row,floor" form for logs and errors.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Col, c.Row, c.Floor)
}

// Direction is one of the four horizontal compass directions.
type Direction int

const (
	North Direction = iota // -row
	East                   // +col
	South                  // +row
	West                   // -col
)

// Directions lists the horizontal directions in enumeration order.
// Neighbor expansion follows this order, which keeps path results stable.
var Directions = [4]Direction{North, East, South, West}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Delta returns the column and row offsets for one step in the direction.
func (d Direction) Delta() (dcol, drow int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Shift returns the cell one step away in the given direction on the same floor.
func (c Cell) Shift(d Direction) Cell {
	dcol, drow := d.Delta()
	return Cell{Col: c.Col + dcol, Row: c.Row + drow, Floor: c.Floor}
}

// Above returns the cell directly above, one floor up.
func (c Cell) Above() Cell {
	return Cell{Col: c.Col, Row: c.Row, Floor: c.Floor + 1}
}

// Below returns the cell directly below, one floor down.
func (c Cell) Below() Cell {
	return Cell{Col: c.Col, Row: c.Row, Floor: c.Floor - 1}
}
