package tile

import (
	"testing"

	"github.com/samdwyer/tilewalker/internal/grid"
)

func TestFloorLinks(t *testing.T) {
	f := NewFloor(grid.Cell{Col: 2, Row: 2, Floor: 1})

	links := f.Links()
	if len(links) != 8 {
		t.Fatalf("Floor should list 8 candidate links, got %d", len(links))
	}

	has := make(map[grid.Cell]bool, len(links))
	for _, c := range links {
		has[c] = true
	}

	// Same-floor neighbors in all four directions
	for _, d := range grid.Directions {
		side := f.Cell().Shift(d)
		if !has[side] {
			t.Errorf("Floor should link %s neighbor %v", d, side)
		}
		if !has[side.Below()] {
			t.Errorf("Floor should link %s neighbor one floor down %v", d, side.Below())
		}
	}

	// Never the cell directly above or below itself
	if has[f.Cell().Above()] || has[f.Cell().Below()] {
		t.Error("Floor must not link vertically through its own cell")
	}
}

func TestRampLinks(t *testing.T) {
	r := NewRamp(grid.Cell{Col: 1, Row: 3, Floor: 0}, grid.East)

	links := r.Links()
	if len(links) != 2 {
		t.Fatalf("Ramp should list exactly 2 links, got %d", len(links))
	}

	low := grid.Cell{Col: 0, Row: 3, Floor: 0}
	high := grid.Cell{Col: 2, Row: 3, Floor: 1}
	if links[0] != low {
		t.Errorf("Ramp low end = %v, want %v", links[0], low)
	}
	if links[1] != high {
		t.Errorf("Ramp high end = %v, want %v", links[1], high)
	}
}

func TestRampDoesNotLinkSideways(t *testing.T) {
	r := NewRamp(grid.Cell{Col: 5, Row: 5, Floor: 2}, grid.North)

	for _, c := range r.Links() {
		if c == r.Cell().Shift(grid.East) || c == r.Cell().Shift(grid.West) {
			t.Errorf("North-facing ramp must not link sideways, got %v", c)
		}
	}
}

func TestRampAscentPerDirection(t *testing.T) {
	base := grid.Cell{Col: 4, Row: 4, Floor: 1}

	for _, d := range grid.Directions {
		r := NewRamp(base, d)
		if r.Ascent() != d {
			t.Errorf("Ascent() = %s, want %s", r.Ascent(), d)
		}
		links := r.Links()
		wantHigh := base.Shift(d).Above()
		if links[1] != wantHigh {
			t.Errorf("Ramp ascending %s: high end = %v, want %v", d, links[1], wantHigh)
		}
		wantLow := base.Shift(d.Opposite())
		if links[0] != wantLow {
			t.Errorf("Ramp ascending %s: low end = %v, want %v", d, links[0], wantLow)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindFloor.String() != "floor" || KindRamp.String() != "ramp" {
		t.Errorf("Kind strings wrong: %s, %s", KindFloor, KindRamp)
	}
}
