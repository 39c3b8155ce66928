package mapdef

import (
	"strings"
	"testing"

	"github.com/samdwyer/tilewalker/internal/grid"
)

const sampleYAML = `
name: landing
cols: 3
rows: 2
floors:
  - - ".>#"
    - "..."
  - - "##."
    - "###"
`

func TestParse(t *testing.T) {
	def, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if def.Name != "landing" {
		t.Errorf("Name = %q, want %q", def.Name, "landing")
	}
	if def.Cols != 3 || def.Rows != 2 {
		t.Errorf("Dimensions = %dx%d, want 3x2", def.Cols, def.Rows)
	}
	if def.FloorCount() != 2 {
		t.Errorf("FloorCount = %d, want 2", def.FloorCount())
	}
	if def.Floors[0][0] != ".>#" {
		t.Errorf("First row = %q, want %q", def.Floors[0][0], ".>#")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("cols: [not a number"))
	if err == nil {
		t.Fatal("Parse should reject malformed YAML")
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		def  MapDef
		want string
	}{
		{
			name: "zero cols",
			def:  MapDef{Name: "m", Cols: 0, Rows: 1, Floors: [][]string{{""}}},
			want: "must be positive",
		},
		{
			name: "no floors",
			def:  MapDef{Name: "m", Cols: 1, Rows: 1},
			want: "at least one floor",
		},
		{
			name: "short floor",
			def:  MapDef{Name: "m", Cols: 2, Rows: 2, Floors: [][]string{{".."}}},
			want: "has 1 rows",
		},
		{
			name: "short row",
			def:  MapDef{Name: "m", Cols: 3, Rows: 1, Floors: [][]string{{".."}}},
			want: "has 2 columns",
		},
		{
			name: "unknown rune",
			def:  MapDef{Name: "m", Cols: 2, Rows: 1, Floors: [][]string{{".x"}}},
			want: "unknown slot rune",
		},
	}

	for _, tc := range cases {
		err := tc.def.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q should mention %q", tc.name, err, tc.want)
		}
	}
}

func TestSlotFor(t *testing.T) {
	cases := []struct {
		ch     rune
		slot   Slot
		ascent grid.Direction
	}{
		{RuneEmpty, SlotEmpty, grid.North},
		{RuneFloor, SlotFloor, grid.North},
		{RuneRampNorth, SlotRamp, grid.North},
		{RuneRampEast, SlotRamp, grid.East},
		{RuneRampSouth, SlotRamp, grid.South},
		{RuneRampWest, SlotRamp, grid.West},
	}

	for _, tc := range cases {
		slot, ascent, err := SlotFor(tc.ch)
		if err != nil {
			t.Errorf("SlotFor(%q) failed: %v", tc.ch, err)
			continue
		}
		if slot != tc.slot {
			t.Errorf("SlotFor(%q) slot = %v, want %v", tc.ch, slot, tc.slot)
		}
		if slot == SlotRamp && ascent != tc.ascent {
			t.Errorf("SlotFor(%q) ascent = %s, want %s", tc.ch, ascent, tc.ascent)
		}
	}

	if _, _, err := SlotFor('x'); err == nil {
		t.Error("SlotFor should reject unknown runes")
	}
}

func TestRuneForRampRoundTrip(t *testing.T) {
	for _, d := range grid.Directions {
		ch := RuneForRamp(d)
		slot, ascent, err := SlotFor(ch)
		if err != nil || slot != SlotRamp || ascent != d {
			t.Errorf("RuneForRamp(%s) = %q did not round-trip: %v %s %v", d, ch, slot, ascent, err)
		}
	}
}
