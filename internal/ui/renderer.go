package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/tilewalker/internal/board"
	"github.com/samdwyer/tilewalker/internal/entity"
	"github.com/samdwyer/tilewalker/internal/grid"
	"github.com/samdwyer/tilewalker/internal/scene"
	"github.com/samdwyer/tilewalker/internal/tile"
	"github.com/samdwyer/tilewalker/internal/tileset"
)

// ghostDim is how far tile colors blend toward black when a tile is drawn
// as part of the see-through floor below the active one.
const ghostDim = 0.7

// Frame is everything the renderer needs for one draw of the active floor.
type Frame struct {
	Board  *board.Board
	Scene  *scene.Scene
	Floor  int
	Cursor grid.Cell
	Origin *grid.Cell
	Path   []grid.Cell
	Walker *entity.Walker
	Status string
}

// Renderer handles drawing the board to the screen one floor at a time.
type Renderer struct {
	screen *Screen
	styles map[tile.Kind]tcell.Style
	ghosts map[tile.Kind]tcell.Style
	tiles  *tileset.Registry
}

// NewRenderer creates a renderer drawing with the given tileset.
func NewRenderer(screen *Screen, tiles *tileset.Registry) *Renderer {
	r := &Renderer{
		screen: screen,
		styles: make(map[tile.Kind]tcell.Style),
		ghosts: make(map[tile.Kind]tcell.Style),
		tiles:  tiles,
	}
	for _, k := range []tile.Kind{tile.KindFloor, tile.KindRamp} {
		r.styles[k], r.ghosts[k] = kindStyles(tiles.ForKind(k))
	}
	return r
}

// kindStyles derives the normal and ghost styles from a tile definition.
// The ghost style blends the tile color toward black so the floor below
// the active one reads as depth.
func kindStyles(def *tileset.TileDef) (tcell.Style, tcell.Style) {
	if def == nil {
		return tcell.StyleDefault, tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}

	fg, err := tileset.ParseHexColor(def.Color)
	if err != nil {
		fg = tcell.ColorWhite
	}
	normal := tcell.StyleDefault.Foreground(fg)

	c, err := colorful.Hex(normalizeHex(def.Color))
	if err != nil {
		return normal, normal.Dim(true)
	}
	dimmed := c.BlendRgb(colorful.Color{}, ghostDim)
	dr, dg, db := dimmed.RGB255()
	ghost := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(dr), int32(dg), int32(db)))
	return normal, ghost
}

// normalizeHex ensures a leading # for colorful's parser.
func normalizeHex(hex string) string {
	if len(hex) > 0 && hex[0] == '#' {
		return hex
	}
	return "#" + hex
}

// Render draws one frame: the active floor, the floor below as ghosts,
// then the path, origin, walker, and cursor on top, and the status line.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	for row := 0; row < f.Board.Rows; row++ {
		for col := 0; col < f.Board.Cols; col++ {
			cell := grid.Cell{Col: col, Row: row, Floor: f.Floor}
			if t, ok := f.Board.At(cell); ok {
				r.drawTile(t, r.styles[t.Kind()])
				continue
			}
			if f.Floor > 0 {
				if t, ok := f.Board.At(cell.Below()); ok {
					r.drawTile(t, r.ghosts[t.Kind()])
				}
			}
		}
	}

	r.drawPath(f)

	if f.Origin != nil && f.Origin.Floor == f.Floor {
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		r.screen.SetContent(f.Origin.Col, f.Origin.Row, 'S', style)
	}

	if f.Walker != nil && f.Walker.At().Floor == f.Floor {
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.SetContent(f.Walker.At().Col, f.Walker.At().Row, f.Walker.Symbol, style)
	}

	if f.Cursor.Floor == f.Floor {
		r.highlightCursor(f)
	}

	r.renderStatus(f)
	r.screen.Show()
}

// drawTile draws a single tile at its column/row using its kind's glyph.
func (r *Renderer) drawTile(t tile.Tile, style tcell.Style) {
	def := r.tiles.ForKind(t.Kind())
	glyph := '?'
	if def != nil {
		glyph = def.GlyphRune()
		if ramp, ok := t.(*tile.Ramp); ok {
			glyph = def.AscentGlyph(ramp.Ascent())
		}
	}
	r.screen.SetContent(t.Cell().Col, t.Cell().Row, glyph, style)
}

// drawPath marks the plotted path's cells on the active floor.
func (r *Renderer) drawPath(f Frame) {
	style := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	for _, c := range f.Path {
		if c.Floor != f.Floor {
			continue
		}
		glyph := '*'
		if t, ok := f.Board.At(c); ok && t.Kind() == tile.KindRamp {
			glyph = '+'
		}
		r.screen.SetContent(c.Col, c.Row, glyph, style)
	}
}

// highlightCursor redraws the cursor cell in reverse video.
func (r *Renderer) highlightCursor(f Frame) {
	glyph := ' '
	style := tcell.StyleDefault.Reverse(true)
	if t, ok := f.Board.At(f.Cursor); ok {
		def := r.tiles.ForKind(t.Kind())
		if def != nil {
			glyph = def.GlyphRune()
		}
	}
	r.screen.SetContent(f.Cursor.Col, f.Cursor.Row, glyph, style)
}

// renderStatus draws the status line below the board, including the world
// position of the node under the cursor.
func (r *Renderer) renderStatus(f Frame) {
	world := ""
	if f.Scene != nil {
		if n, ok := f.Scene.NodeAt(f.Cursor); ok {
			world = fmt.Sprintf(" world (%.1f, %.1f, %.1f)", n.Position.X, n.Position.Y, n.Position.Z)
		}
	}
	line := fmt.Sprintf("floor %d/%d  cursor %s%s  %s",
		f.Floor+1, f.Board.Floors, f.Cursor, world, f.Status)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range line {
		r.screen.SetContent(i, f.Board.Rows+1, ch, style)
	}
}
