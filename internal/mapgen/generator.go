// Package mapgen generates multi-floor map definitions.
package mapgen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilewalker/internal/grid"
	"github.com/samdwyer/tilewalker/internal/mapdef"
	"github.com/samdwyer/tilewalker/internal/telemetry"
)

const (
	// Default generated map dimensions
	DefaultCols   = 60
	DefaultRows   = 24
	DefaultFloors = 3

	// BSP parameters
	minRoomSize = 8  // Minimum room dimension (keeps ramp sites clear of walls)
	maxRoomSize = 15 // Maximum room dimension
	minLeafSize = 10 // Minimum BSP leaf size before stopping split
)

// Generate builds a map definition with the given dimensions: each floor is
// laid out with BSP rooms joined by corridors, then one ramp per floor pair
// connects each floor to the one above through a carved landing. The same
// rng state always produces the same map.
func Generate(ctx context.Context, cols, rows, floors int, rng *rand.Rand) (*mapdef.MapDef, error) {
	tracer := telemetry.Tracer("mapgen")
	_, span := tracer.Start(ctx, "mapgen.generate")
	defer span.End()

	if cols < minLeafSize+2 || rows < minLeafSize+2 {
		return nil, fmt.Errorf("generated maps need at least %dx%d cells, got %dx%d",
			minLeafSize+2, minLeafSize+2, cols, rows)
	}
	if floors < 1 {
		return nil, fmt.Errorf("generated maps need at least one floor, got %d", floors)
	}

	startTime := time.Now()

	g := &generator{cols: cols, rows: rows, rng: rng}
	for f := 0; f < floors; f++ {
		g.levels = append(g.levels, g.generateLevel())
	}
	for f := 0; f < floors-1; f++ {
		if err := g.placeRamp(f); err != nil {
			return nil, err
		}
	}

	roomCount := 0
	for _, lv := range g.levels {
		roomCount += len(lv.rooms)
	}
	span.SetAttributes(
		attribute.Int("mapgen.cols", cols),
		attribute.Int("mapgen.rows", rows),
		attribute.Int("mapgen.floors", floors),
		attribute.Int("mapgen.room_count", roomCount),
		attribute.Int64("mapgen.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return g.mapDef(), nil
}

// room is a rectangular open area on one floor.
type room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center coordinates of the room.
func (r room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// level is one floor's rune grid plus its rooms.
type level struct {
	cells [][]rune
	rooms []room
	// landing cells must stay plain floor; a ramp from the level below
	// arrives on them.
	landings map[grid.Cell]bool
}

type generator struct {
	cols   int
	rows   int
	rng    *rand.Rand
	levels []*level
}

// generateLevel lays out one floor: walls everywhere, then BSP rooms, then
// corridors between sibling subtrees.
func (g *generator) generateLevel() *level {
	cells := make([][]rune, g.rows)
	for y := range cells {
		cells[y] = make([]rune, g.cols)
		for x := range cells[y] {
			cells[y][x] = mapdef.RuneEmpty
		}
	}

	lv := &level{cells: cells, landings: map[grid.Cell]bool{}}

	root := &bspNode{
		x:      1,
		y:      1,
		width:  g.cols - 2,
		height: g.rows - 2,
	}
	g.splitNode(root)
	g.createRooms(lv, root)
	g.connectRooms(lv, root)

	// Degenerate splits can leave a floor without rooms; carve a central
	// fallback room so every floor has somewhere to stand.
	if len(lv.rooms) == 0 {
		w := min(maxRoomSize, g.cols-2)
		h := min(maxRoomSize, g.rows-2)
		r := room{X: (g.cols - w) / 2, Y: (g.rows - h) / 2, Width: w, Height: h}
		lv.rooms = append(lv.rooms, r)
		g.carveRoom(lv, r)
	}

	return lv
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (g *generator) splitNode(node *bspNode) {
	// Stop if too small to split
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	// Determine split direction
	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false // Split vertically (left/right)
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true // Split horizontally (top/bottom)
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return // Can't split
	}

	var splitPos int
	if splitHorizontally {
		lo, hi := minLeafSize, node.height-minLeafSize
		if hi <= lo {
			return
		}
		splitPos = lo + g.rng.Intn(hi-lo+1)
	} else {
		lo, hi := minLeafSize, node.width-minLeafSize
		if hi <= lo {
			return
		}
		splitPos = lo + g.rng.Intn(hi-lo+1)
	}

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree.
func (g *generator) createRooms(lv *level, node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		g.createRooms(lv, node.left)
		g.createRooms(lv, node.right)
		return
	}

	roomWidth := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize+1))
	roomHeight := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize+1))

	if roomWidth > node.width-2 {
		roomWidth = node.width - 2
	}
	if roomHeight > node.height-2 {
		roomHeight = node.height - 2
	}
	if roomWidth < minRoomSize || roomHeight < minRoomSize {
		return // Skip if too small
	}

	roomX := node.x + 1 + g.rng.Intn(node.width-roomWidth-1)
	roomY := node.y + 1 + g.rng.Intn(node.height-roomHeight-1)

	r := room{X: roomX, Y: roomY, Width: roomWidth, Height: roomHeight}
	node.room = &r
	lv.rooms = append(lv.rooms, r)
	g.carveRoom(lv, r)
}

// carveRoom sets all cells within the room to floor.
func (g *generator) carveRoom(lv *level, r room) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			g.carve(lv, x, y)
		}
	}
}

// connectRooms joins each pair of sibling subtrees with a corridor.
func (g *generator) connectRooms(lv *level, node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectRooms(lv, node.left)
	g.connectRooms(lv, node.right)

	leftRoom := g.getRoom(node.left)
	rightRoom := g.getRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		g.carveCorridor(lv, *leftRoom, *rightRoom)
	}
}

// getRoom returns a room from a subtree (any room will do).
func (g *generator) getRoom(node *bspNode) *room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if r := g.getRoom(node.left); r != nil {
		return r
	}
	return g.getRoom(node.right)
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (g *generator) carveCorridor(lv *level, r1, r2 room) {
	x1, y1 := r1.Center()
	x2, y2 := r2.Center()

	if g.rng.Intn(2) == 0 {
		g.carveHorizontalTunnel(lv, x1, x2, y1)
		g.carveVerticalTunnel(lv, y1, y2, x2)
	} else {
		g.carveVerticalTunnel(lv, y1, y2, x1)
		g.carveHorizontalTunnel(lv, x1, x2, y2)
	}
}

func (g *generator) carveHorizontalTunnel(lv *level, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carve(lv, x, y)
	}
}

func (g *generator) carveVerticalTunnel(lv *level, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carve(lv, x, y)
	}
}

// carve opens a single cell, leaving the outer border and ramps intact.
func (g *generator) carve(lv *level, x, y int) {
	if x <= 0 || x >= g.cols-1 || y <= 0 || y >= g.rows-1 {
		return
	}
	if lv.cells[y][x] == mapdef.RuneEmpty {
		lv.cells[y][x] = mapdef.RuneFloor
	}
}

// placeRamp connects floor f to floor f+1: an east-ascending ramp at the
// center of one of f's rooms, a landing carved on f+1, and a corridor from
// the landing to one of f+1's rooms. Room interiors are at least 8 cells
// wide, so traffic on f routes around the ramp cell.
func (g *generator) placeRamp(f int) error {
	lower, upper := g.levels[f], g.levels[f+1]

	order := g.rng.Perm(len(lower.rooms))
	for _, ri := range order {
		cx, cy := lower.rooms[ri].Center()
		site := grid.Cell{Col: cx, Row: cy, Floor: f}

		if lower.landings[site] {
			continue // a ramp from below arrives here
		}
		if lower.cells[cy][cx] != mapdef.RuneFloor || lower.cells[cy][cx-1] != mapdef.RuneFloor {
			continue
		}
		if cx+1 >= g.cols-1 {
			continue
		}

		lower.cells[cy][cx] = mapdef.RuneForRamp(grid.East)
		g.carve(upper, cx+1, cy)
		upper.landings[grid.Cell{Col: cx + 1, Row: cy, Floor: f + 1}] = true

		// Join the landing to the upper floor's room network.
		target := upper.rooms[g.rng.Intn(len(upper.rooms))]
		tx, ty := target.Center()
		if g.rng.Intn(2) == 0 {
			g.carveHorizontalTunnel(upper, cx+1, tx, cy)
			g.carveVerticalTunnel(upper, cy, ty, tx)
		} else {
			g.carveVerticalTunnel(upper, cy, ty, cx+1)
			g.carveHorizontalTunnel(upper, cx+1, tx, ty)
		}
		return nil
	}

	return fmt.Errorf("no usable ramp site between floors %d and %d", f, f+1)
}

// mapDef assembles the generated levels into a map definition.
func (g *generator) mapDef() *mapdef.MapDef {
	def := &mapdef.MapDef{
		Name: "generated",
		Cols: g.cols,
		Rows: g.rows,
	}
	for _, lv := range g.levels {
		rows := make([]string, g.rows)
		for y, line := range lv.cells {
			rows[y] = string(line)
		}
		def.Floors = append(def.Floors, rows)
	}
	return def
}
