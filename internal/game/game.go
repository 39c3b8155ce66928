package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilewalker/data"
	"github.com/samdwyer/tilewalker/internal/board"
	"github.com/samdwyer/tilewalker/internal/entity"
	"github.com/samdwyer/tilewalker/internal/grid"
	"github.com/samdwyer/tilewalker/internal/mapdef"
	"github.com/samdwyer/tilewalker/internal/mapgen"
	"github.com/samdwyer/tilewalker/internal/path"
	"github.com/samdwyer/tilewalker/internal/scene"
	"github.com/samdwyer/tilewalker/internal/telemetry"
	"github.com/samdwyer/tilewalker/internal/tile"
	"github.com/samdwyer/tilewalker/internal/tileset"
	"github.com/samdwyer/tilewalker/internal/ui"
)

// Game holds the entire viewer state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	rng      *rand.Rand

	board     *board.Board
	scene     *scene.Scene
	generated bool // board came from the generator, 'g' reshuffles it

	state  State
	floor  int
	cursor grid.Cell
	origin *grid.Cell
	path   []grid.Cell
	walker *entity.Walker
	status string

	running bool
}

// New creates a new viewer instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	tiles, err := tileset.LoadRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, tiles),
		rng:      rand.New(rand.NewSource(seed)),
		state:    StateRoam,
		running:  true,
	}, nil
}

// Run executes the main loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	def, err := g.loadDef(ctx)
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}
	if err := g.setBoard(ctx, def); err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}
	initSpan.SetAttributes(
		attribute.String("map.name", def.Name),
		attribute.Int("map.floors", def.FloorCount()),
		attribute.Int("map.tiles", g.board.TileCount()),
		attribute.Bool("map.generated", g.generated),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(ui.Frame{
			Board:  g.board,
			Scene:  g.scene,
			Floor:  g.floor,
			Cursor: g.cursor,
			Origin: g.origin,
			Path:   g.path,
			Walker: g.walker,
			Status: g.status,
		})

		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// loadDef resolves the configured map: embedded by name, a YAML file by
// path, or a generated one when no map is named.
func (g *Game) loadDef(ctx context.Context) (*mapdef.MapDef, error) {
	name := g.cfg.MapName
	if name == "" {
		g.generated = true
		return g.generate(ctx)
	}

	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return mapdef.Load(name)
	}

	raw, err := data.ReadMap(name)
	if err != nil {
		return nil, err
	}
	def, err := mapdef.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("embedded map %q: %w", name, err)
	}
	return def, nil
}

// generate produces a fresh map from the configured dimensions.
func (g *Game) generate(ctx context.Context) (*mapdef.MapDef, error) {
	cols, rows, floors := g.cfg.Cols, g.cfg.Rows, g.cfg.Floors
	if cols == 0 {
		cols = mapgen.DefaultCols
	}
	if rows == 0 {
		rows = mapgen.DefaultRows
	}
	if floors == 0 {
		floors = mapgen.DefaultFloors
	}
	return mapgen.Generate(ctx, cols, rows, floors, g.rng)
}

// setBoard builds the board and scene from a definition and resets the
// cursor onto the first tile of the ground floor.
func (g *Game) setBoard(ctx context.Context, def *mapdef.MapDef) error {
	b, err := board.Build(def)
	if err != nil {
		return err
	}

	s := scene.New()
	if err := s.Load(ctx, b); err != nil {
		return err
	}

	g.board = b
	g.scene = s
	g.floor = 0
	g.clearPath()

	g.cursor = grid.Cell{}
	placed := false
	b.Each(func(t tile.Tile) {
		if !placed && t.Cell().Floor == 0 {
			g.cursor = t.Cell()
			placed = true
		}
	})
	g.status = fmt.Sprintf("%s: %d tiles on %d floors", def.Name, b.TileCount(), b.Floors)
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.moveCursor(grid.North)
	case tcell.KeyDown:
		g.moveCursor(grid.South)
	case tcell.KeyLeft:
		g.moveCursor(grid.West)
	case tcell.KeyRight:
		g.moveCursor(grid.East)

	case tcell.KeyEnter:
		g.plot(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case '<':
			g.changeFloor(-1)
		case '>':
			g.changeFloor(1)
		case ' ':
			g.stepWalker()
		case 'c', 'C':
			g.clearPath()
			g.status = "cleared"
		case 'g', 'G':
			g.regenerate(ctx)
		}
	}
}

// moveCursor shifts the cursor, clamped to the board footprint.
func (g *Game) moveCursor(d grid.Direction) {
	next := g.cursor.Shift(d)
	if next.Col < 0 || next.Col >= g.board.Cols || next.Row < 0 || next.Row >= g.board.Rows {
		return
	}
	g.cursor = next
}

// changeFloor moves the active floor up or down, carrying the cursor along.
func (g *Game) changeFloor(delta int) {
	next := g.floor + delta
	if next < 0 || next >= g.board.Floors {
		return
	}
	g.floor = next
	g.cursor.Floor = next
}

// plot sets the origin on the first press and computes the path to the
// cursor on the second.
func (g *Game) plot(ctx context.Context) {
	if _, ok := g.board.At(g.cursor); !ok {
		g.status = "no tile under cursor"
		return
	}

	if g.origin == nil {
		origin := g.cursor
		g.origin = &origin
		g.status = fmt.Sprintf("origin %s; move to a target and press enter", origin)
		return
	}

	found, err := path.Find(ctx, g.board, *g.origin, g.cursor)
	if err != nil {
		if errors.Is(err, path.ErrNoPath) {
			g.status = fmt.Sprintf("no route from %s to %s", g.origin, g.cursor)
		} else {
			g.status = err.Error()
		}
		return
	}

	g.path = found
	g.walker = entity.NewWalker(*g.origin)
	g.walker.FollowPath(found)
	g.state = StatePlotted
	g.status = fmt.Sprintf("path of %d cells; space to walk", len(found))
}

// stepWalker advances the walker one cell and follows it across floors.
func (g *Game) stepWalker() {
	if g.state != StatePlotted || g.walker == nil {
		return
	}
	if !g.walker.Step() {
		g.status = "walker arrived"
		return
	}

	at := g.walker.At()
	if at.Floor != g.floor {
		g.floor = at.Floor
		g.cursor.Floor = at.Floor
	}
	if g.walker.Walking() {
		g.status = fmt.Sprintf("walking, %d cells to go", len(g.walker.Remaining()))
	} else {
		g.status = "walker arrived"
	}
}

// clearPath drops the plotted path, origin, and walker.
func (g *Game) clearPath() {
	g.origin = nil
	g.path = nil
	g.walker = nil
	g.state = StateRoam
}

// regenerate reshuffles a generated board in place. Maps loaded from a
// definition stay as they are.
func (g *Game) regenerate(ctx context.Context) {
	if !g.generated {
		g.status = "map is fixed; only generated maps reshuffle"
		return
	}

	def, err := g.generate(ctx)
	if err != nil {
		g.status = err.Error()
		return
	}
	if err := g.setBoard(ctx, def); err != nil {
		g.status = err.Error()
	}
}

// Close cleans up viewer resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
