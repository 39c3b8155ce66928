// Package scene instantiates board tiles as positioned nodes.
package scene

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilewalker/internal/board"
	"github.com/samdwyer/tilewalker/internal/grid"
	"github.com/samdwyer/tilewalker/internal/telemetry"
	"github.com/samdwyer/tilewalker/internal/tile"
)

// ErrAlreadyLoaded is returned when a scene is loaded a second time.
var ErrAlreadyLoaded = errors.New("scene already loaded")

// Node is one tile instantiated into the scene: a stable identity, the
// tile itself, and its world-space position.
type Node struct {
	ID       uuid.UUID
	Tile     tile.Tile
	Position grid.Vec3
}

// Scene holds the nodes instantiated from a board. A board loads into a
// scene exactly once; the scene is read-only afterwards.
type Scene struct {
	nodes  []Node
	byCell map[grid.Cell]*Node
	loaded bool
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{byCell: make(map[grid.Cell]*Node)}
}

// Load instantiates one node per placed tile, in the board's deterministic
// tile order. Each node gets a fresh UUID and its cell's world position.
func (s *Scene) Load(ctx context.Context, b *board.Board) error {
	tracer := telemetry.Tracer("scene")
	_, span := tracer.Start(ctx, "scene.load")
	defer span.End()

	if s.loaded {
		return ErrAlreadyLoaded
	}

	b.Each(func(t tile.Tile) {
		s.nodes = append(s.nodes, Node{
			ID:       uuid.New(),
			Tile:     t,
			Position: t.Cell().WorldPosition(),
		})
	})
	for i := range s.nodes {
		s.byCell[s.nodes[i].Tile.Cell()] = &s.nodes[i]
	}
	s.loaded = true

	span.SetAttributes(attribute.Int("scene.node_count", len(s.nodes)))
	return nil
}

// NodeAt returns the node occupying the cell, if any.
func (s *Scene) NodeAt(c grid.Cell) (*Node, bool) {
	n, ok := s.byCell[c]
	return n, ok
}

// Nodes returns all nodes in load order.
func (s *Scene) Nodes() []Node {
	return s.nodes
}

// Count returns the number of loaded nodes.
func (s *Scene) Count() int {
	return len(s.nodes)
}
