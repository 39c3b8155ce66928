// Package path provides shortest-path search over a walkable cell graph.
package path

import (
	"container/heap"
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilewalker/internal/grid"
	"github.com/samdwyer/tilewalker/internal/telemetry"
)

// ErrNoPath is returned when the goal is not reachable from the start.
var ErrNoPath = errors.New("no path between the given cells")

// Graph is the neighbor/cost view the search consumes. The board satisfies
// it; anything grid-shaped can.
type Graph interface {
	// Neighbors returns the cells connected to c, in a stable order.
	Neighbors(c grid.Cell) []grid.Cell
	// Cost returns the non-negative cost of moving between two connected cells.
	Cost(from, to grid.Cell) int
}

// Find returns the cheapest path from start to goal, inclusive of both
// endpoints, using uniform-cost search. Ties break by frontier insertion
// order and neighbors expand in the graph's enumeration order, so the same
// inputs always produce the same path.
func Find(ctx context.Context, g Graph, start, goal grid.Cell) ([]grid.Cell, error) {
	tracer := telemetry.Tracer("path")
	_, span := tracer.Start(ctx, "path.find")
	defer span.End()

	span.SetAttributes(
		attribute.String("path.start", start.String()),
		attribute.String("path.goal", goal.String()),
	)

	if start == goal {
		span.SetAttributes(attribute.Int("path.length", 1))
		return []grid.Cell{start}, nil
	}

	dist := map[grid.Cell]int{start: 0}
	prev := map[grid.Cell]grid.Cell{}
	done := map[grid.Cell]bool{}

	frontier := &cellQueue{}
	heap.Init(frontier)
	frontier.push(start, 0)

	expanded := 0
	for frontier.Len() > 0 {
		cur := frontier.pop()
		if done[cur] {
			continue
		}
		done[cur] = true
		expanded++

		if cur == goal {
			p := reconstruct(prev, start, goal)
			span.SetAttributes(
				attribute.Int("path.length", len(p)),
				attribute.Int("path.cost", dist[goal]),
				attribute.Int("path.expanded", expanded),
			)
			return p, nil
		}

		for _, next := range g.Neighbors(cur) {
			if done[next] {
				continue
			}
			step := g.Cost(cur, next)
			if step < 0 {
				return nil, fmt.Errorf("negative move cost from %s to %s", cur, next)
			}
			alt := dist[cur] + step
			if old, seen := dist[next]; !seen || alt < old {
				dist[next] = alt
				prev[next] = cur
				frontier.push(next, alt)
			}
		}
	}

	span.SetAttributes(attribute.Int("path.expanded", expanded))
	return nil, fmt.Errorf("%s to %s: %w", start, goal, ErrNoPath)
}

// reconstruct walks predecessor links back from the goal.
func reconstruct(prev map[grid.Cell]grid.Cell, start, goal grid.Cell) []grid.Cell {
	var rev []grid.Cell
	for c := goal; c != start; c = prev[c] {
		rev = append(rev, c)
	}
	rev = append(rev, start)

	out := make([]grid.Cell, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}

// cellQueue is a min-heap of frontier entries ordered by cost, with a
// monotonically increasing sequence number breaking ties in insertion
// order.
type cellQueue struct {
	items []queueItem
	seq   int
}

type queueItem struct {
	cell grid.Cell
	cost int
	seq  int
}

func (q *cellQueue) Len() int { return len(q.items) }

func (q *cellQueue) Less(i, j int) bool {
	if q.items[i].cost != q.items[j].cost {
		return q.items[i].cost < q.items[j].cost
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *cellQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *cellQueue) Push(x any) { q.items = append(q.items, x.(queueItem)) }

func (q *cellQueue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

func (q *cellQueue) push(c grid.Cell, cost int) {
	heap.Push(q, queueItem{cell: c, cost: cost, seq: q.seq})
	q.seq++
}

func (q *cellQueue) pop() grid.Cell {
	return heap.Pop(q).(queueItem).cell
}
