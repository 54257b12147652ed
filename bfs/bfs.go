// Package bfs provides breadth-first search over a core.Graph,
// emitting observer events at every lifecycle point.
package bfs

import (
	"fmt"

	"github.com/wayfind-go/wayfind/core"
)

// walker encapsulates mutable BFS state for one run.
type walker[V comparable] struct {
	graph   *core.Graph[V]
	end     V
	queue   []V
	visited map[V]bool
	res     *Result[V]
}

// BFS explores g in order of increasing edge-count distance from start,
// stopping as soon as end is visited.
//
// Event protocol, via the graph's observers: core.BFSBegun fires once
// before any processing; core.Visited fires for each vertex on its
// first visit; core.SearchOver fires immediately after end is visited,
// and the remaining frontier is abandoned. If end is unreachable the
// frontier drains with no SearchOver and no error (Result.Found=false).
// A vertex absent from the graph behaves exactly like an unreachable
// one, so end is not validated – only start is.
//
// The visited check happens at dequeue time; a vertex may sit in the
// frontier more than once but is visited at most once. Neighbors are
// enqueued in the graph's insertion order, so a run is deterministic.
//
// An observer error aborts the search and is returned wrapped; the
// partial Result accumulated so far is returned alongside it.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS[V comparable](g *core.Graph[V], start, end V) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[V]{
		graph:   g,
		end:     end,
		queue:   make([]V, 0, n),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	if err := g.Emit(core.Event[V]{Kind: core.BFSBegun}); err != nil {
		return w.res, fmt.Errorf("bfs: observer aborted: %w", err)
	}

	// Seed the frontier with start at depth 0.
	w.queue = append(w.queue, start)
	w.res.Depth[start] = 0

	return w.res, w.loop()
}

// loop processes the queue until end is visited, the frontier drains,
// or an observer aborts.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		curr := w.queue[0]
		w.queue = w.queue[1:]

		// Dedup at dequeue: the same vertex may have been enqueued
		// from several neighbors before its first visit.
		if w.visited[curr] {
			continue
		}
		w.visited[curr] = true

		done, err := w.visit(curr)
		if err != nil || done {
			return err
		}
		if err := w.enqueueNeighbors(curr); err != nil {
			return err
		}
	}

	return nil
}

// visit records curr, emits Visited, and emits SearchOver when curr is
// the end vertex. Reports done=true to terminate the search.
func (w *walker[V]) visit(curr V) (done bool, err error) {
	w.res.Order = append(w.res.Order, curr)
	if err = w.graph.Emit(core.Event[V]{Kind: core.Visited, Vertex: curr}); err != nil {
		return true, fmt.Errorf("bfs: observer aborted at %v: %w", curr, err)
	}
	if curr != w.end {
		return false, nil
	}

	w.res.Found = true
	if err = w.graph.Emit(core.Event[V]{Kind: core.SearchOver}); err != nil {
		return true, fmt.Errorf("bfs: observer aborted: %w", err)
	}

	return true, nil
}

// enqueueNeighbors appends every not-yet-visited neighbor of curr to
// the frontier, recording depth and parent on first discovery.
func (w *walker[V]) enqueueNeighbors(curr V) error {
	neighbors, err := w.graph.Neighbors(curr)
	if err != nil {
		// Unreachable on a well-formed graph: curr was dequeued, so it exists.
		return fmt.Errorf("bfs: neighbors of %v: %w", curr, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.res.Depth[nbr] = w.res.Depth[curr] + 1
			w.res.Parent[nbr] = curr
		}
		w.queue = append(w.queue, nbr)
	}

	return nil
}
