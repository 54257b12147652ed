// Package dfs provides depth-first search over a core.Graph,
// emitting observer events at every lifecycle point.
package dfs

import (
	"fmt"

	"github.com/wayfind-go/wayfind/core"
)

// walker encapsulates mutable DFS state for one run.
type walker[V comparable] struct {
	graph   *core.Graph[V]
	end     V
	stack   []V
	visited map[V]bool
	res     *Result[V]
}

// DFS explores g depth-first from start, stopping as soon as end is
// visited. The contract is identical to bfs.BFS except the frontier is
// a LIFO stack, so the search dives along one branch before backing up;
// core.DFSBegun replaces core.BFSBegun, and Visited/SearchOver keep
// their meaning.
//
// The visited check happens at pop time; a vertex may sit in the stack
// more than once but is visited at most once. Neighbors are pushed in
// the graph's insertion order, so the *last*-inserted neighbor is
// explored first and a run is deterministic.
//
// An unreachable (or absent) end empties the stack silently: no
// SearchOver, no error. An observer error aborts the search and is
// returned wrapped, alongside the partial Result.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS[V comparable](g *core.Graph[V], start, end V) (*Result[V], error) {
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
		stack:   make([]V, 0, n),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Order:   make([]V, 0, n),
			Parent:  make(map[V]V, n),
			Visited: make(map[V]bool, n),
		},
	}

	if err := g.Emit(core.Event[V]{Kind: core.DFSBegun}); err != nil {
		return w.res, fmt.Errorf("dfs: observer aborted: %w", err)
	}

	w.stack = append(w.stack, start)

	return w.res, w.loop()
}

// loop pops the stack until end is visited, the stack empties, or an
// observer aborts.
func (w *walker[V]) loop() error {
	for len(w.stack) > 0 {
		curr := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Dedup at pop: the same vertex may have been pushed from
		// several neighbors before its first visit.
		if w.visited[curr] {
			continue
		}
		w.visited[curr] = true
		w.res.Visited[curr] = true

		done, err := w.visit(curr)
		if err != nil || done {
			return err
		}
		if err := w.pushNeighbors(curr); err != nil {
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
		return true, fmt.Errorf("dfs: observer aborted at %v: %w", curr, err)
	}
	if curr != w.end {
		return false, nil
	}

	w.res.Found = true
	if err = w.graph.Emit(core.Event[V]{Kind: core.SearchOver}); err != nil {
		return true, fmt.Errorf("dfs: observer aborted: %w", err)
	}

	return true, nil
}

// pushNeighbors pushes every not-yet-visited neighbor of curr onto the
// stack, recording the parent on first discovery.
func (w *walker[V]) pushNeighbors(curr V) error {
	neighbors, err := w.graph.Neighbors(curr)
	if err != nil {
		// Unreachable on a well-formed graph: curr was popped, so it exists.
		return fmt.Errorf("dfs: neighbors of %v: %w", curr, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if _, seen := w.res.Parent[nbr]; !seen {
			w.res.Parent[nbr] = curr
		}
		w.stack = append(w.stack, nbr)
	}

	return nil
}
