// Package dijkstra implements single-source shortest paths over a
// core.Graph using a min-heap with lazy decrease-key.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/wayfind-go/wayfind/core"
)

// Dijkstra computes minimum-cost paths from start to every vertex of g,
// then reconstructs the path to end.
//
// The loop repeatedly pops the cheapest unfinished vertex, commits it
// to the finished set with a core.VertexFinished event, and relaxes its
// outgoing edges. It NEVER stops early when end is finished: the entire
// vertex set is always processed, so Result.Dist carries full-graph
// cost information – this is a behavioral guarantee, not an
// inefficiency. Vertices no path reaches are committed last, in vertex
// insertion order, with Unreached set on their event; their cost is
// simply absent from Result.Dist.
//
// Event protocol: core.DijkstraBegun once before the loop, one
// core.VertexFinished per vertex, and core.PathComputed once with the
// ordered start→end sequence. An observer error aborts the run and is
// returned wrapped.
//
// Correctness relies on non-negative weights, which core.Graph enforces
// at AddEdge time.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra[V comparable](g *core.Graph[V], start, end V) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %v", ErrVertexNotFound, end)
	}

	n := g.VertexCount()
	r := &runner[V]{
		graph:    g,
		finished: make(map[V]bool, n),
		res: &Result[V]{
			Order: make([]V, 0, n),
			Dist:  make(map[V]int64, n),
			Prev:  make(map[V]V, n),
		},
	}

	if err := g.Emit(core.Event[V]{Kind: core.DijkstraBegun}); err != nil {
		return r.res, fmt.Errorf("dijkstra: observer aborted: %w", err)
	}

	// Seed: cost to the start is zero; every other vertex has no cost
	// yet – absence from Dist is the "infinity" representation.
	r.res.Dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &costItem[V]{vertex: start, cost: 0})

	if err := r.process(); err != nil {
		return r.res, err
	}
	if err := r.finishUnreached(); err != nil {
		return r.res, err
	}

	return r.res, r.reconstruct(start, end)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	graph    *core.Graph[V]
	finished map[V]bool
	pq       costPQ[V]
	res      *Result[V]
}

// process drains the heap, committing each vertex once and relaxing
// its outgoing edges.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*costItem[V])
		u := item.vertex

		// Lazy decrease-key: stale heap entries for an already
		// finished vertex are simply skipped.
		if r.finished[u] {
			continue
		}
		if err := r.finish(u, item.cost, false); err != nil {
			return err
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// finish commits u to the finished set and notifies observers.
func (r *runner[V]) finish(u V, cost int64, unreached bool) error {
	r.finished[u] = true
	r.res.Order = append(r.res.Order, u)
	ev := core.Event[V]{Kind: core.VertexFinished, Vertex: u, Cost: cost, Unreached: unreached}
	if err := r.graph.Emit(ev); err != nil {
		return fmt.Errorf("dijkstra: observer aborted at %v: %w", u, err)
	}

	return nil
}

// relax attempts to improve the cost of every out-neighbor of u,
// recording u as predecessor where a strictly cheaper path is found.
func (r *runner[V]) relax(u V) error {
	neighbors, err := r.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}
	for _, v := range neighbors {
		if r.finished[v] {
			continue
		}
		w, ok, err := r.graph.Weight(u, v)
		if err != nil || !ok {
			// A listed neighbor always has its edge; defend anyway.
			return fmt.Errorf("dijkstra: edge %v→%v vanished: %w", u, v, err)
		}
		candidate := r.res.Dist[u] + w
		current, reached := r.res.Dist[v]
		if reached && candidate >= current {
			continue
		}
		r.res.Dist[v] = candidate
		r.res.Prev[v] = u
		heap.Push(&r.pq, &costItem[V]{vertex: v, cost: candidate})
	}

	return nil
}

// finishUnreached commits every vertex the heap never produced, in
// vertex insertion order, flagged Unreached. The finished set always
// ends up covering the entire vertex set.
func (r *runner[V]) finishUnreached() error {
	for _, v := range r.graph.Vertices() {
		if r.finished[v] {
			continue
		}
		if err := r.finish(v, 0, true); err != nil {
			return err
		}
	}

	return nil
}

// reconstruct walks predecessor links backward from end to start,
// stores the forward path, and emits PathComputed.
func (r *runner[V]) reconstruct(start, end V) error {
	if _, reached := r.res.Dist[end]; !reached {
		return fmt.Errorf("%w: %v unreachable from %v", ErrNoPath, end, start)
	}

	// Build back-to-front, then reverse.
	path := []V{}
	for cur := end; cur != start; cur = r.res.Prev[cur] {
		path = append(path, cur)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	r.res.Path = path

	// Observers get their own copy; they may retain or mutate it.
	evPath := make([]V, len(path))
	copy(evPath, path)
	if err := r.graph.Emit(core.Event[V]{Kind: core.PathComputed, Path: evPath}); err != nil {
		return fmt.Errorf("dijkstra: observer aborted: %w", err)
	}

	return nil
}

// costItem pairs a vertex with a tentative cost for heap ordering.
type costItem[V comparable] struct {
	vertex V
	cost   int64
}

// costPQ is a min-heap of *costItem ordered by cost ascending, used
// with the lazy-decrease-key pattern: improvements push fresh entries
// and stale ones are skipped when popped.
type costPQ[V comparable] []*costItem[V]

func (pq costPQ[V]) Len() int           { return len(pq) }
func (pq costPQ[V]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq costPQ[V]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *costPQ[V]) Push(x any) { *pq = append(*pq, x.(*costItem[V])) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *costPQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
