package core

import "fmt"

// AddVertex inserts v with an empty outgoing-edge set.
// Returns ErrDuplicateVertex if v is already present.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) error {
	if g.HasVertex(v) {
		return fmt.Errorf("%w: %v", ErrDuplicateVertex, v)
	}
	g.verts[v] = struct{}{}
	g.order = append(g.order, v)

	return nil
}

// HasVertex reports whether v is present in the graph.
// A nil or empty graph answers false rather than erroring.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	if g == nil || g.verts == nil {
		return false
	}
	_, ok := g.verts[v]

	return ok
}

// AddEdge inserts or overwrites the directed edge from→to with the
// given weight. Both endpoints must already exist and weight must be
// non-negative; otherwise ErrInvalidEdge is returned and the graph is
// left untouched. No reverse edge is added implicitly.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(from, to V, weight int64) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: from-vertex %v not in graph", ErrInvalidEdge, from)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: to-vertex %v not in graph", ErrInvalidEdge, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: negative weight %d", ErrInvalidEdge, weight)
	}

	key := edgeKey[V]{from: from, to: to}
	if _, exists := g.weights[key]; !exists {
		// First edge for this ordered pair: record the neighbor once,
		// preserving insertion order for deterministic traversal.
		g.adj[from] = append(g.adj[from], to)
	}
	g.weights[key] = weight

	return nil
}

// Weight returns the weight of the edge from→to. The boolean reports
// whether the edge exists; a missing edge between two valid vertices is
// not an error. Returns ErrInvalidEdge if either vertex is absent.
// Complexity: O(1).
func (g *Graph[V]) Weight(from, to V) (int64, bool, error) {
	if !g.HasVertex(from) {
		return 0, false, fmt.Errorf("%w: from-vertex %v not in graph", ErrInvalidEdge, from)
	}
	if !g.HasVertex(to) {
		return 0, false, fmt.Errorf("%w: to-vertex %v not in graph", ErrInvalidEdge, to)
	}
	w, ok := g.weights[edgeKey[V]{from: from, to: to}]

	return w, ok, nil
}

// Neighbors returns the out-neighbors of v in insertion order.
// The slice is a copy; mutating it does not affect the graph.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]V, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Vertices returns all vertices in insertion order, copied.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph[V]) VertexCount() int {
	if g == nil {
		return 0
	}

	return len(g.order)
}

// EdgeCount returns the number of directed edges.
func (g *Graph[V]) EdgeCount() int {
	if g == nil {
		return 0
	}

	return len(g.weights)
}

// Observe appends fn to the observer list. Observers are notified in
// registration order for every event; there is no removal and no
// duplicate detection.
func (g *Graph[V]) Observe(fn Observer[V]) {
	g.observers = append(g.observers, fn)
}

// Emit broadcasts ev to every registered observer in registration
// order, synchronously. The first observer error stops the broadcast
// and is returned; the traversal that emitted ev aborts with it.
func (g *Graph[V]) Emit(ev Event[V]) error {
	for _, fn := range g.observers {
		if err := fn(ev); err != nil {
			return err
		}
	}

	return nil
}
