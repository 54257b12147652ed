// Package dijkstra defines result types and error definitions
// for single-source shortest paths over a core.Graph.
package dijkstra

import "errors"

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates the start or end vertex does not
	// exist in the graph. Unlike BFS/DFS, Dijkstra validates both:
	// path reconstruction needs the end vertex to exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrNoPath indicates the end vertex exists but no path from the
	// start reaches it. The full-graph cost pass still ran; only the
	// path reconstruction is impossible.
	ErrNoPath = errors.New("dijkstra: no path from start to end")
)

// Result holds the outcome of a Dijkstra run:
//   - Order: vertices in the sequence they were committed to the
//     finished set; unreached vertices come last, in insertion order.
//   - Dist: map from vertex to its minimum path cost from the start.
//     A vertex absent from Dist is unreachable – absence IS the
//     "infinity" representation; there is no numeric sentinel.
//   - Prev: map from vertex to its predecessor on the minimum-cost path.
//   - Path: the ordered start→end vertex sequence.
type Result[V comparable] struct {
	Order []V
	Dist  map[V]int64
	Prev  map[V]V
	Path  []V
}
