// Package dfs provides result types and error definitions
// for depth-first search over a core.Graph.
package dfs

import "errors"

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Result captures the outcome of a depth-first search:
//   - Order: vertices in visit sequence.
//   - Parent: map from vertex to the vertex it was first discovered from.
//   - Visited: flags which vertices were reached before termination.
//   - Found: whether the end vertex was visited. When false the stack
//     emptied silently; that is not an error.
type Result[V comparable] struct {
	Order   []V
	Parent  map[V]V
	Visited map[V]bool
	Found   bool
}
