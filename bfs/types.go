// Package bfs provides result types and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Result holds the outcome of a BFS run:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start;
//     a vertex absent from Depth was never discovered.
//   - Parent: map from vertex to its predecessor in the BFS tree.
//   - Found: whether the end vertex was visited. When false the search
//     drained its frontier silently; that is not an error.
type Result[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
	Found  bool
}

// PathTo reconstructs the discovery path from the start vertex to dest
// by walking parent links. Returns an error if dest was never discovered.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
