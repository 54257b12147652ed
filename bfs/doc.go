// Package bfs provides breadth-first search over a core.Graph with
// synchronous observer notification at every lifecycle point.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     start vertex, terminating the moment an end vertex is visited.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Found: whether end was reached
//   - Drives the graph's registered observers: BFSBegun once up front,
//     Visited per first visit, SearchOver right after end is visited.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Animate or trace a search step by step through observers without
//     the algorithm knowing who is watching.
//
// Determinism
//
//	core.Graph enumerates neighbors in edge insertion order, and BFS
//	enqueues them in that order, so the visit sequence is fully
//	reproducible on an unmodified graph.
//
// Termination
//
//	Visiting end emits SearchOver and abandons the rest of the frontier
//	immediately. An unreachable (or absent) end drains the frontier
//	silently: no SearchOver, no error, Result.Found == false.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited set, and result maps
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - Wrapped observer errors: an observer returning non-nil aborts the
//     search in progress and its error surfaces to the caller.
package bfs
