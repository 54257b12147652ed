// Package core provides the generic, directed, edge-weighted Graph at
// the heart of wayfind, plus the tagged-event observer protocol every
// traversal package feeds.
//
// What
//
//   - Graph[V] over any comparable vertex type: AddVertex, HasVertex,
//     AddEdge, Weight, Neighbors, Vertices, Observe, Emit.
//   - At most one edge per ordered (from, to) pair; re-adding the pair
//     silently overwrites the weight. Bidirectional connections are two
//     explicit edges.
//   - Edge weights are non-negative int64; negative weights are rejected
//     at the door with ErrInvalidEdge.
//   - Observer[V] callables receive Event[V] notifications (Visited,
//     VertexFinished, PathComputed, ...) in registration order.
//
// Why
//
//   - A single flat edge map keyed by the ordered vertex pair keeps
//     ownership unambiguous: the Graph owns every byte of edge state,
//     and accessors hand out copies only.
//   - Insertion-ordered vertex and neighbor enumeration makes every
//     traversal reproducible on an unmodified graph.
//
// Errors
//
//   - ErrDuplicateVertex  if AddVertex sees an existing vertex.
//   - ErrInvalidEdge      if AddEdge/Weight references a missing vertex,
//     or AddEdge is given a negative weight. A failed AddEdge never
//     mutates the graph.
//   - ErrVertexNotFound   if Neighbors is asked about an absent vertex.
//
// A missing edge between two valid vertices is NOT an error: Weight
// reports it through its boolean, the explicit absent value.
//
// Concurrency
//
//	None. The Graph is single-threaded by contract; callers sharing one
//	across goroutines must serialize access. Observer callbacks run
//	inline on the algorithm caller's goroutine.
package core
