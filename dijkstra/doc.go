// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a core.Graph, with observer notification per finished
// vertex and for the final reconstructed path.
//
// What
//
//   - Dijkstra(g, start, end) relaxes every edge reachable from start,
//     committing vertices to the finished set in order of increasing
//     path cost via a min-heap with lazy decrease-key.
//   - Returns a Result with the finish Order, the full Dist cost map,
//     predecessor links, and the reconstructed start→end Path.
//   - Emits DijkstraBegun, one VertexFinished per vertex (carrying the
//     final cost), and PathComputed with the ordered path.
//
// Full-graph completion
//
//	The loop deliberately does not stop when end is finished: every
//	vertex in the graph is processed, so callers get complete cost
//	information, and vertices no path reaches are finished last with
//	their event flagged Unreached. Treat this as a contract, not an
//	inefficiency.
//
// No infinity sentinel
//
//	A vertex's tentative cost is "infinite" by being absent from the
//	cost map. There is no large magic constant, so results stay correct
//	on graphs whose true path costs are arbitrarily large.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) (heap may hold stale duplicates)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrVertexNotFound  if start or end does not exist.
//   - ErrNoPath          if end exists but is unreachable from start;
//     the cost pass still completed and Result.Dist is valid.
//   - Wrapped observer errors propagate and abort the run.
//
// Non-negative weights are a precondition; core.Graph rejects negative
// weights at AddEdge time, so any graph you can build is valid input.
package dijkstra
