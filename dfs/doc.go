// Package dfs provides depth-first search over a core.Graph with
// synchronous observer notification at every lifecycle point.
//
// DFS shares its entire contract with package bfs – same validation,
// same Visited/SearchOver event protocol, same silent handling of an
// unreachable end – but drives the frontier as a LIFO stack, producing
// depth-first exploration order. DFSBegun fires once before anything is
// processed.
//
// The implementation is iterative: neighbors of the current vertex are
// pushed in the graph's insertion order, which means the most recently
// inserted neighbor is explored first. Duplicate stack entries are
// possible and suppressed at pop time, exactly mirroring the BFS queue
// discipline.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for stack, visited set, and result maps
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - Wrapped observer errors propagate and abort the search.
package dfs
