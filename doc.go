// Package wayfind is an in-memory, observable graph-traversal library:
// a generic weighted digraph plus the three classic searches over it,
// with a grid-maze adapter on the side.
//
// What you get:
//
//	• core/     – generic Graph[V]: vertices, directed weighted edges,
//	              and an append-only observer list fed by tagged events
//	• bfs/      – breadth-first search with step-by-step event emission
//	• dfs/      – depth-first search, same contract over a LIFO frontier
//	• dijkstra/ – single-source shortest paths with path reconstruction
//	• mazegrid/ – builds a Graph[Juncture] from any rectangular
//	              grid-with-walls model
//
// Why wayfind?
//
//   - Deterministic – neighbor iteration follows insertion order, so a
//     traversal replays identically on an unmodified graph
//   - Observable – register any number of observers and watch every
//     visit, finish, and computed path as it happens
//   - Pure Go – no cgo, no hidden deps, single-threaded by contract
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a 2×2 maze with no walls becomes exactly this graph, each passage
//	contributing one edge per direction.
//
//	go get github.com/wayfind-go/wayfind
package wayfind
