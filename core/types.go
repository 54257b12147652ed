// Package core defines the central Graph type, its sentinel errors,
// and the tagged-event observer protocol shared by every traversal.
//
// This file declares Graph, Event, EventKind, Observer,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrDuplicateVertex - vertex already present on AddVertex.
//	ErrInvalidEdge     - edge references a missing vertex, or carries
//	                     a negative weight.
//	ErrVertexNotFound  - a query referenced a non-existent vertex.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates AddVertex was called with a vertex
	// already present in the graph.
	ErrDuplicateVertex = errors.New("core: vertex already in graph")

	// ErrInvalidEdge indicates an edge operation referenced a vertex
	// absent from the graph, or supplied a negative weight.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// EventKind tags an Event with the lifecycle point that produced it.
type EventKind int

const (
	// BFSBegun fires once before a breadth-first search processes anything.
	BFSBegun EventKind = iota

	// DFSBegun fires once before a depth-first search processes anything.
	DFSBegun

	// DijkstraBegun fires once before the shortest-path loop starts.
	DijkstraBegun

	// Visited fires when BFS or DFS visits a vertex for the first time.
	// Event.Vertex carries the vertex.
	Visited

	// SearchOver fires once when BFS or DFS visits its end vertex.
	// It never fires for an unreachable end.
	SearchOver

	// VertexFinished fires when Dijkstra commits a vertex to the
	// finished set. Event.Vertex and Event.Cost carry the vertex and
	// its final cost; Event.Unreached is set for vertices no path from
	// the source reaches, in which case Cost is meaningless.
	VertexFinished

	// PathComputed fires once when Dijkstra has reconstructed the
	// minimum-cost path. Event.Path carries the ordered vertex
	// sequence from start to end.
	PathComputed
)

// String returns the event kind name, for observers that log.
func (k EventKind) String() string {
	switch k {
	case BFSBegun:
		return "BFSBegun"
	case DFSBegun:
		return "DFSBegun"
	case DijkstraBegun:
		return "DijkstraBegun"
	case Visited:
		return "Visited"
	case SearchOver:
		return "SearchOver"
	case VertexFinished:
		return "VertexFinished"
	case PathComputed:
		return "PathComputed"
	default:
		return "Unknown"
	}
}

// Event is a single algorithm-progress notification. Kind selects which
// payload fields are meaningful; the rest are zero.
type Event[V comparable] struct {
	// Kind tags the lifecycle point.
	Kind EventKind

	// Vertex is set for Visited and VertexFinished events.
	Vertex V

	// Cost is the committed path cost for VertexFinished events.
	Cost int64

	// Unreached marks a VertexFinished vertex that no path from the
	// source reaches. Cost carries no meaning when set.
	Unreached bool

	// Path is the start→end vertex sequence for PathComputed events.
	// The slice is a copy; observers may retain it.
	Path []V
}

// Observer receives algorithm-progress events synchronously, on the
// algorithm caller's goroutine. Returning a non-nil error aborts the
// running algorithm and propagates to its caller; there is no isolation
// between observers.
type Observer[V comparable] func(Event[V]) error

// edgeKey identifies a directed edge by its ordered endpoint pair.
// At most one edge exists per key; re-adding overwrites the weight.
type edgeKey[V comparable] struct {
	from, to V
}

// Graph is a directed, edge-weighted graph over comparable vertex
// values. Edge storage is a single flat map keyed by the ordered
// (from, to) pair; per-vertex neighbor lists preserve insertion order
// so traversals are deterministic per run.
//
// A Graph owns all of its vertex and edge state exclusively: accessors
// return copies, never internal slices or maps. It is not safe for
// concurrent use; callers sharing a Graph across goroutines must
// serialize access themselves.
type Graph[V comparable] struct {
	// verts marks membership; order preserves insertion sequence.
	verts map[V]struct{}
	order []V

	// adj holds each vertex's out-neighbors in insertion order.
	// weights holds the single weight per ordered (from, to) pair.
	adj     map[V][]V
	weights map[edgeKey[V]]int64

	// observers grows only; there is no removal.
	observers []Observer[V]
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{
		verts:   make(map[V]struct{}),
		adj:     make(map[V][]V),
		weights: make(map[edgeKey[V]]int64),
	}
}
