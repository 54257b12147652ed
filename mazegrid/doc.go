// Package mazegrid turns a rectangular grid-with-walls ("maze") model
// into a core.Graph ready for the traversal packages.
//
// What
//
//   - Juncture: an immutable (column, row) coordinate pair, used as the
//     graph's vertex type.
//   - Maze: the contract an external maze model must satisfy –
//     dimensions, wall predicates for "above" and "to the left", and
//     the matching passage weights.
//   - Build(m): one vertex per cell, two directed edges (same weight,
//     opposite directions) per open passage.
//
// Symmetric discovery
//
//	The row-major, top-left scan means every passage is seen exactly
//	once, from its lower/right side, at the moment both its endpoints
//	already exist as vertices. The adapter therefore never asks the
//	maze about "below" or "to the right".
//
// A 2×2 maze with no interior walls yields 4 vertices and 8 directed
// edges – each of its 4 passages contributes one edge per direction.
//
// Maze construction, rendering, and solving UI are external concerns;
// this package only bridges a maze model into graph form.
//
// Errors
//
//   - ErrNilMaze    if the maze is nil.
//   - ErrEmptyMaze  if width or height < 1.
//   - Wrapped core errors (e.g. core.ErrInvalidEdge when the maze
//     reports a negative passage weight).
package mazegrid
