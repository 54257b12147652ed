// Package mazegrid defines the Maze contract, the Juncture vertex
// type, and sentinel errors for the grid-to-graph adapter.
package mazegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze conversion.
var (
	// ErrNilMaze indicates a nil Maze was passed to Build.
	ErrNilMaze = errors.New("mazegrid: maze is nil")

	// ErrEmptyMaze indicates the maze reports a width or height below 1.
	ErrEmptyMaze = errors.New("mazegrid: maze must have at least one column and one row")
)

// Juncture is a grid coordinate pair used as the vertex type when a
// maze becomes a graph. (0,0) is the upper-left corner; Col grows
// rightward, Row grows downward. Equality is by value, so Juncture
// works directly as a core.Graph vertex.
type Juncture struct {
	Col, Row int
}

// Above returns the juncture one row up.
func (j Juncture) Above() Juncture { return Juncture{Col: j.Col, Row: j.Row - 1} }

// Left returns the juncture one column left.
func (j Juncture) Left() Juncture { return Juncture{Col: j.Col - 1, Row: j.Row} }

// String formats the juncture as "(col,row)".
func (j Juncture) String() string { return fmt.Sprintf("(%d,%d)", j.Col, j.Row) }

// Maze is the external grid-with-walls model the adapter consumes.
// Only "above" and "to the left" are ever queried: the row-major scan
// discovers every open passage from both of its sides, so the model
// never needs to answer for "below" or "to the right". The weight for
// a passage is assumed symmetric – both directed edges carry it.
//
// WallAbove/WallLeft and the weight accessors are only called for
// junctures with an in-bounds neighbor in that direction (row > 0,
// col > 0 respectively).
type Maze interface {
	// Width returns the number of juncture columns.
	Width() int

	// Height returns the number of juncture rows.
	Height() int

	// WallAbove reports a wall between j and the juncture above it.
	WallAbove(j Juncture) bool

	// WallLeft reports a wall between j and the juncture left of it.
	WallLeft(j Juncture) bool

	// WeightAbove returns the passage cost between j and the juncture
	// above it. Only consulted when WallAbove(j) is false.
	WeightAbove(j Juncture) int64

	// WeightLeft returns the passage cost between j and the juncture
	// left of it. Only consulted when WallLeft(j) is false.
	WeightLeft(j Juncture) int64
}
