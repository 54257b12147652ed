// Package mazegrid converts a rectangular grid-with-walls model into a
// core.Graph of Junctures with bidirectional weighted passages.
package mazegrid

import (
	"fmt"

	"github.com/wayfind-go/wayfind/core"
)

// Build populates a fresh graph from m: one Juncture vertex per grid
// cell, and a pair of directed edges (one each way, same weight) per
// open passage.
//
// The scan is row-major from the top-left, left to right within a row,
// so a cell's upper and left neighbors are always already in the graph
// when their shared passage is examined – down and right are covered
// when those cells take their own turn. This ordering also fixes the
// graph's vertex and neighbor insertion order, making every later
// traversal of the result deterministic.
//
// Returns ErrNilMaze or ErrEmptyMaze for unusable input. Core errors
// propagate wrapped: a maze reporting a negative passage weight
// surfaces core.ErrInvalidEdge.
//
// Complexity: O(W×H) time and memory.
func Build(m Maze) (*core.Graph[Juncture], error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	w, h := m.Width(), m.Height()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyMaze, w, h)
	}

	g := core.NewGraph[Juncture]()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			j := Juncture{Col: col, Row: row}
			if err := g.AddVertex(j); err != nil {
				return nil, fmt.Errorf("mazegrid: add %v: %w", j, err)
			}
			if row > 0 && !m.WallAbove(j) {
				if err := connect(g, j, j.Above(), m.WeightAbove(j)); err != nil {
					return nil, err
				}
			}
			if col > 0 && !m.WallLeft(j) {
				if err := connect(g, j, j.Left(), m.WeightLeft(j)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// connect adds the two directed edges of one open passage, both
// carrying the maze's symmetric weight.
func connect(g *core.Graph[Juncture], a, b Juncture, weight int64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return fmt.Errorf("mazegrid: passage %v→%v: %w", a, b, err)
	}
	if err := g.AddEdge(b, a, weight); err != nil {
		return fmt.Errorf("mazegrid: passage %v→%v: %w", b, a, err)
	}

	return nil
}
