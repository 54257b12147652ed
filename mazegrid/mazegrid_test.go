package mazegrid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wayfind-go/wayfind/bfs"
	"github.com/wayfind-go/wayfind/core"
	"github.com/wayfind-go/wayfind/dijkstra"
	"github.com/wayfind-go/wayfind/mazegrid"
)

// stubMaze is a hand-wired Maze: absent map entries mean "no wall" and
// weight 1, so the zero value of the maps gives a fully open maze.
type stubMaze struct {
	w, h        int
	wallAbove   map[mazegrid.Juncture]bool
	wallLeft    map[mazegrid.Juncture]bool
	weightAbove map[mazegrid.Juncture]int64
	weightLeft  map[mazegrid.Juncture]int64
}

func (m *stubMaze) Width() int  { return m.w }
func (m *stubMaze) Height() int { return m.h }

func (m *stubMaze) WallAbove(j mazegrid.Juncture) bool { return m.wallAbove[j] }
func (m *stubMaze) WallLeft(j mazegrid.Juncture) bool  { return m.wallLeft[j] }

func (m *stubMaze) WeightAbove(j mazegrid.Juncture) int64 {
	if w, ok := m.weightAbove[j]; ok {
		return w
	}
	return 1
}

func (m *stubMaze) WeightLeft(j mazegrid.Juncture) int64 {
	if w, ok := m.weightLeft[j]; ok {
		return w
	}
	return 1
}

func j(col, row int) mazegrid.Juncture { return mazegrid.Juncture{Col: col, Row: row} }

// TestBuild_Errors covers nil and degenerate mazes.
func TestBuild_Errors(t *testing.T) {
	if _, err := mazegrid.Build(nil); !errors.Is(err, mazegrid.ErrNilMaze) {
		t.Errorf("nil maze: want ErrNilMaze, got %v", err)
	}
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		m := &stubMaze{w: dims[0], h: dims[1]}
		if _, err := mazegrid.Build(m); !errors.Is(err, mazegrid.ErrEmptyMaze) {
			t.Errorf("%dx%d maze: want ErrEmptyMaze, got %v", dims[0], dims[1], err)
		}
	}
}

// TestBuild_SingleCell: one vertex, no passages.
func TestBuild_SingleCell(t *testing.T) {
	g, err := mazegrid.Build(&stubMaze{w: 1, h: 1})
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 1 || g.EdgeCount() != 0 {
		t.Errorf("got %d vertices, %d edges; want 1, 0", g.VertexCount(), g.EdgeCount())
	}
	if !g.HasVertex(j(0, 0)) {
		t.Error("missing juncture (0,0)")
	}
}

// TestBuild_OpenSquare: a 2×2 maze with no interior walls has 4
// vertices and 8 directed edges, each passage's weight carried both
// ways.
func TestBuild_OpenSquare(t *testing.T) {
	m := &stubMaze{
		w: 2, h: 2,
		weightAbove: map[mazegrid.Juncture]int64{
			j(0, 1): 3, // (0,1) ↕ (0,0)
			j(1, 1): 4, // (1,1) ↕ (1,0)
		},
		weightLeft: map[mazegrid.Juncture]int64{
			j(1, 0): 5, // (1,0) ↔ (0,0)
			j(1, 1): 6, // (1,1) ↔ (0,1)
		},
	}
	g, err := mazegrid.Build(m)
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 4 {
		t.Errorf("VertexCount = %d; want 4", g.VertexCount())
	}
	if g.EdgeCount() != 8 {
		t.Errorf("EdgeCount = %d; want 8 (4 passages × 2 directions)", g.EdgeCount())
	}

	// Every passage appears in both directions with the maze's weight.
	for _, p := range []struct {
		a, b mazegrid.Juncture
		w    int64
	}{
		{j(0, 1), j(0, 0), 3},
		{j(1, 1), j(1, 0), 4},
		{j(1, 0), j(0, 0), 5},
		{j(1, 1), j(0, 1), 6},
	} {
		for _, dir := range [][2]mazegrid.Juncture{{p.a, p.b}, {p.b, p.a}} {
			w, ok, err := g.Weight(dir[0], dir[1])
			if err != nil || !ok || w != p.w {
				t.Errorf("Weight(%v,%v) = (%d,%v,%v); want (%d,true,nil)",
					dir[0], dir[1], w, ok, err, p.w)
			}
		}
	}
}

// TestBuild_WallsBlockBothDirections: a wall suppresses both directed
// edges of its passage.
func TestBuild_WallsBlockBothDirections(t *testing.T) {
	m := &stubMaze{
		w: 2, h: 2,
		wallLeft: map[mazegrid.Juncture]bool{j(1, 1): true},
	}
	g, err := mazegrid.Build(m)
	if err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 6 {
		t.Errorf("EdgeCount = %d; want 6 (one passage walled off)", g.EdgeCount())
	}
	for _, dir := range [][2]mazegrid.Juncture{{j(1, 1), j(0, 1)}, {j(0, 1), j(1, 1)}} {
		if _, ok, _ := g.Weight(dir[0], dir[1]); ok {
			t.Errorf("edge %v→%v exists across a wall", dir[0], dir[1])
		}
	}
}

// TestBuild_NegativeWeightSurfaces: a misbehaving maze model reporting
// a negative passage cost is rejected through core's validation.
func TestBuild_NegativeWeightSurfaces(t *testing.T) {
	m := &stubMaze{
		w: 2, h: 1,
		weightLeft: map[mazegrid.Juncture]int64{j(1, 0): -2},
	}
	if _, err := mazegrid.Build(m); !errors.Is(err, core.ErrInvalidEdge) {
		t.Errorf("negative maze weight: want core.ErrInvalidEdge, got %v", err)
	}
}

// TestBuild_RowMajorVertexOrder pins the scan order the doc promises.
func TestBuild_RowMajorVertexOrder(t *testing.T) {
	g, err := mazegrid.Build(&stubMaze{w: 3, h: 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []mazegrid.Juncture{
		j(0, 0), j(1, 0), j(2, 0),
		j(0, 1), j(1, 1), j(2, 1),
	}
	if got := g.Vertices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want row-major %v", got, want)
	}
}

// TestBuild_SolveCorridorMaze runs the full pipeline: build a 3×3 maze
// whose open cells form an S-shaped corridor, then search it.
//
//	(0,0) (1,0) (2,0)      ──▶──┐
//	(0,1) (1,1) (2,1)      ┌──◀──┘
//	(0,2) (1,2) (2,2)      └──▶──
//
// Walls force the corridor: down the right edge, back across the
// middle, down the left edge, across the bottom.
func TestBuild_SolveCorridorMaze(t *testing.T) {
	m := &stubMaze{
		w: 3, h: 3,
		// Open passages: top row, (2,0)-(2,1), middle row, (0,1)-(0,2),
		// bottom row. Everything else walled.
		wallAbove: map[mazegrid.Juncture]bool{
			j(0, 1): true, j(1, 1): true,
			j(1, 2): true, j(2, 2): true,
		},
	}
	g, err := mazegrid.Build(m)
	if err != nil {
		t.Fatal(err)
	}

	start, end := j(0, 0), j(2, 2)

	// BFS must walk the whole corridor: 9 visits, corridor length 8 edges.
	bres, err := bfs.BFS(g, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if !bres.Found {
		t.Fatal("corridor end not found")
	}
	if got := bres.Depth[end]; got != 8 {
		t.Errorf("BFS depth to end = %d; want 8", got)
	}

	// Dijkstra agrees on unit weights.
	dres, err := dijkstra.Dijkstra(g, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if dres.Dist[end] != 8 {
		t.Errorf("Dijkstra cost to end = %d; want 8", dres.Dist[end])
	}
	if len(dres.Path) != 9 {
		t.Errorf("Dijkstra path length = %d; want 9 junctures", len(dres.Path))
	}
	if dres.Path[0] != start || dres.Path[len(dres.Path)-1] != end {
		t.Errorf("path endpoints = %v…%v; want %v…%v",
			dres.Path[0], dres.Path[len(dres.Path)-1], start, end)
	}
}
