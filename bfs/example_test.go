package bfs_test

import (
	"fmt"

	"github.com/wayfind-go/wayfind/bfs"
	"github.com/wayfind-go/wayfind/core"
)

// ExampleBFS traces a search across a small chain, watching every
// lifecycle event through an observer.
//
//	A ──▶ B ──▶ C ──▶ D
func ExampleBFS() {
	g := core.NewGraph[string]()
	for _, v := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	g.Observe(func(ev core.Event[string]) error {
		switch ev.Kind {
		case core.Visited:
			fmt.Println("visit", ev.Vertex)
		case core.SearchOver:
			fmt.Println("done")
		}
		return nil
	})

	res, _ := bfs.BFS(g, "A", "C")
	fmt.Println("found:", res.Found, "– D untouched beyond C")

	// Output:
	// visit A
	// visit B
	// visit C
	// done
	// found: true – D untouched beyond C
}
