package rerooting_test

import (
	"fmt"

	"github.com/katalvlaran/kyopro/rerooting"
	"github.com/katalvlaran/kyopro/tree"
)

// ExampleNew counts, for every vertex, the vertices in the tree rooted
// there: always N, which makes it a handy smoke test.
func ExampleNew() {
	adj, _ := tree.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {1, 3}})
	eng, err := rerooting.New(adj, 0,
		func(a, b int) int { return a + b },
		func(acc, _ int) int { return acc + 1 },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(eng.Answers())
	// Output:
	// [4 4 4 4]
}

// ExampleBuild computes the sum of distances from every vertex to all
// others. The value flowing across an edge is (vertices, distance sum);
// PutEdge charges one extra unit per vertex for the edge it crosses.
//
//	0 - 1 - 2
//	    |
//	    3 - 4
func ExampleBuild() {
	type agg struct{ cnt, sum int }
	adj, _ := tree.FromEdges(5, [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 4}})

	eng, err := rerooting.Build(adj, rerooting.Operators[agg]{
		Identity: agg{},
		Merge:    func(a, b agg) agg { return agg{a.cnt + b.cnt, a.sum + b.sum} },
		AddRoot:  func(acc agg, _ int) agg { return agg{acc.cnt + 1, acc.sum} },
		PutEdge:  func(x agg, _, _ int) agg { return agg{x.cnt, x.sum + x.cnt} },
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v, a := range eng.Answers() {
		fmt.Printf("%d:%d ", v, a.sum)
	}
	fmt.Println()
	// Output:
	// 0:8 1:5 2:8 3:6 4:9
}
