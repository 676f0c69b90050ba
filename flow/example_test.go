package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kyopro/flow"
)

func ExampleDinic() {
	// Two pipes out of the source merge at vertex 3.
	nw := flow.NewNetwork(4)
	nw.AddEdge(0, 1, 3)
	nw.AddEdge(0, 2, 2)
	nw.AddEdge(1, 3, 2)
	nw.AddEdge(2, 3, 3)

	mf, err := flow.Dinic(context.Background(), nw, 0, 3, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mf)
	for _, e := range nw.Edges() {
		fmt.Printf("%d→%d %d/%d\n", e.From, e.To, e.Flow, e.Cap)
	}
	// Output:
	// 4
	// 0→1 2/3
	// 0→2 2/2
	// 1→3 2/2
	// 2→3 2/3
}
