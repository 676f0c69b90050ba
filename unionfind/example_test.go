package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/kyopro/unionfind"
)

func ExampleUnionFind() {
	uf := unionfind.New(5)
	uf.Unite(0, 1)
	uf.Unite(3, 4)
	uf.Unite(1, 4)

	fmt.Println(uf.Same(0, 3), uf.Same(0, 2))
	fmt.Println(uf.Size(0), uf.Count())
	// Output:
	// true false
	// 4 2
}

func ExampleWeighted() {
	w := unionfind.NewWeighted(3, int64(0),
		func(a, b int64) int64 { return a + b },
		func(a, b int64) int64 { return a - b },
	)
	w.Unite(0, 1, 10) // 1 is 10 heavier than 0
	w.Unite(2, 1, 4)  // 1 is 4 heavier than 2
	d, ok := w.Diff(0, 2)
	fmt.Println(d, ok)
	// Output: 6 true
}
