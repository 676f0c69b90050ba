package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/kyopro/dfs"
)

func ExampleTopologicalSort() {
	// Course prerequisites: 0 before 1 and 2, both before 3.
	order, err := dfs.TopologicalSort([][]int{{1, 2}, {3}, {3}, {}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(order)
	// Output: [0 1 2 3]
}

func ExampleStronglyConnected() {
	s, _ := dfs.StronglyConnected([][]int{{1}, {2}, {0, 3}, {4}, {3}, {}})
	fmt.Println(s.Count(), s.Groups())
	// Output: 3 [[5] [0 1 2] [3 4]]
}

func ExampleFindCycle() {
	cycle, ok, _ := dfs.FindCycle([][]int{{1}, {2}, {0}})
	fmt.Println(ok, cycle)
	// Output: true [0 1 2 0]
}
