package sparsetable_test

import (
	"fmt"

	"github.com/katalvlaran/kyopro/sparsetable"
)

func ExampleTable() {
	heights := []int{4, 9, 2, 7, 5, 8}
	st, _ := sparsetable.New(heights, func(a, b int) int { return max(a, b) })
	fmt.Println(st.Query(0, 3), st.Query(2, 6))
	// Output: 9 8
}
