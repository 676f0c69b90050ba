package dfs

// frame is one level of the explicit DFS stack: a vertex and the index of
// the next arc to try.
type frame struct {
	v, next int
}

// FindCycle returns one directed cycle of graph as a closed walk
// [v0, v1, ..., vk, v0], or ok == false when the graph is acyclic.
// A self-loop u→u is reported as [u, u].
//
// The search is an iterative White/Gray/Black DFS started from every white
// vertex in increasing id order; the first back-edge to a Gray vertex
// closes the cycle.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(graph [][]int, opts ...Option) (cycle []int, ok bool, err error) {
	cfg := buildOptions(opts)
	if err = checkGraph(graph); err != nil {
		return nil, false, err
	}

	n := len(graph)
	state := make([]int, n)
	// pos[v] is v's index on the stack while v is Gray.
	pos := make([]int, n)
	stack := make([]frame, 0, 16)
	steps := 0
	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		pos[root] = 0
		stack = append(stack[:0], frame{v: root})
		for len(stack) > 0 {
			if err = canceled(cfg.Ctx, steps); err != nil {
				return nil, false, err
			}
			steps++

			top := &stack[len(stack)-1]
			if top.next == len(graph[top.v]) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			w := graph[top.v][top.next]
			top.next++
			switch state[w] {
			case White:
				state[w] = Gray
				pos[w] = len(stack)
				stack = append(stack, frame{v: w})
			case Gray:
				seq := make([]int, 0, len(stack)-pos[w]+1)
				for _, f := range stack[pos[w]:] {
					seq = append(seq, f.v)
				}
				return append(seq, w), true, nil
			}
		}
	}

	return nil, false, nil
}

// HasCycle reports whether graph contains a directed cycle.
func HasCycle(graph [][]int, opts ...Option) (bool, error) {
	_, ok, err := FindCycle(graph, opts...)

	return ok, err
}
