package dfs

import "fmt"

// TopologicalSort orders the vertices of a directed graph so that every
// arc u→v has u before v. graph[u] lists the heads of the arcs leaving u.
//
// The order is Kahn's: a FIFO queue seeded with the in-degree-zero
// vertices in increasing id order. Among valid orders it is therefore
// deterministic for a given adjacency list.
//
// Errors: ErrGraphNil, ErrVertexOutOfRange, ErrCycleDetected (wrapped with
// how many vertices could be ordered), or the context error.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(graph [][]int, opts ...Option) ([]int, error) {
	cfg := buildOptions(opts)
	if err := checkGraph(graph); err != nil {
		return nil, err
	}

	n := len(graph)
	indeg := make([]int, n)
	for _, nbs := range graph {
		for _, v := range nbs {
			indeg[v]++
		}
	}
	order := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			order = append(order, v)
		}
	}
	// order doubles as the queue: the head index walks it while
	// newly freed vertices are appended behind.
	for head := 0; head < len(order); head++ {
		if err := canceled(cfg.Ctx, head); err != nil {
			return nil, err
		}
		for _, v := range graph[order[head]] {
			indeg[v]--
			if indeg[v] == 0 {
				order = append(order, v)
			}
		}
	}
	if len(order) != n {
		return nil, fmt.Errorf("%w: only %d of %d vertices ordered", ErrCycleDetected, len(order), n)
	}

	return order, nil
}
