package dfs

import "slices"

// SCC is the strongly connected component decomposition of a directed
// graph. Component ids are a topological order of the condensation: every
// arc between two components goes from a smaller id to a larger one.
type SCC struct {
	graph [][]int
	comp  []int
	sizes []int
}

// StronglyConnected decomposes graph into strongly connected components
// with Kosaraju's two-pass algorithm. Both passes use an explicit stack.
//
// Complexity: O(V + E) time and memory (the transposed graph is built).
func StronglyConnected(graph [][]int, opts ...Option) (*SCC, error) {
	cfg := buildOptions(opts)
	if err := checkGraph(graph); err != nil {
		return nil, err
	}
	n := len(graph)

	// Pass 1: finishing order on graph.
	order := make([]int, 0, n)
	seen := make([]bool, n)
	stack := make([]frame, 0, 16)
	steps := 0
	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		seen[root] = true
		stack = append(stack[:0], frame{v: root})
		for len(stack) > 0 {
			if err := canceled(cfg.Ctx, steps); err != nil {
				return nil, err
			}
			steps++

			top := &stack[len(stack)-1]
			if top.next == len(graph[top.v]) {
				order = append(order, top.v)
				stack = stack[:len(stack)-1]
				continue
			}
			w := graph[top.v][top.next]
			top.next++
			if !seen[w] {
				seen[w] = true
				stack = append(stack, frame{v: w})
			}
		}
	}

	// Pass 2: flood the transposed graph in decreasing finishing time.
	rev := Transpose(graph)
	comp := make([]int, n)
	for v := range comp {
		comp[v] = -1
	}
	var sizes []int
	todo := make([]int, 0, 16)
	for i := n - 1; i >= 0; i-- {
		root := order[i]
		if comp[root] >= 0 {
			continue
		}
		id := len(sizes)
		sizes = append(sizes, 0)
		comp[root] = id
		todo = append(todo[:0], root)
		for len(todo) > 0 {
			v := todo[len(todo)-1]
			todo = todo[:len(todo)-1]
			sizes[id]++
			for _, w := range rev[v] {
				if comp[w] < 0 {
					comp[w] = id
					todo = append(todo, w)
				}
			}
		}
	}

	return &SCC{graph: graph, comp: comp, sizes: sizes}, nil
}

// Count returns the number of components.
func (s *SCC) Count() int { return len(s.sizes) }

// Comp returns the component id of v.
func (s *SCC) Comp(v int) int { return s.comp[v] }

// Same reports whether u and v lie in one component.
func (s *SCC) Same(u, v int) bool { return s.comp[u] == s.comp[v] }

// Size returns the number of vertices in v's component.
func (s *SCC) Size(v int) int { return s.sizes[s.comp[v]] }

// Groups lists the vertices of every component, indexed by component id,
// each in increasing vertex order.
func (s *SCC) Groups() [][]int {
	groups := make([][]int, len(s.sizes))
	for c, sz := range s.sizes {
		groups[c] = make([]int, 0, sz)
	}
	for v, c := range s.comp {
		groups[c] = append(groups[c], v)
	}

	return groups
}

// Condense returns the condensation DAG: one vertex per component and one
// arc c→d for every pair of distinct components joined by some arc.
// Neighbor lists are sorted and free of duplicates.
func (s *SCC) Condense() [][]int {
	dag := make([][]int, len(s.sizes))
	for u, nbs := range s.graph {
		cu := s.comp[u]
		for _, v := range nbs {
			if cv := s.comp[v]; cv != cu {
				dag[cu] = append(dag[cu], cv)
			}
		}
	}
	for c := range dag {
		slices.Sort(dag[c])
		dag[c] = slices.Compact(dag[c])
	}

	return dag
}

// Transpose returns graph with every arc reversed. Arcs into v appear in
// rev[v] in increasing tail order.
func Transpose(graph [][]int) [][]int {
	rev := make([][]int, len(graph))
	for u, nbs := range graph {
		for _, v := range nbs {
			rev[v] = append(rev[v], u)
		}
	}

	return rev
}
