package tree

// Order returns the vertices of the tree rooted at root in depth-first
// pre-order, visiting neighbors in adjacency order, together with the
// parent of every reached vertex (NoParent for root and for vertices that
// were not reached).
//
// adj must be symmetric; Order does not validate it.
func Order(adj [][]int, root int) (order []int, parent []int) {
	n := len(adj)
	parent = make([]int, n)
	for i := range parent {
		parent[i] = NoParent
	}
	if root < 0 || root >= n {
		return nil, parent
	}
	order = make([]int, 0, n)
	visited := make([]bool, n)

	// Push neighbors in reverse so they pop in adjacency order.
	stack := []int{root}
	visited[root] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		nbs := adj[v]
		for i := len(nbs) - 1; i >= 0; i-- {
			u := nbs[i]
			if visited[u] {
				continue
			}
			visited[u] = true
			parent[u] = v
			stack = append(stack, u)
		}
	}

	return order, parent
}

// Depths returns the number of edges from root to every vertex, -1 for
// unreachable vertices.
func Depths(adj [][]int, root int) []int {
	order, parent := Order(adj, root)
	depth := make([]int, len(adj))
	for i := range depth {
		depth[i] = -1
	}
	for _, v := range order {
		if parent[v] == NoParent {
			depth[v] = 0
			continue
		}
		depth[v] = depth[parent[v]] + 1
	}

	return depth
}
