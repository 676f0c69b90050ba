package tree

import (
	"errors"
	"fmt"
	"slices"
)

// isRoot reports whether p marks a root in a parent array of length n.
func isRoot(p, n int) bool { return p == NoParent || p == n }

// findRoot returns the unique root of a parent array and checks that every
// other entry is a valid vertex id.
func findRoot(parents []int) (int, error) {
	n := len(parents)
	if n == 0 {
		return 0, ErrEmpty
	}
	root := NoParent
	for v, p := range parents {
		if isRoot(p, n) {
			if root != NoParent {
				return 0, fmt.Errorf("%w: %d and %d", ErrMultipleRoots, root, v)
			}
			root = v
			continue
		}
		if p < 0 || p >= n {
			return 0, fmt.Errorf("%w: parent of %d is %d", ErrVertexOutOfRange, v, p)
		}
		if p == v {
			return 0, fmt.Errorf("%w: vertex %d", ErrSelfLoop, v)
		}
	}
	if root == NoParent {
		return 0, ErrNoRoot
	}

	return root, nil
}

// Children converts a parent array into directed children lists.
// children[v] holds v's children in increasing id order.
// Returns the root; the result is not checked for cycles (see FromParents).
func Children(parents []int) ([][]int, int, error) {
	root, err := findRoot(parents)
	if err != nil {
		return nil, 0, err
	}
	children := make([][]int, len(parents))
	for v, p := range parents {
		if v == root {
			continue
		}
		children[p] = append(children[p], v)
	}

	return children, root, nil
}

// FromParents converts a parent array into an undirected adjacency list.
// Each adj[v] is in increasing neighbor id order. The result is validated.
// With a single root every other vertex has a parent, so a disconnected
// result means a parent cycle; it is reported as ErrCycle wrapping
// ErrDisconnected.
func FromParents(parents []int) ([][]int, int, error) {
	root, err := findRoot(parents)
	if err != nil {
		return nil, 0, err
	}
	n := len(parents)
	adj := make([][]int, n)
	for v, p := range parents {
		if v == root {
			continue
		}
		adj[p] = append(adj[p], v)
		adj[v] = append(adj[v], p)
	}
	for v := range adj {
		slices.Sort(adj[v])
	}
	if err = Validate(adj); err != nil {
		if errors.Is(err, ErrDisconnected) {
			return nil, 0, fmt.Errorf("%w: %w", ErrCycle, err)
		}
		return nil, 0, err
	}

	return adj, root, nil
}

// FromEdges builds an undirected adjacency list on n vertices.
// Neighbors appear in edge-list order. Structure is not validated here;
// call Validate when the input is untrusted.
func FromEdges(n int, edges [][2]int) ([][]int, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	adj := make([][]int, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge {%d, %d} with n=%d", ErrVertexOutOfRange, u, v, n)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	return adj, nil
}
