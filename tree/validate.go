package tree

import (
	"fmt"

	"github.com/katalvlaran/kyopro/unionfind"
)

// Validate reports whether adj is an undirected tree on len(adj) vertices.
// The checks run in the order listed in the package documentation and the
// first failure is returned, wrapped with the offending vertices.
//
// Complexity: O(n α(n)) time, O(n) memory.
func Validate(adj [][]int) error {
	n := len(adj)
	if n == 0 {
		return ErrEmpty
	}

	// 1. Ids and self-loops; count total degree on the way.
	degree := 0
	for v, nbs := range adj {
		for _, u := range nbs {
			if u < 0 || u >= n {
				return fmt.Errorf("%w: neighbor %d of %d with n=%d", ErrVertexOutOfRange, u, v, n)
			}
			if u == v {
				return fmt.Errorf("%w: vertex %d", ErrSelfLoop, v)
			}
		}
		degree += len(nbs)
	}

	// 2. Symmetry: every directed listing u→v is balanced by v→u.
	balance := make(map[[2]int]int, n)
	for v, nbs := range adj {
		for _, u := range nbs {
			if v < u {
				balance[[2]int{v, u}]++
			} else {
				balance[[2]int{u, v}]--
			}
		}
	}
	for e, b := range balance {
		if b != 0 {
			return fmt.Errorf("%w: edge {%d, %d}", ErrAsymmetric, e[0], e[1])
		}
	}

	// 3. Union each undirected edge once. Connectivity is judged on the
	// whole edge set, so a disconnected graph is reported as such even
	// when one of its components also holds a cycle.
	uf := unionfind.New(n)
	closing := [2]int{-1, -1}
	for v, nbs := range adj {
		for _, u := range nbs {
			if v > u {
				continue
			}
			if !uf.Unite(v, u) && closing[0] < 0 {
				closing = [2]int{v, u}
			}
		}
	}
	if uf.Count() != 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, uf.Count())
	}

	// 4. Connected with more than n-1 edges: some edge closed a cycle.
	if degree != 2*(n-1) {
		return fmt.Errorf("%w: %w: edge {%d, %d} closes a cycle, total degree %d, want %d",
			ErrCycle, ErrEdgeCount, closing[0], closing[1], degree, 2*(n-1))
	}

	return nil
}
