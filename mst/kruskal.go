package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kyopro/unionfind"
)

// Kruskal computes a minimum spanning forest of the n-vertex graph given
// by edges. Self-loops are ignored. The input slice is not modified.
//
// Steps:
//  1. Validate n and every endpoint.
//  2. Copy and stable-sort edges by ascending weight.
//  3. Scan, keeping edges that join two different union-find sets,
//     until n-1 edges are kept.
func Kruskal(n int, edges []Edge) (*Forest, error) {
	// 1. Validate.
	if n < 1 {
		return nil, ErrNoVertices
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge {%d, %d} with n=%d", ErrVertexOutOfRange, e.U, e.V, n)
		}
	}

	// 2. Sort a copy; stable so equal weights keep input order.
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Scan.
	uf := unionfind.New(n)
	f := &Forest{N: n, Edges: make([]Edge, 0, n-1)}
	for _, e := range sorted {
		if len(f.Edges) == n-1 {
			break
		}
		if e.U == e.V {
			continue
		}
		if uf.Unite(e.U, e.V) {
			f.Edges = append(f.Edges, e)
			f.Cost += e.Weight
		}
	}
	f.Components = uf.Count()

	return f, nil
}
