package mst

import "errors"

var (
	// ErrNoVertices indicates n < 1.
	ErrNoVertices = errors.New("mst: no vertices")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("mst: vertex out of range")
)

// Edge is an undirected weighted edge.
type Edge struct {
	U, V   int
	Weight int64
}

// Forest is a minimum spanning forest.
type Forest struct {
	// N is the number of vertices.
	N int

	// Edges are the kept edges in the order Kruskal accepted them.
	Edges []Edge

	// Cost is the sum of the kept edge weights.
	Cost int64

	// Components is the number of trees in the forest.
	Components int
}

// IsTree reports whether the forest spans all N vertices in one tree.
func (f *Forest) IsTree() bool { return f.Components == 1 }

// Adjacency returns the forest as an undirected adjacency list.
func (f *Forest) Adjacency() [][]int {
	adj := make([][]int, f.N)
	for _, e := range f.Edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	return adj
}
