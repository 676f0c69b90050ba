package rerooting_test

import (
	"math/rand"

	"github.com/katalvlaran/kyopro/rerooting"
	"github.com/katalvlaran/kyopro/tree"
)

// randomTree returns the adjacency list of a random labelled tree on n
// vertices with every neighbor list shuffled.
func randomTree(r *rand.Rand, n int) [][]int {
	perm := r.Perm(n)
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{perm[i], perm[r.Intn(i)]})
	}
	adj, err := tree.FromEdges(n, edges)
	if err != nil {
		panic(err)
	}
	for _, nbs := range adj {
		r.Shuffle(len(nbs), func(i, j int) { nbs[i], nbs[j] = nbs[j], nbs[i] })
	}

	return adj
}

// pathTree returns 0-1-2-…-(n-1).
func pathTree(n int) [][]int {
	adj := make([][]int, n)
	for i := 1; i < n; i++ {
		adj[i-1] = append(adj[i-1], i)
		adj[i] = append(adj[i], i-1)
	}

	return adj
}

// naive is the textbook recursive tree DP rooted at v, written without any
// of the engine's machinery.
func naive[T any](adj [][]int, ops rerooting.Operators[T], v, parent int) T {
	m := ops.Identity
	for i, c := range adj[v] {
		if c == parent {
			continue
		}
		x := naive(adj, ops, c, v)
		if ops.PutEdge != nil {
			x = ops.PutEdge(x, v, i)
		}
		m = ops.Merge(m, x)
	}

	return ops.AddRoot(m, v)
}

// bruteForce roots the tree at every vertex in turn.
func bruteForce[T any](adj [][]int, ops rerooting.Operators[T]) []T {
	out := make([]T, len(adj))
	for v := range adj {
		out[v] = naive(adj, ops, v, -1)
	}

	return out
}

// ---- operator sets used across tests ----

func sizeOps() rerooting.Operators[int] {
	return rerooting.Operators[int]{
		Identity: 0,
		Merge:    func(a, b int) int { return a + b },
		AddRoot:  func(acc, _ int) int { return acc + 1 },
	}
}

// seqOps lists vertices in post-order: a non-commutative monoid.
func seqOps() rerooting.Operators[[]int] {
	return rerooting.Operators[[]int]{
		Identity: []int{},
		Merge: func(a, b []int) []int {
			out := make([]int, 0, len(a)+len(b))
			out = append(out, a...)

			return append(out, b...)
		},
		AddRoot: func(acc []int, v int) []int {
			out := make([]int, 0, len(acc)+1)
			out = append(out, acc...)

			return append(out, v)
		},
	}
}

// cntSum carries a vertex count and a distance sum.
type cntSum struct {
	cnt int
	sum int
}

// distSumOps yields, at every vertex, the number of vertices and the sum
// of distances to all of them. PutEdge adds one per vertex for the edge.
func distSumOps() rerooting.Operators[cntSum] {
	return rerooting.Operators[cntSum]{
		Identity: cntSum{},
		Merge:    func(a, b cntSum) cntSum { return cntSum{a.cnt + b.cnt, a.sum + b.sum} },
		AddRoot:  func(acc cntSum, _ int) cntSum { return cntSum{acc.cnt + 1, acc.sum} },
		PutEdge:  func(x cntSum, _, _ int) cntSum { return cntSum{x.cnt, x.sum + x.cnt} },
	}
}

// hashOps is a polynomial rolling hash of the post-order sequence modulo a
// prime: order-sensitive and cheap, so it scales to large random trees.
type rolling struct {
	hash uint64
	pow  uint64 // base^length
}

const (
	hashMod  = 1_000_000_007
	hashBase = 911_382_323
)

func hashOps() rerooting.Operators[rolling] {
	merge := func(a, b rolling) rolling {
		return rolling{(a.hash*b.pow + b.hash) % hashMod, a.pow * b.pow % hashMod}
	}

	return rerooting.Operators[rolling]{
		Identity: rolling{0, 1},
		Merge:    merge,
		AddRoot: func(acc rolling, v int) rolling {
			return merge(acc, rolling{uint64(v+1) % hashMod, hashBase})
		},
	}
}
