// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, basic distances and paths, directed arcs, MaxDistance,
// InfEdgeThreshold, and agreement with Floyd–Warshall on random graphs.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kyopro/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := make([][]dijkstra.Arc, 2)
	_, err := dijkstra.Dijkstra(g, dijkstra.Source(2))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source(-1))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.Dijkstra([][]dijkstra.Arc{})
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_BadArcAndNegativeWeight(t *testing.T) {
	_, err := dijkstra.Dijkstra([][]dijkstra.Arc{{{To: 5, Weight: 1}}})
	assert.ErrorIs(t, err, dijkstra.ErrBadArc)

	g := dijkstra.FromEdges(2, []dijkstra.Edge{{From: 0, To: 1, Weight: -5}}, false)
	_, err = dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// 0-1 (1), 1-2 (2), 0-2 (5)
	g := dijkstra.FromEdges(3, []dijkstra.Edge{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}}, false)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3}, res.Dist)
	assert.Equal(t, []int{-1, 0, 1}, res.Prev)

	path, ok := res.PathTo(2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, path)

	path, ok = res.PathTo(0)
	require.True(t, ok)
	assert.Equal(t, []int{0}, path)
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	// 0→1 (2), 1→2 (3), 3→0 (1): 3 is unreachable from 0.
	g := dijkstra.FromEdges(4, []dijkstra.Edge{{0, 1, 2}, {1, 2, 3}, {3, 0, 1}}, true)
	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)

	d, ok := res.DistanceTo(2)
	assert.True(t, ok)
	assert.Equal(t, int64(5), d)

	_, ok = res.DistanceTo(3)
	assert.False(t, ok)
	_, ok = res.PathTo(3)
	assert.False(t, ok)
	_, ok = res.DistanceTo(99)
	assert.False(t, ok)
	assert.Equal(t, int64(dijkstra.Unreachable), res.Dist[3])
}

func TestDijkstra_ZeroWeightsAndParallelArcs(t *testing.T) {
	g := dijkstra.FromEdges(3, []dijkstra.Edge{{0, 1, 4}, {0, 1, 0}, {1, 2, 0}}, true)
	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, res.Dist)
}

// ------------------------------------------------------------------------
// 3. MaxDistance and InfEdgeThreshold
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Chain 0-1-2-3 with weight 2 each.
	g := dijkstra.FromEdges(4, []dijkstra.Edge{{0, 1, 2}, {1, 2, 2}, {2, 3, 2}}, false)
	res, err := dijkstra.Dijkstra(g, dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 4, dijkstra.Unreachable}, res.Dist)

	res, err = dijkstra.Dijkstra(g, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, dijkstra.Unreachable, dijkstra.Unreachable, dijkstra.Unreachable}, res.Dist)
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// Direct 0-2 is a wall at threshold 10; the detour costs 12.
	g := dijkstra.FromEdges(3, []dijkstra.Edge{{0, 2, 10}, {0, 1, 6}, {1, 2, 6}}, false)
	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Dist[2])

	res, err = dijkstra.Dijkstra(g, dijkstra.WithInfEdgeThreshold(10))
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Dist[2])
	path, _ := res.PathTo(2)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// ------------------------------------------------------------------------
// 4. Random graphs against Floyd–Warshall
// ------------------------------------------------------------------------

func TestDijkstra_AgainstFloydWarshall(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		n := 1 + r.Intn(20)
		m := r.Intn(3 * n)
		edges := make([]dijkstra.Edge, m)
		for i := range edges {
			edges[i] = dijkstra.Edge{From: r.Intn(n), To: r.Intn(n), Weight: int64(r.Intn(20))}
		}
		g := dijkstra.FromEdges(n, edges, true)

		const inf = int64(1) << 60
		fw := make([][]int64, n)
		for i := range fw {
			fw[i] = make([]int64, n)
			for j := range fw[i] {
				fw[i][j] = inf
			}
			fw[i][i] = 0
		}
		for _, e := range edges {
			if e.Weight < fw[e.From][e.To] {
				fw[e.From][e.To] = e.Weight
			}
		}
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if fw[i][k]+fw[k][j] < fw[i][j] {
						fw[i][j] = fw[i][k] + fw[k][j]
					}
				}
			}
		}

		src := r.Intn(n)
		res, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		require.NoError(t, err)
		for v := 0; v < n; v++ {
			d, ok := res.DistanceTo(v)
			if fw[src][v] == inf {
				require.False(t, ok)
				continue
			}
			require.True(t, ok)
			require.Equal(t, fw[src][v], d)

			// The reported path must cost exactly d.
			path, _ := res.PathTo(v)
			var cost int64
			for i := 1; i < len(path); i++ {
				best := inf
				for _, a := range g[path[i-1]] {
					if a.To == path[i] && a.Weight < best {
						best = a.Weight
					}
				}
				cost += best
			}
			require.Equal(t, d, cost)
		}
	}
}
