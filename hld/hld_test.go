package hld_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kyopro/hld"
	"github.com/katalvlaran/kyopro/tree"
)

// sample is the twelve-vertex tree with root 0 used across these tests.
var sample = []int{12, 0, 1, 2, 2, 1, 0, 6, 7, 7, 0, 10}

func TestNew_Layout(t *testing.T) {
	d, err := hld.New(sample)
	require.NoError(t, err)
	assert.Equal(t, 12, d.Len())
	assert.Equal(t, 0, d.Root())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, d.Order())
	assert.Equal(t, 0, d.Head(3))
	assert.Equal(t, 4, d.Head(4))
	assert.Equal(t, 6, d.Head(8))
	assert.Equal(t, 10, d.Head(11))
	assert.Equal(t, 3, d.Depth(9))
	assert.Equal(t, tree.NoParent, d.Parent(0))
	assert.Equal(t, 5, d.Size(1))
}

func TestPath(t *testing.T) {
	d, err := hld.New(sample)
	require.NoError(t, err)
	assert.Equal(t, []hld.Segment{{9, 9}, {4, 4}, {6, 7}, {0, 2}}, d.Path(4, 9))
	assert.Equal(t, []hld.Segment{{4, 4}, {9, 9}, {6, 7}, {0, 2}}, d.Path(9, 4))
	assert.Equal(t, []hld.Segment{{3, 3}}, d.Path(3, 3))
	assert.Equal(t, []hld.Segment{{5, 5}, {10, 11}, {0, 1}}, d.Path(11, 5))
}

func TestLCAAndDistance(t *testing.T) {
	d, err := hld.New(sample)
	require.NoError(t, err)
	assert.Equal(t, 0, d.LCA(4, 9))
	assert.Equal(t, 2, d.LCA(3, 4))
	assert.Equal(t, 7, d.LCA(8, 9))
	assert.Equal(t, 1, d.LCA(1, 4))
	assert.Equal(t, 6, d.Distance(4, 9))
	assert.Equal(t, 0, d.Distance(5, 5))
}

func TestSubtree(t *testing.T) {
	d, err := hld.New(sample)
	require.NoError(t, err)
	assert.Equal(t, hld.Segment{Lo: 1, Hi: 5}, d.Subtree(1))
	assert.Equal(t, hld.Segment{Lo: 0, Hi: 11}, d.Subtree(0))
	assert.Equal(t, hld.Segment{Lo: 11, Hi: 11}, d.Subtree(11))
}

func TestNew_Errors(t *testing.T) {
	_, err := hld.New(nil)
	assert.ErrorIs(t, err, tree.ErrEmpty)
	_, err = hld.New([]int{1, 0})
	assert.ErrorIs(t, err, tree.ErrNoRoot)
	_, err = hld.New([]int{-1, 2, 1})
	assert.ErrorIs(t, err, tree.ErrCycle)
}

// TestRandom_PathCoversExactly checks that the segments of Path(u, v)
// cover exactly the vertices on the path, once each.
func TestRandom_PathCoversExactly(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for trial := 0; trial < 30; trial++ {
		n := 1 + r.Intn(80)
		parents := make([]int, n)
		parents[0] = -1
		for v := 1; v < n; v++ {
			parents[v] = r.Intn(v)
		}
		d, err := hld.New(parents)
		require.NoError(t, err)
		order := d.Order()

		for q := 0; q < 20; q++ {
			u, v := r.Intn(n), r.Intn(n)
			want := map[int]bool{}
			a, b := u, v
			for a != b {
				if d.Depth(a) >= d.Depth(b) {
					want[a] = true
					a = parents[a]
				} else {
					want[b] = true
					b = parents[b]
				}
			}
			want[a] = true
			require.Equal(t, a, d.LCA(u, v))

			got := map[int]bool{}
			for _, s := range d.Path(u, v) {
				require.LessOrEqual(t, s.Lo, s.Hi)
				for i := s.Lo; i <= s.Hi; i++ {
					require.False(t, got[order[i]], "vertex covered twice")
					got[order[i]] = true
				}
			}
			require.Equal(t, want, got, "path %d-%d", u, v)
		}
	}
}

func TestDeepChain(t *testing.T) {
	const n = 200000
	parents := make([]int, n)
	parents[0] = -1
	for v := 1; v < n; v++ {
		parents[v] = v - 1
	}
	d, err := hld.New(parents)
	require.NoError(t, err)
	assert.Equal(t, []hld.Segment{{0, n - 1}}, d.Path(n-1, 0))
	assert.Equal(t, n-1, d.Distance(0, n-1))
}
