package unionfind

import "fmt"

// UnionFind is a size-weighted, path-compressed disjoint-set forest.
// The zero value is an empty universe; use New to allocate one.
type UnionFind struct {
	parent []int // parent[x] == x iff x is a root
	size   []int // valid only at roots: number of elements in the set
	count  int   // number of disjoint sets
}

// New returns a UnionFind with n singleton sets {0}, {1}, ..., {n-1}.
// Complexity: O(n).
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Len returns the size of the universe.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Root returns the representative of x's set.
// Every vertex on the walked path is re-pointed at its grandparent
// (path halving), so the walk never recurses.
func (uf *UnionFind) Root(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Unite merges the sets containing x and y.
// Returns false if they were already in the same set.
func (uf *UnionFind) Unite(x, y int) bool {
	rx, ry := uf.Root(x), uf.Root(y)
	if rx == ry {
		return false
	}
	// Attach the smaller tree under the larger root.
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	uf.count--

	return true
}

// Same reports whether x and y belong to the same set.
func (uf *UnionFind) Same(x, y int) bool {
	return uf.Root(x) == uf.Root(y)
}

// Size returns the number of elements in x's set.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Root(x)]
}

// RootE is Root with bounds checking.
func (uf *UnionFind) RootE(x int) (int, error) {
	if err := uf.check(x); err != nil {
		return 0, err
	}

	return uf.Root(x), nil
}

// UniteE is Unite with bounds checking.
func (uf *UnionFind) UniteE(x, y int) (bool, error) {
	if err := uf.check(x); err != nil {
		return false, err
	}
	if err := uf.check(y); err != nil {
		return false, err
	}

	return uf.Unite(x, y), nil
}

// Groups returns the members of every set, each group in increasing order,
// groups ordered by their smallest member.
// Complexity: O(n α(n)).
func (uf *UnionFind) Groups() [][]int {
	index := make(map[int]int, uf.count)
	groups := make([][]int, 0, uf.count)
	for x := range uf.parent {
		r := uf.Root(x)
		gi, ok := index[r]
		if !ok {
			gi = len(groups)
			index[r] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], x)
	}

	return groups
}

func (uf *UnionFind) check(x int) error {
	if x < 0 || x >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, x, len(uf.parent))
	}

	return nil
}
