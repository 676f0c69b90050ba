package unionfind

// Weighted is a union-find that also keeps, for every element, a potential
// relative to its set's representative. Potentials live in an abelian
// group given by identity, op (the group operation) and inv, where
// inv(a, b) is a "minus" b. For int64 sums those are 0, a+b and a-b.
type Weighted[T any] struct {
	parent   []int
	size     []int
	diff     []T // potential relative to parent[x]
	identity T
	op, inv  func(a, b T) T
}

// NewWeighted returns n singleton sets, every potential at identity.
func NewWeighted[T any](n int, identity T, op, inv func(a, b T) T) *Weighted[T] {
	if n < 0 {
		n = 0
	}
	w := &Weighted[T]{
		parent:   make([]int, n),
		size:     make([]int, n),
		diff:     make([]T, n),
		identity: identity,
		op:       op,
		inv:      inv,
	}
	for i := 0; i < n; i++ {
		w.parent[i] = i
		w.size[i] = 1
		w.diff[i] = identity
	}

	return w
}

// Len returns the size of the universe.
func (w *Weighted[T]) Len() int { return len(w.parent) }

// Root returns the representative of x's set and re-points the whole
// walked path at it, folding each potential so it becomes relative to the
// root.
func (w *Weighted[T]) Root(x int) int {
	var path []int
	r := x
	for w.parent[r] != r {
		path = append(path, r)
		r = w.parent[r]
	}
	// Nearest to the root first, so diff[parent] is already final.
	for i := len(path) - 1; i >= 0; i-- {
		v := path[i]
		if p := w.parent[v]; p != r {
			w.diff[v] = w.op(w.diff[v], w.diff[p])
		}
		w.parent[v] = r
	}

	return r
}

// Same reports whether x and y belong to the same set.
func (w *Weighted[T]) Same(x, y int) bool { return w.Root(x) == w.Root(y) }

// Weight returns x's potential relative to its representative.
func (w *Weighted[T]) Weight(x int) T {
	w.Root(x)

	return w.diff[x]
}

// Diff returns weight(y) - weight(x) and whether x and y are in the same
// set; across sets the difference is undefined and identity is returned.
func (w *Weighted[T]) Diff(x, y int) (T, bool) {
	if !w.Same(x, y) {
		return w.identity, false
	}

	return w.inv(w.Weight(y), w.Weight(x)), true
}

// Unite merges the sets of x and y so that weight(y) - weight(x) == d.
// Returns false, changing nothing, when they already share a set; use
// Diff to check whether the existing relation agrees with d.
func (w *Weighted[T]) Unite(x, y int, d T) bool {
	d = w.op(d, w.Weight(x))
	d = w.inv(d, w.Weight(y))
	rx, ry := w.Root(x), w.Root(y)
	if rx == ry {
		return false
	}
	if w.size[rx] < w.size[ry] {
		rx, ry = ry, rx
		d = w.inv(w.identity, d)
	}
	w.parent[ry] = rx
	w.size[rx] += w.size[ry]
	w.diff[ry] = d

	return true
}

// Size returns the number of elements in x's set.
func (w *Weighted[T]) Size(x int) int { return w.size[w.Root(x)] }
