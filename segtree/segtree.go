package segtree

import "fmt"

// Tree is a segment tree over leaves of type T.
type Tree[T any] struct {
	nodes     []T
	identity  T
	op        Op[T]
	n         int // number of real leaves
	firstLeaf int // index of leaf 0 in nodes
}

// New builds a tree whose leaves are a copy of leaves.
// Returns ErrNilOp if op is nil.
func New[T any](leaves []T, identity T, op Op[T]) (*Tree[T], error) {
	if op == nil {
		return nil, ErrNilOp
	}
	width := 1
	for width < len(leaves) {
		width *= 2
	}
	t := &Tree[T]{
		nodes:     make([]T, 2*width-1),
		identity:  identity,
		op:        op,
		n:         len(leaves),
		firstLeaf: width - 1,
	}
	for i := range t.nodes {
		t.nodes[i] = identity
	}
	copy(t.nodes[t.firstLeaf:], leaves)
	for i := t.firstLeaf - 1; i >= 0; i-- {
		t.nodes[i] = op(t.nodes[2*i+1], t.nodes[2*i+2])
	}

	return t, nil
}

// Len returns the number of leaves.
func (t *Tree[T]) Len() int { return t.n }

// Get returns leaf i. Panics if i is out of range.
func (t *Tree[T]) Get(i int) T {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("segtree: Get(%d) with %d leaves", i, t.n))
	}

	return t.nodes[t.firstLeaf+i]
}

// Update replaces leaf i with val and refreshes its ancestors.
// Panics if i is out of range; see UpdateE for the checked form.
func (t *Tree[T]) Update(i int, val T) {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("segtree: Update(%d) with %d leaves", i, t.n))
	}
	k := t.firstLeaf + i
	t.nodes[k] = val
	for k > 0 {
		k = (k - 1) / 2
		t.nodes[k] = t.op(t.nodes[2*k+1], t.nodes[2*k+2])
	}
}

// UpdateE is Update returning ErrIndexOutOfRange instead of panicking.
func (t *Tree[T]) UpdateE(i int, val T) error {
	if i < 0 || i >= t.n {
		return fmt.Errorf("%w: leaf %d, len %d", ErrIndexOutOfRange, i, t.n)
	}
	t.Update(i, val)

	return nil
}

// Query aggregates leaves in the half-open range [l, r).
// An empty range (l == r) yields the identity. Bounds are clamped to
// [0, Len()]; use QueryE to reject them instead.
func (t *Tree[T]) Query(l, r int) T {
	if l < 0 {
		l = 0
	}
	if r > t.n {
		r = t.n
	}
	if l >= r {
		return t.identity
	}

	return t.query(l, r, 0, 0, t.firstLeaf+1)
}

// QueryE is Query with strict bounds: 0 <= l <= r <= Len().
func (t *Tree[T]) QueryE(l, r int) (T, error) {
	if l < 0 || r > t.n || l > r {
		return t.identity, fmt.Errorf("%w: [%d, %d) with %d leaves", ErrIndexOutOfRange, l, r, t.n)
	}

	return t.Query(l, r), nil
}

// All returns the aggregate of every leaf.
func (t *Tree[T]) All() T { return t.nodes[0] }

// query covers node k spanning [nl, nr).
func (t *Tree[T]) query(l, r, k, nl, nr int) T {
	if nr <= l || r <= nl {
		return t.identity
	}
	if l <= nl && nr <= r {
		return t.nodes[k]
	}
	mid := (nl + nr) / 2

	return t.op(t.query(l, r, 2*k+1, nl, mid), t.query(l, r, 2*k+2, mid, nr))
}
