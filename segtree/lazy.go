package segtree

import "fmt"

// Act applies the pending operator f to an aggregate x. For operators whose
// effect depends on how many leaves a node covers (range add into a sum),
// carry that count inside T.
type Act[T, F any] func(x T, f F) T

// Compose merges two pending operators: the result applies first, then
// second.
type Compose[F any] func(first, second F) F

// Lazy is a segment tree with range updates: Apply(l, r, f) acts f on
// every leaf of [l, r) in O(log n), deferring work to the nodes it touches.
type Lazy[T, F any] struct {
	data     []T
	lazy     []F
	has      []bool // has[k] reports a pending operator at node k
	identity T
	op       Op[T]
	act      Act[T, F]
	compose  Compose[F]
	n        int
	width    int // padded leaf count, a power of two
}

// NewLazy builds a lazy tree whose leaves are a copy of leaves.
// Returns ErrNilOp if any of op, act or compose is nil.
func NewLazy[T, F any](leaves []T, identity T, op Op[T], act Act[T, F], compose Compose[F]) (*Lazy[T, F], error) {
	if op == nil || act == nil || compose == nil {
		return nil, ErrNilOp
	}
	width := 1
	for width < len(leaves) {
		width *= 2
	}
	t := &Lazy[T, F]{
		data:     make([]T, 2*width-1),
		lazy:     make([]F, 2*width-1),
		has:      make([]bool, 2*width-1),
		identity: identity,
		op:       op,
		act:      act,
		compose:  compose,
		n:        len(leaves),
		width:    width,
	}
	for i := range t.data {
		t.data[i] = identity
	}
	copy(t.data[width-1:], leaves)
	for i := width - 2; i >= 0; i-- {
		t.data[i] = op(t.data[2*i+1], t.data[2*i+2])
	}

	return t, nil
}

// Len returns the number of leaves.
func (t *Lazy[T, F]) Len() int { return t.n }

// Apply acts f on every leaf in [l, r). Bounds are clamped to [0, Len()].
func (t *Lazy[T, F]) Apply(l, r int, f F) {
	l, r = max(l, 0), min(r, t.n)
	if l >= r {
		return
	}
	t.apply(l, r, f, 0, 0, t.width)
}

// ApplyE is Apply with strict bounds: 0 <= l <= r <= Len().
func (t *Lazy[T, F]) ApplyE(l, r int, f F) error {
	if l < 0 || r > t.n || l > r {
		return fmt.Errorf("%w: [%d, %d) with %d leaves", ErrIndexOutOfRange, l, r, t.n)
	}
	t.Apply(l, r, f)

	return nil
}

// Query aggregates leaves in [l, r); an empty range yields the identity.
// Bounds are clamped to [0, Len()].
func (t *Lazy[T, F]) Query(l, r int) T {
	l, r = max(l, 0), min(r, t.n)
	if l >= r {
		return t.identity
	}

	return t.query(l, r, 0, 0, t.width)
}

// QueryE is Query with strict bounds: 0 <= l <= r <= Len().
func (t *Lazy[T, F]) QueryE(l, r int) (T, error) {
	if l < 0 || r > t.n || l > r {
		return t.identity, fmt.Errorf("%w: [%d, %d) with %d leaves", ErrIndexOutOfRange, l, r, t.n)
	}

	return t.Query(l, r), nil
}

// Get returns leaf i with every pending operator applied.
// Panics if i is out of range.
func (t *Lazy[T, F]) Get(i int) T {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("segtree: Get(%d) with %d leaves", i, t.n))
	}

	return t.query(i, i+1, 0, 0, t.width)
}

// push settles node k's pending operator into its aggregate and hands it
// down to the children.
func (t *Lazy[T, F]) push(k int) {
	if !t.has[k] {
		return
	}
	f := t.lazy[k]
	if k < t.width-1 {
		for _, c := range [2]int{2*k + 1, 2*k + 2} {
			if t.has[c] {
				t.lazy[c] = t.compose(t.lazy[c], f)
			} else {
				t.lazy[c] = f
				t.has[c] = true
			}
		}
	}
	t.data[k] = t.act(t.data[k], f)
	t.has[k] = false
}

func (t *Lazy[T, F]) apply(l, r int, f F, k, nl, nr int) {
	t.push(k)
	if nr <= l || r <= nl {
		return
	}
	if l <= nl && nr <= r {
		t.lazy[k] = f
		t.has[k] = true
		t.push(k)
		return
	}
	mid := (nl + nr) / 2
	t.apply(l, r, f, 2*k+1, nl, mid)
	t.apply(l, r, f, 2*k+2, mid, nr)
	t.data[k] = t.op(t.data[2*k+1], t.data[2*k+2])
}

func (t *Lazy[T, F]) query(l, r, k, nl, nr int) T {
	if nr <= l || r <= nl {
		return t.identity
	}
	t.push(k)
	if l <= nl && nr <= r {
		return t.data[k]
	}
	mid := (nl + nr) / 2

	return t.op(t.query(l, r, 2*k+1, nl, mid), t.query(l, r, 2*k+2, mid, nr))
}
