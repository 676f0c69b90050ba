package fenwick

import "fmt"

// Tree is a Fenwick tree of n leaves, all zero initially.
type Tree[T Number] struct {
	val []T
}

// New returns a tree of n zero leaves.
func New[T Number](n int) *Tree[T] {
	return &Tree[T]{val: make([]T, max(n, 0))}
}

// FromSlice builds a tree whose leaves are a, in O(n).
func FromSlice[T Number](a []T) *Tree[T] {
	val := make([]T, len(a))
	copy(val, a)
	for i := range val {
		if j := i | (i + 1); j < len(val) {
			val[j] += val[i]
		}
	}

	return &Tree[T]{val: val}
}

// Len returns the number of leaves.
func (t *Tree[T]) Len() int { return len(t.val) }

// Add adds x to leaf i.
func (t *Tree[T]) Add(i int, x T) {
	if i < 0 || i >= len(t.val) {
		panic(fmt.Sprintf("fenwick: Add(%d) with %d leaves", i, len(t.val)))
	}
	for ; i < len(t.val); i |= i + 1 {
		t.val[i] += x
	}
}

// AddE is Add returning ErrIndexOutOfRange instead of panicking.
func (t *Tree[T]) AddE(i int, x T) error {
	if i < 0 || i >= len(t.val) {
		return fmt.Errorf("%w: leaf %d, len %d", ErrIndexOutOfRange, i, len(t.val))
	}
	t.Add(i, x)

	return nil
}

// Prefix returns the sum of leaves [0, r). r is clamped to [0, Len()].
func (t *Tree[T]) Prefix(r int) T {
	var s T
	for i := min(r, len(t.val)) - 1; i >= 0; i = (i & (i + 1)) - 1 {
		s += t.val[i]
	}

	return s
}

// Sum returns the sum of leaves [l, r); an empty range sums to zero.
func (t *Tree[T]) Sum(l, r int) T {
	if l >= r {
		var zero T
		return zero
	}

	return t.Prefix(r) - t.Prefix(l)
}

// SumE is Sum with strict bounds: 0 <= l <= r <= Len().
func (t *Tree[T]) SumE(l, r int) (T, error) {
	if l < 0 || r > len(t.val) || l > r {
		var zero T
		return zero, fmt.Errorf("%w: [%d, %d) with %d leaves", ErrIndexOutOfRange, l, r, len(t.val))
	}

	return t.Sum(l, r), nil
}

// Get returns leaf i.
func (t *Tree[T]) Get(i int) T {
	if i < 0 || i >= len(t.val) {
		panic(fmt.Sprintf("fenwick: Get(%d) with %d leaves", i, len(t.val)))
	}

	return t.Sum(i, i+1)
}

// LowerBound returns the smallest r such that Prefix(r+1) >= x, together
// with Prefix(r). When no prefix reaches x, r is Len(). Every leaf must
// be non-negative, so prefix sums are monotone.
//
// Complexity: O(log n).
func (t *Tree[T]) LowerBound(x T) (int, T) {
	n := len(t.val)
	step := 1
	for step < n {
		step <<= 1
	}
	// pos is the last index known to keep the prefix below x.
	pos := -1
	var before T
	for ; step > 0; step >>= 1 {
		if next := pos + step; next < n && t.val[next] < x {
			x -= t.val[next]
			before += t.val[next]
			pos = next
		}
	}

	return pos + 1, before
}
