// Package sparsetable answers range queries over an immutable slice in
// O(1) after an O(n log n) build.
//
// The operation must be associative and idempotent (op(x, x) == x):
// minimum, maximum, gcd, bitwise and/or. A query over [l, r) combines two
// overlapping power-of-two blocks, which is only sound because overlap
// does not change the result.
//
// Ranges are half-open, like package segtree. Query panics on an empty or
// out-of-range interval; QueryE returns ErrIndexOutOfRange instead.
package sparsetable
