// Package segtree implements a point-update, range-aggregate segment tree
// over any monoid (T, op, identity).
//
// The tree is array-backed: leaves are padded to the next power of two,
// node i has children 2i+1 and 2i+2, and the root is node 0. Range queries
// use recursive decomposition of [l, r) into maximal covered nodes; the
// recursion depth is O(log n) so it is kept recursive.
//
// Complexity:
//
//   - New:    O(n) op calls.
//   - Update: O(log n) op calls.
//   - Query:  O(log n) op calls.
//   - Memory: O(n).
//
// op must be associative and identity must be its two-sided identity;
// op need not be commutative, the left operand is always the left range.
package segtree
