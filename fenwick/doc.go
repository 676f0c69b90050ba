// Package fenwick implements a Fenwick (binary indexed) tree over a
// numeric type: point add and prefix sum in O(log n).
//
// Indices are 0-based. Node i covers the leaves [i & (i+1), i]; Add walks
// i |= i+1 upward and Prefix walks i = (i & (i+1)) - 1 downward.
//
// Operations:
//
//   - Add(i, x):      leaf i += x.
//   - Prefix(r):      sum of [0, r).
//   - Sum(l, r):      sum of [l, r).
//   - Get(i):         leaf i.
//   - LowerBound(x):  smallest r with Prefix(r+1) >= x, for non-negative leaves.
//
// Index arguments out of range panic like slice indexing; the E variants
// return ErrIndexOutOfRange instead.
package fenwick
