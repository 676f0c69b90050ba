// Package unionfind provides a disjoint-set forest (union-find) over the
// dense integer universe 0..n-1.
//
// What:
//
//   - Root(x):      representative of x's set, with iterative path compression.
//   - Unite(x, y):  merges the sets of x and y by size (smaller under larger).
//   - Same(x, y):   reports whether x and y share a representative.
//   - Size(x):      number of elements in x's set.
//   - Count():      number of disjoint sets remaining.
//
// Weighted[T] adds a potential per element in an abelian group (sums,
// xor, ...): Unite(x, y, d) records weight(y) - weight(x) = d and
// Diff(x, y) reads it back for any two elements of one set.
//
// Why:
//
//   - Kruskal's minimum spanning forest (see package mst).
//   - Cycle and connectivity checks for tree validation (see package tree).
//   - Offline connectivity queries in contest-style input.
//
// Complexity:
//
//   - Every operation runs in amortized O(α(n)), where α is the inverse
//     Ackermann function. Memory: O(n).
//
// Errors:
//
//   - The checked variants (RootE, UniteE) return ErrOutOfRange for ids
//     outside [0, n). The unchecked variants panic like slice indexing does.
//
// A UnionFind is not safe for concurrent use.
package unionfind
