// Package hld implements heavy-light decomposition of a static rooted tree.
//
// The decomposition lays the vertices out in one sequence (Order) such that
//
//   - every heavy chain occupies a contiguous index range, head first;
//   - every subtree occupies a contiguous index range (the sequence is also
//     a depth-first pre-order), see Subtree;
//
// so any path u–v splits into O(log N) closed index intervals (Path), ready
// to be fed to a range structure such as segtree.Tree.
//
// The heavy child of a vertex is its first child (in increasing id order)
// with the largest subtree. Construction is iterative and runs in O(N).
//
// Input is a parent array: parents[v] is v's parent and the root is marked
// with -1 or len(parents). Malformed arrays are rejected with the tree.Err*
// sentinels (ErrNoRoot, ErrMultipleRoots, ErrVertexOutOfRange, ErrSelfLoop,
// ErrCycle).
package hld
