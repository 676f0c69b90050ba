// Package rerooting computes an all-roots tree DP ("rerooting", 全方位木DP):
// for every vertex v of an unrooted tree, the aggregate a rooted tree DP
// would produce if v were the root, in O(N) operator calls overall.
//
// What:
//
//   - The caller supplies a monoid (identity, Merge) over the aggregate
//     type T and an AddRoot function that folds a vertex's own contribution
//     into the merged value of its neighbors.
//   - New runs two passes over the tree and returns an Engine whose
//     Answers()[v] equals AddRoot(merge of every neighbor's contribution, v)
//     with the tree rooted at v.
//   - Merge need not be commutative. Neighbor contributions are always
//     combined in adjacency-list order, so order-sensitive aggregates
//     (sequences, matrix products, affine maps) are valid.
//
// How:
//
//  1. Downward pass. Rooted at vertex 0 (WithRoot to change it), each vertex
//     merges its children's values in adjacency order and applies AddRoot.
//     The value flowing from child c into v is stored in the edge slot
//     dp[v][i] where adj[v][i] == c.
//  2. Reroot pass. Walking down again, each vertex first overwrites its
//     parent-facing slot with the value flowing in from the parent side,
//     then builds prefix and suffix merges of its slots. The merge of every
//     slot except slot i is Merge(prefix[i], suffix[i+1]); AddRoot of that is
//     exactly what v contributes to child adj[v][i] once the tree is rerooted
//     through that child.
//
//     Prefix/suffix accumulation gives every "all but one neighbor" merge of
//     a degree-d vertex in O(d), so the total work is O(N).
//
// Both passes run on explicit stacks. Recursion depth, and therefore the
// goroutine stack, does not grow with tree height; a 10^6-vertex path is fine.
//
// Edge-aware aggregates:
//
//   - Build with Operators.PutEdge lifts each slot value across its directed
//     edge before merging. With PutEdge nil the lift is the identity and
//     Build behaves exactly like New.
//
// Errors:
//
//   - ErrNilOperator     Merge or AddRoot is nil.
//   - ErrBadRoot         the WithRoot vertex is outside [0, N).
//   - ErrMalformedTree   the adjacency list is not a tree; the underlying
//     tree.Err* sentinel is wrapped alongside it.
//   - ErrLawViolation    returned by CheckLaws for operators that break the
//     monoid laws on the supplied samples.
//
// Operator laws (associativity, two-sided identity) cannot be verified at
// runtime; violating them silently yields wrong answers. CheckLaws is a
// sampling helper for test harnesses.
//
// Complexity:
//
//   - Time:   O(N) calls to Merge, AddRoot and PutEdge (plus O(N α(N)) for validation).
//   - Memory: O(N) for the slot table, answers and traversal stacks.
//
// An Engine is immutable after construction and safe for concurrent reads.
package rerooting
