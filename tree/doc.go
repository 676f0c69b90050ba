// Package tree converts between the tree encodings used across kyopro
// (parent-pointer arrays, edge lists, undirected adjacency lists) and
// validates that an adjacency list really describes a tree.
//
// Encodings:
//
//   - Parent array:   parents[v] is v's parent; the single root is marked
//     with -1 or with len(parents).
//   - Edge list:      n vertices 0..n-1 plus n-1 undirected pairs {u, v}.
//   - Adjacency list: adj[v] lists v's neighbors; every undirected edge
//     appears once in each endpoint's list.
//
// Validation (Validate) rejects, in this order:
//
//   - ErrEmpty             no vertices
//   - ErrVertexOutOfRange  a neighbor id outside [0, n)
//   - ErrSelfLoop          v listed in adj[v]
//   - ErrAsymmetric        u lists v a different number of times than v lists u
//   - ErrDisconnected      more than one component after uniting every edge
//   - ErrCycle             connected but total degree != 2(n-1); the error
//     also wraps ErrEdgeCount and names the edge that closed the cycle
//
// All traversals here are iterative; recursion depth never depends on
// tree height.
package tree
