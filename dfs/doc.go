// Package dfs implements depth-first algorithms on directed graphs given
// as adjacency lists of vertex ids: graph[u] lists the heads of the arcs
// leaving u.
//
// What:
//
//   - TopologicalSort: Kahn's algorithm with a FIFO queue. Returns
//     ErrCycleDetected when the graph is not a DAG.
//   - FindCycle / HasCycle: White/Gray/Black coloring; the first back-edge
//     yields one closed cycle [v0, ..., v0].
//   - StronglyConnected: Kosaraju's two passes. Component ids follow a
//     topological order of the condensation, so SCC.Condense is a DAG whose
//     arcs always go from a smaller id to a larger one.
//
// Every traversal keeps its own stack, so deep graphs (long paths of a
// million vertices) never grow the goroutine stack.
//
// Complexity:
//
//   - TopologicalSort:   Time O(V+E), Memory O(V)
//   - FindCycle:         Time O(V+E), Memory O(V)
//   - StronglyConnected: Time O(V+E), Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil          graph is nil
//   - ErrVertexOutOfRange  an arc points outside [0, V)
//   - ErrCycleDetected     TopologicalSort found a cycle
//   - context errors       when a WithContext context is canceled
package dfs
