// Package flow provides maximum-flow algorithms on an indexed residual
// network with int64 capacities.
//
// A Network is built with NewNetwork(n) and AddEdge(from, to, cap); every
// edge gets an id so its flow can be read back with Edge(id). The
// algorithms push flow into the network in place:
//
//   - Dinic:         level graph plus blocking flows, O(V²E).
//   - EdmondsKarp:   BFS shortest augmenting paths, O(V·E²).
//   - FordFulkerson: DFS augmenting paths, O(E·F).
//
// All three share the signature
//
//	func(ctx context.Context, nw *Network, source, sink int, opts *FlowOptions) (int64, error)
//
// and return the same value on the same network. After a run, MinCut(source)
// gives the source side of a minimum cut, and Reset restores the original
// capacities.
//
// The total capacity leaving the source must fit in int64.
//
// Errors:
//
//   - ErrSourceNotFound, ErrSinkNotFound  terminal outside [0, V)
//   - ErrSameSourceSink                  source == sink
//   - ErrVertexOutOfRange                AddEdge endpoint outside [0, V)
//   - EdgeError                          AddEdge with a negative capacity
//   - context errors                     cancellation, with the partial flow
//
// A Network is not safe for concurrent use.
package flow
