// Package dijkstra provides single-source shortest paths on a weighted
// adjacency list indexed by vertex id, with non-negative int64 weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to every
//     reachable vertex in O((V + E) log V) time.
//   - It relies on a min-heap with lazy decrease-key: improved distances push
//     a new heap entry and stale entries are skipped when popped.
//   - The predecessor of every reached vertex is recorded, so any shortest
//     path can be rebuilt with Result.PathTo.
//
// Options:
//
//   - Source(s):               start vertex (default 0).
//   - WithMaxDistance(d):      vertices farther than d are left unreached (d ≥ 0).
//   - WithInfEdgeThreshold(t): arcs with weight ≥ t are impassable (t > 0).
//
// Errors (sentinel):
//
//   - ErrNilGraph        graph is nil.
//   - ErrVertexNotFound  source outside [0, V).
//   - ErrBadArc          an arc points outside [0, V).
//   - ErrNegativeWeight  an arc has a negative weight (detected by an O(E) pre-scan).
//   - ErrBadMaxDistance  WithMaxDistance(d) with d < 0 (panics in the option).
//   - ErrBadInfThreshold WithInfEdgeThreshold(t) with t ≤ 0 (panics in the option).
//
// Example:
//
//	g := dijkstra.FromEdges(3, []dijkstra.Edge{{0, 1, 4}, {1, 2, 1}, {0, 2, 7}}, false)
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := res.DistanceTo(2) // 5
//
// Dijkstra does not mutate the graph; concurrent calls on the same graph are safe.
package dijkstra
