// Package dijkstra implements Dijkstra's shortest-path algorithm.
//
// Notes on implementation choices:
//
//   - An upfront scan of all arcs (O(E)) rejects negative weights and
//     dangling arcs before any work is done.
//   - Arcs with weight ≥ InfEdgeThreshold are skipped as impassable.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - Lazy decrease-key: duplicates are pushed and stale entries ignored.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Result holds the distances and shortest-path tree from one source.
type Result struct {
	// Source is the start vertex.
	Source int

	// Dist[v] is the shortest distance to v, or Unreachable.
	Dist []int64

	// Prev[v] is v's predecessor on one shortest path, or -1 for the
	// source and unreached vertices.
	Prev []int
}

// DistanceTo returns the distance to v and whether v was reached.
func (r *Result) DistanceTo(v int) (int64, bool) {
	if v < 0 || v >= len(r.Dist) || r.Dist[v] == Unreachable {
		return 0, false
	}

	return r.Dist[v], true
}

// PathTo returns the vertices of one shortest path Source→v, inclusive.
func (r *Result) PathTo(v int) ([]int, bool) {
	if _, ok := r.DistanceTo(v); !ok {
		return nil, false
	}
	path := []int{v}
	for v != r.Source {
		v = r.Prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// Dijkstra computes shortest distances from Options.Source to every vertex
// of graph, where graph[u] lists the arcs leaving u.
//
// Preconditions and validation (in order):
//  1. graph must be non-nil (ErrNilGraph).
//  2. Source must be in [0, V) (ErrVertexNotFound).
//  3. Every arc must point into [0, V) (ErrBadArc).
//  4. No arc may have negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(graph [][]Arc, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source.
	if graph == nil {
		return nil, ErrNilGraph
	}
	n := len(graph)
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d with %d vertices", ErrVertexNotFound, cfg.Source, n)
	}

	// 3) Pre-scan arcs.
	for u, arcs := range graph {
		for _, a := range arcs {
			if a.To < 0 || a.To >= n {
				return nil, fmt.Errorf("%w: %d→%d", ErrBadArc, u, a.To)
			}
			if a.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	// 4) Run.
	r := &runner{
		graph:   graph,
		options: cfg,
		res: &Result{
			Source: cfg.Source,
			Dist:   make([]int64, n),
			Prev:   make([]int, n),
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return r.res, nil
}

// FromEdges builds an adjacency list on n vertices. Undirected edges are
// added in both directions. Edges with endpoints outside [0, n) are kept,
// so Dijkstra reports them as ErrBadArc.
func FromEdges(n int, edges []Edge, directed bool) [][]Arc {
	graph := make([][]Arc, n)
	for _, e := range edges {
		if e.From >= 0 && e.From < n {
			graph[e.From] = append(graph[e.From], Arc{To: e.To, Weight: e.Weight})
		}
		if !directed && e.To >= 0 && e.To < n {
			graph[e.To] = append(graph[e.To], Arc{To: e.From, Weight: e.Weight})
		}
	}

	return graph
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	graph   [][]Arc // read-only input
	options Options
	res     *Result
	visited []bool // distance finalized
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes the source at 0.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = Unreachable
		r.res.Prev[v] = -1
	}
	r.res.Dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest vertex until the heap is empty or the next
// distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the distance of every head reachable through u's arcs.
// Assumes Dist[u] is final.
func (r *runner) relax(u int) {
	dist := r.res.Dist
	var newDist int64
	for _, a := range r.graph[u] {
		// Impassable wall.
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if dist[u] > Unreachable-a.Weight {
			continue // would overflow
		}
		newDist = dist[u] + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= dist[a.To] {
			continue
		}
		dist[a.To] = newDist
		r.res.Prev[a.To] = u
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
	}
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
