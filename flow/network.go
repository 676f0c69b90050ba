package flow

import "fmt"

// residual is one arc of the residual graph; rev indexes its partner in
// the adjacency list of to.
type residual struct {
	to, rev int
	cap     int64
}

// Network is a directed flow network on vertices 0..n-1. Each added edge
// keeps a paired reverse arc, so the algorithms below work on it in place
// and the flow on every edge can be read back afterwards.
type Network struct {
	g [][]residual
	// pos[id] locates edge id as (tail, index in g[tail]).
	pos [][2]int
}

// NewNetwork returns an empty network on n vertices.
func NewNetwork(n int) *Network {
	return &Network{g: make([][]residual, n)}
}

// Len returns the number of vertices.
func (nw *Network) Len() int { return len(nw.g) }

// AddEdge adds a directed edge from→to with the given capacity and
// returns its id. Ids are assigned 0, 1, 2, ... in call order.
// Self-loops are accepted and never carry flow.
func (nw *Network) AddEdge(from, to int, capacity int64) (int, error) {
	n := len(nw.g)
	if from < 0 || from >= n || to < 0 || to >= n {
		return 0, fmt.Errorf("%w: %d→%d with %d vertices", ErrVertexOutOfRange, from, to, n)
	}
	if capacity < 0 {
		return 0, EdgeError{From: from, To: to, Cap: capacity}
	}
	fi, ti := len(nw.g[from]), len(nw.g[to])
	if from == to {
		ti++
	}
	nw.g[from] = append(nw.g[from], residual{to: to, rev: ti, cap: capacity})
	nw.g[to] = append(nw.g[to], residual{to: from, rev: fi, cap: 0})
	nw.pos = append(nw.pos, [2]int{from, fi})

	return len(nw.pos) - 1, nil
}

// Edge returns edge id with its capacity and current flow.
func (nw *Network) Edge(id int) Edge {
	p := nw.pos[id]
	e := nw.g[p[0]][p[1]]
	re := nw.g[e.to][e.rev]

	return Edge{From: p[0], To: e.to, Cap: e.cap + re.cap, Flow: re.cap}
}

// Edges returns every edge in id order.
func (nw *Network) Edges() []Edge {
	out := make([]Edge, len(nw.pos))
	for id := range nw.pos {
		out[id] = nw.Edge(id)
	}

	return out
}

// Reset clears all flow, restoring every edge to its full capacity.
func (nw *Network) Reset() {
	for _, p := range nw.pos {
		e := &nw.g[p[0]][p[1]]
		re := &nw.g[e.to][e.rev]
		e.cap += re.cap
		re.cap = 0
	}
}

// MinCut returns the vertices reachable from source in the residual
// graph. After a maximum flow they form the source side of a minimum cut:
// the smallest such side, since it is exactly what the flow cannot leave.
func (nw *Network) MinCut(source int) []bool {
	seen := make([]bool, len(nw.g))
	if source < 0 || source >= len(nw.g) {
		return seen
	}
	seen[source] = true
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		for _, e := range nw.g[queue[head]] {
			if e.cap > 0 && !seen[e.to] {
				seen[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}

	return seen
}

// push moves d units along the arc g[v][i] and back along its partner.
func (nw *Network) push(v, i int, d int64) {
	e := &nw.g[v][i]
	e.cap -= d
	nw.g[e.to][e.rev].cap += d
}

// check validates the terminals shared by every algorithm.
func (nw *Network) check(source, sink int) error {
	n := len(nw.g)
	if source < 0 || source >= n {
		return fmt.Errorf("%w: %d with %d vertices", ErrSourceNotFound, source, n)
	}
	if sink < 0 || sink >= n {
		return fmt.Errorf("%w: %d with %d vertices", ErrSinkNotFound, sink, n)
	}
	if source == sink {
		return fmt.Errorf("%w: %d", ErrSameSourceSink, source)
	}

	return nil
}
