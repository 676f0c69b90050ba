package flow

import "context"

// Dinic computes the maximum flow from source to sink with Dinic's
// algorithm (BFS level graph, then blocking flows with per-vertex arc
// pointers). Flow accumulates in nw, so the result can be inspected with
// Edge, Edges and MinCut; call Reset before running again.
//
// On cancellation the flow pushed so far is returned with the context
// error; nw then holds that partial flow.
//
// Complexity: O(V²E) in general; O(E√V) on unit-capacity networks.
func Dinic(ctx context.Context, nw *Network, source, sink int, opts *FlowOptions) (int64, error) {
	if err := nw.check(source, sink); err != nil {
		return 0, err
	}
	limit := opts.limit()
	n := nw.Len()
	level := make([]int, n)
	iter := make([]int, n)

	var total int64
	for total < limit {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		if !nw.buildLevels(source, sink, level) {
			break
		}
		for i := range iter {
			iter[i] = 0
		}
		for total < limit {
			f := nw.dinicPush(source, sink, limit-total, level, iter)
			if f == 0 {
				break
			}
			total += f
		}
	}

	return total, nil
}

// buildLevels stores BFS distances from source over arcs with spare
// capacity and reports whether sink was reached.
func (nw *Network) buildLevels(source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		for _, e := range nw.g[v] {
			if e.cap > 0 && level[e.to] < 0 {
				level[e.to] = level[v] + 1
				queue = append(queue, e.to)
			}
		}
	}

	return level[sink] >= 0
}

// dinicPush sends at most f units from v to sink along level-increasing
// arcs. iter[v] skips arcs already proven useless in this phase.
func (nw *Network) dinicPush(v, sink int, f int64, level, iter []int) int64 {
	if v == sink {
		return f
	}
	for ; iter[v] < len(nw.g[v]); iter[v]++ {
		e := nw.g[v][iter[v]]
		if e.cap <= 0 || level[e.to] != level[v]+1 {
			continue
		}
		if d := nw.dinicPush(e.to, sink, min(f, e.cap), level, iter); d > 0 {
			nw.push(v, iter[v], d)
			return d
		}
	}

	return 0
}
