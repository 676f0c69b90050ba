package flow

import "context"

// FordFulkerson computes the maximum flow by augmenting along any residual
// path found with DFS. It is the simplest of the three and the slowest on
// large capacities; it shares the in-place and cancellation behavior of
// Dinic.
//
// Complexity: O(E·F) where F is the value of the maximum flow.
func FordFulkerson(ctx context.Context, nw *Network, source, sink int, opts *FlowOptions) (int64, error) {
	if err := nw.check(source, sink); err != nil {
		return 0, err
	}
	limit := opts.limit()
	used := make([]bool, nw.Len())

	var total int64
	for total < limit {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		for i := range used {
			used[i] = false
		}
		f := nw.dfsPush(source, sink, limit-total, used)
		if f == 0 {
			break
		}
		total += f
	}

	return total, nil
}

func (nw *Network) dfsPush(v, sink int, f int64, used []bool) int64 {
	if v == sink {
		return f
	}
	used[v] = true
	for i, e := range nw.g[v] {
		if e.cap <= 0 || used[e.to] {
			continue
		}
		if d := nw.dfsPush(e.to, sink, min(f, e.cap), used); d > 0 {
			nw.push(v, i, d)
			return d
		}
	}

	return 0
}
