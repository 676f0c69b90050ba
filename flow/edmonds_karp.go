package flow

import "context"

// EdmondsKarp computes the maximum flow by repeatedly augmenting along a
// shortest (fewest arcs) path found with BFS. It shares the in-place and
// cancellation behavior of Dinic.
//
// Complexity: O(V·E²).
func EdmondsKarp(ctx context.Context, nw *Network, source, sink int, opts *FlowOptions) (int64, error) {
	if err := nw.check(source, sink); err != nil {
		return 0, err
	}
	limit := opts.limit()
	n := nw.Len()
	// prev[v] is the (tail, arc index) pair that first reached v.
	prev := make([][2]int, n)

	var total int64
	for total < limit {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		if !nw.bfsAugmentingPath(source, sink, prev) {
			break
		}
		f := limit - total
		for v := sink; v != source; {
			p := prev[v]
			f = min(f, nw.g[p[0]][p[1]].cap)
			v = p[0]
		}
		for v := sink; v != source; {
			p := prev[v]
			nw.push(p[0], p[1], f)
			v = p[0]
		}
		total += f
	}

	return total, nil
}

// bfsAugmentingPath fills prev along a shortest residual path and reports
// whether sink was reached.
func (nw *Network) bfsAugmentingPath(source, sink int, prev [][2]int) bool {
	for i := range prev {
		prev[i] = [2]int{-1, -1}
	}
	prev[source] = [2]int{source, -1}
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		for i, e := range nw.g[v] {
			if e.cap <= 0 || prev[e.to][0] >= 0 {
				continue
			}
			prev[e.to] = [2]int{v, i}
			if e.to == sink {
				return true
			}
			queue = append(queue, e.to)
		}
	}

	return false
}
