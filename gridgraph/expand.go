package gridgraph

import (
	"container/list"
)

// ExpandIsland finds a minimum-conversion path of water cells that joins
// component srcComp to component dstComp, as numbered by
// ConnectedComponents. Each water cell on the path costs 1; land is free.
// It returns the path as row-major ids (from a src cell to a dst cell,
// inclusive) and the number of water cells on it.
//
// The search is a multi-source 0-1 BFS: zero-cost moves go to the front
// of the deque, unit-cost moves to the back.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (g *Grid) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := g.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	inDst := make([]bool, g.Len())
	for _, i := range comps[dstComp] {
		inDst[i] = true
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, g.Len())
	prev := make([]int, g.Len())
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if inDst[u] {
			target = u
			break
		}
		ux, uy := g.Coordinate(u)
		for _, d := range g.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.Index(vx, vy)
			step := 0
			if !g.IsLand(vx, vy) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every cell is passable at some cost and dstComp is non-empty, so
	// the loop above always sets target.
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
