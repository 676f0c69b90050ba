package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/kyopro/dijkstra"
)

// ShortestPath returns the number of steps on a shortest land-only path
// from (sx,sy) to (tx,ty) and the path itself as row-major ids, both ends
// included. Moves follow g.Conn; every move costs 1.
//
// Errors: ErrOutOfBounds, ErrNotLand for a water endpoint, ErrNoPath when
// the two cells lie in different components.
func (g *Grid) ShortestPath(sx, sy, tx, ty int) (int64, []int, error) {
	for _, c := range [][2]int{{sx, sy}, {tx, ty}} {
		if !g.InBounds(c[0], c[1]) {
			return 0, nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, c[0], c[1], g.Width, g.Height)
		}
		if !g.IsLand(c[0], c[1]) {
			return 0, nil, fmt.Errorf("%w: (%d,%d)", ErrNotLand, c[0], c[1])
		}
	}
	res, err := dijkstra.Dijkstra(g.Arcs(), dijkstra.Source(g.Index(sx, sy)))
	if err != nil {
		return 0, nil, err
	}
	t := g.Index(tx, ty)
	path, ok := res.PathTo(t)
	if !ok {
		return 0, nil, fmt.Errorf("%w: (%d,%d) to (%d,%d)", ErrNoPath, sx, sy, tx, ty)
	}

	return res.Dist[t], path, nil
}
