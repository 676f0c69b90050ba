// Package gridgraph treats a rectangular grid of cells as a graph.
//
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to adjacency lists ([][]int) and to unit-weight arcs for
//     the dijkstra package
//   - Connected components of land cells
//   - Shortest land paths between two cells (ShortestPath, via dijkstra)
//   - Minimum-conversion paths between two components (ExpandIsland)
//
// Cells with value < LandThreshold are water (or walls); the rest are land.
package gridgraph

import (
	"github.com/katalvlaran/kyopro/dijkstra"
)

// New builds a Grid from a non-empty, rectangular 2D slice, indexed
// values[y][x]. The input is deep-copied.
//
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:         w,
		Height:        h,
		Cells:         cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}, nil
}

// FromStrings builds a Grid from text rows such as a maze: the wall byte
// becomes water (0) and every other byte becomes land (1).
func FromStrings(rows []string, wall byte, conn Connectivity) (*Grid, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, len(row))
		for x := 0; x < len(row); x++ {
			if row[x] != wall {
				values[y][x] = 1
			}
		}
	}

	return New(values, GridOptions{LandThreshold: 1, Conn: conn})
}

// Len returns the number of cells.
func (g *Grid) Len() int { return g.Width * g.Height }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsLand reports whether the in-bounds cell (x,y) is land.
func (g *Grid) IsLand(x, y int) bool {
	return g.Cells[y][x] >= g.LandThreshold
}

// Index maps (x,y) to its row-major vertex id.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major vertex id back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// neighbors calls fn for every land neighbor of land cell (x,y).
func (g *Grid) neighbors(x, y int, fn func(v int)) {
	for _, d := range g.offsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) && g.IsLand(nx, ny) {
			fn(g.Index(nx, ny))
		}
	}
}

// Adjacency returns the undirected land graph: adj[v] lists the land
// neighbors of land cell v in offset order (N first, then clockwise).
// Water cells get empty lists.
//
// Complexity: O(W·H·d), d = 4 or 8.
func (g *Grid) Adjacency() [][]int {
	adj := make([][]int, g.Len())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsLand(x, y) {
				continue
			}
			u := g.Index(x, y)
			g.neighbors(x, y, func(v int) { adj[u] = append(adj[u], v) })
		}
	}

	return adj
}

// Arcs returns the land graph with unit weights, ready for
// dijkstra.Dijkstra.
func (g *Grid) Arcs() [][]dijkstra.Arc {
	adj := g.Adjacency()
	arcs := make([][]dijkstra.Arc, len(adj))
	for u, nbs := range adj {
		if len(nbs) == 0 {
			continue
		}
		arcs[u] = make([]dijkstra.Arc, len(nbs))
		for i, v := range nbs {
			arcs[u][i] = dijkstra.Arc{To: v, Weight: 1}
		}
	}

	return arcs
}
