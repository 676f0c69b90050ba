package gridgraph

// ConnectedComponents finds the contiguous regions ("islands") of land
// cells under g.Conn. Each component lists row-major cell ids in BFS order
// from its first cell; components are ordered by their first cell in
// row-major scan.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsLand(x, y) {
				continue
			}
			i0 := g.Index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				g.neighbors(ux, uy, func(v int) {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				})
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
