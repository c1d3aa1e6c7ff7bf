package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells,
// according to gg.Conn connectivity. Regions are listed in row-major order
// of their first cell; cells within a region in BFS order from that cell.
//
// Two points in different regions can never reach each other, so this is
// a cheap reachability pre-check before running a search.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]Point
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue // wall
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []Point

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := gg.Coordinate(u)
				comp = append(comp, Point{X: ux, Y: uy})
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Passable(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// Connected reports whether a and b lie in the same region of passable cells.
func (gg *GridGraph) Connected(a, b Point) bool {
	if !gg.Passable(a.X, a.Y) || !gg.Passable(b.X, b.Y) {
		return false
	}
	region := make(map[Point]int)
	for i, comp := range gg.ConnectedComponents() {
		for _, p := range comp {
			region[p] = i
		}
	}

	return region[a] == region[b]
}
