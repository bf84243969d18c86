package grid

// ReachableFrom flood-fills the open cells reachable from `from` through
// orthogonal moves and returns a row-major membership slice. A wall or
// out-of-bounds origin yields an all-false slice.
//
// Time:   O(R·C).
// Memory: O(R·C) for the seen flags and the queue.
func (g *Grid) ReachableFrom(from Coord) []bool {
	return g.floodFill(from, nil)
}

// ReachableFromLayout is ReachableFrom over a caller-supplied wall layout
// (row-major, same size as the grid) instead of the grid's own walls.
// Generators use it to check a candidate layout before emitting edits.
func (g *Grid) ReachableFromLayout(from Coord, wall []bool) []bool {
	return g.floodFill(from, wall)
}

// Reachable reports whether b can be reached from a.
func (g *Grid) Reachable(a, b Coord) bool {
	if !g.InBounds(b) {
		return false
	}
	return g.ReachableFrom(a)[g.Index(b)]
}

// Components finds all contiguous regions of open cells. Each component is
// a slice of row-major indices in BFS discovery order; components are
// ordered by their first cell in row-major order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components() [][]int {
	total := g.rows * g.cols
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if g.cells[i0].Wall || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range Directions {
				v := u.Add(d)
				if !g.Passable(v) {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// floodFill runs the BFS behind ReachableFrom; wall overrides the grid's
// walls when non-nil.
func (g *Grid) floodFill(from Coord, wall []bool) []bool {
	seen := make([]bool, g.rows*g.cols)
	blocked := func(i int) bool {
		if wall != nil {
			return wall[i]
		}
		return g.cells[i].Wall
	}
	if !g.InBounds(from) || blocked(g.Index(from)) {
		return seen
	}
	start := g.Index(from)
	seen[start] = true
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range Directions {
			v := u.Add(d)
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if seen[vi] || blocked(vi) {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return seen
}
