package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// jumper scans straight lines for jump points on a 4-connected grid.
type jumper struct {
	g      *grid.Grid
	finish grid.Coord
}

func (j *jumper) open(c grid.Coord) bool { return j.g.Passable(c) }

// forced reports a forced neighbour off side p while travelling along d:
// the side cell is open but the side cell one step back is blocked.
func (j *jumper) forced(c, d, p grid.Coord) bool {
	return j.open(c.Add(p)) && !j.open(c.Sub(d).Add(p))
}

// jump walks from c in direction d and returns the first jump point.
//
// Horizontal moves stop at finish or at a cell with a forced neighbour
// above or below. Vertical moves stop at finish, at a forced neighbour
// left or right, or at any cell from which a horizontal scan finds a jump
// point. Running into a wall or the edge yields no jump point.
func (j *jumper) jump(c, d grid.Coord) (grid.Coord, bool) {
	horizontal := d.Col != 0
	for {
		c = c.Add(d)
		if !j.open(c) {
			return grid.Coord{}, false
		}
		if c == j.finish {
			return c, true
		}
		if horizontal {
			if j.forced(c, d, grid.Up) || j.forced(c, d, grid.Down) {
				return c, true
			}
			continue
		}
		if j.forced(c, d, grid.Left) || j.forced(c, d, grid.Right) {
			return c, true
		}
		if _, ok := j.jump(c, grid.Left); ok {
			return c, true
		}
		if _, ok := j.jump(c, grid.Right); ok {
			return c, true
		}
	}
}

// direction returns the unit step from a to b, which share a row or column.
func direction(a, b grid.Coord) grid.Coord {
	return grid.Coord{Row: sign(b.Row - a.Row), Col: sign(b.Col - a.Col)}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// JPS runs Jump Point Search adapted to 4-connected movement.
//
// A* runs over jump points only: straight scans skip every cell that has no
// forced neighbour, and the edge cost between two jump points is their
// Manhattan distance. At start all four directions are scanned; elsewhere
// every direction except straight back is scanned (a horizontal arrival
// tries up, down and forward; a vertical arrival tries left, right and
// forward). On uniform-weight grids the path length equals A*'s.
//
// Visited lists every cell swept between consecutive settled jump points,
// each cell once, so playback looks cell-by-cell. JumpPoints holds the
// settled jump points in order. Path is re-expanded along the segments.
//
// Complexity: O(R·C · log(R·C)) worst case; typically far fewer heap
// operations than A* on open maps.
func JPS(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	if _, err := prepare(g, start, finish, AlgJPS, opts); err != nil {
		return nil, err
	}
	if start == finish {
		res := trivial(AlgJPS, start)
		res.JumpPoints = []grid.Coord{start}
		return res, nil
	}

	s := newScratch(g)
	res := &Result{Algorithm: AlgJPS}
	j := &jumper{g: g, finish: finish}
	h := manhattanTo(finish)
	shown := make([]bool, g.Size())
	open := pq.NewHeap[int, rank](lessRank)

	show := func(c grid.Coord) {
		if i := g.Index(c); !shown[i] {
			shown[i] = true
			res.Visited = append(res.Visited, c)
		}
	}

	si, fi := g.Index(start), g.Index(finish)
	s.dist[si] = 0
	open.Push(si, rank{f: h(start)})

	for open.Len() > 0 {
		ui, _, _ := open.Pop()
		s.visited[ui] = true
		u := g.Coordinate(ui)
		res.JumpPoints = append(res.JumpPoints, u)

		var back grid.Coord
		if p := s.pred.getIdx(ui); p >= 0 {
			parent := g.Coordinate(p)
			d := direction(parent, u)
			for c := parent.Add(d); c != u; c = c.Add(d) {
				show(c)
			}
			back = grid.Coord{Row: -d.Row, Col: -d.Col}
		}
		show(u)
		if ui == fi {
			res.Path = expandSegments(g, s.pred, start, finish)
			res.Reachable = len(res.Path) > 0
			res.Cost = PathCost(g, res.Path)
			return res, nil
		}

		for _, d := range grid.Directions {
			if d == back {
				continue
			}
			jp, ok := j.jump(u, d)
			if !ok {
				continue
			}
			ji := g.Index(jp)
			if s.visited[ji] {
				continue
			}
			ng := s.dist[ui] + float64(grid.Manhattan(u, jp))
			if ng < s.dist[ji] {
				s.dist[ji] = ng
				s.pred.setIdx(ji, ui)
				open.Push(ji, rank{f: ng + h(jp), g: ng})
			}
		}
	}
	return res, nil
}

// expandSegments turns the chain of jump points ending at finish into a
// cell-by-cell path.
func expandSegments(g *grid.Grid, pred Predecessors, start, finish grid.Coord) []grid.Coord {
	points := ReconstructPath(pred, start, finish)
	if len(points) == 0 {
		return nil
	}
	path := []grid.Coord{points[0]}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		d := direction(a, b)
		for c := a.Add(d); ; c = c.Add(d) {
			path = append(path, c)
			if c == b {
				break
			}
		}
	}
	return path
}
