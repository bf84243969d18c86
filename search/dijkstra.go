package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// rank is the heap priority of a frontier cell: f orders, g breaks ties.
type rank struct {
	f, g float64
}

// lessRank orders by f, then by g. Remaining ties fall back to insertion
// order inside pq.Heap.
func lessRank(a, b rank) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g < b.g
}

// heuristic estimates the remaining cost from a cell.
type heuristic func(c grid.Coord) float64

func zeroHeuristic(grid.Coord) float64 { return 0 }

func manhattanTo(target grid.Coord) heuristic {
	return func(c grid.Coord) float64 { return float64(grid.Manhattan(c, target)) }
}

// runner holds the state for one best-first run.
type runner struct {
	s     *scratch
	open  *pq.Heap[int, rank]
	h     heuristic
	res   *Result
	start grid.Coord
	end   grid.Coord
}

// Dijkstra finds a least-cost path where entering a cell costs its weight.
//
// The frontier is an indexed min-heap with decrease-key; each cell is
// settled at most once and its final distance is exact when popped. The
// run stops when finish is popped. Visited is the settle order.
//
// Complexity: O(R·C · log(R·C)) time, O(R·C) memory.
func Dijkstra(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	if _, err := prepare(g, start, finish, AlgDijkstra, opts); err != nil {
		return nil, err
	}
	if start == finish {
		return trivial(AlgDijkstra, start), nil
	}
	return newRunner(g, start, finish, AlgDijkstra, zeroHeuristic).run(), nil
}

// AStar is Dijkstra guided by the Manhattan distance to finish. Because
// every weight is at least 1 the heuristic is admissible and consistent, so
// the path cost always equals Dijkstra's. Ties on f prefer the lower g.
//
// Complexity: O(R·C · log(R·C)) worst case; usually far fewer settles.
func AStar(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	if _, err := prepare(g, start, finish, AlgAStar, opts); err != nil {
		return nil, err
	}
	if start == finish {
		return trivial(AlgAStar, start), nil
	}
	return newRunner(g, start, finish, AlgAStar, manhattanTo(finish)).run(), nil
}

func newRunner(g *grid.Grid, start, finish grid.Coord, alg Algorithm, h heuristic) *runner {
	return &runner{
		s:     newScratch(g),
		open:  pq.NewHeap[int, rank](lessRank),
		h:     h,
		res:   &Result{Algorithm: alg},
		start: start,
		end:   finish,
	}
}

// run executes the main loop:
//  1. Pop the lowest-ranked cell; mark it settled.
//  2. Stop if it is finish.
//  3. Relax every unsettled passable neighbour via decrease-key.
func (r *runner) run() *Result {
	s, g := r.s, r.s.g
	si, fi := g.Index(r.start), g.Index(r.end)
	s.dist[si] = 0
	r.open.Push(si, rank{f: r.h(r.start)})

	for r.open.Len() > 0 {
		ui, _, _ := r.open.Pop()
		s.visited[ui] = true
		u := g.Coordinate(ui)
		r.res.Visited = append(r.res.Visited, u)
		if ui == fi {
			return s.complete(r.res, r.start, r.end)
		}

		du := s.dist[ui]
		for _, v := range s.neighbors(u) {
			vi := g.Index(v)
			if s.visited[vi] {
				continue
			}
			nd := du + float64(g.Weight(v))
			if nd < s.dist[vi] {
				s.dist[vi] = nd
				s.pred.setIdx(vi, ui)
				r.open.Push(vi, rank{f: nd + r.h(v), g: nd})
			}
		}
	}
	return r.res
}
