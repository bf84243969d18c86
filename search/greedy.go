package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// Greedy runs greedy best-first search ordered by the Manhattan distance to
// finish alone. A cell's predecessor is fixed on first discovery and never
// relaxed, so the path is usually short in settles but not least-cost.
// Ties pop in discovery order.
//
// Complexity: O(R·C · log(R·C)) time, O(R·C) memory.
func Greedy(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	if _, err := prepare(g, start, finish, AlgGreedy, opts); err != nil {
		return nil, err
	}
	if start == finish {
		return trivial(AlgGreedy, start), nil
	}

	s := newScratch(g)
	res := &Result{Algorithm: AlgGreedy}
	h := manhattanTo(finish)
	fi := g.Index(finish)
	seen := make([]bool, g.Size())
	open := pq.NewHeap[int, rank](lessRank)

	si := g.Index(start)
	seen[si] = true
	open.Push(si, rank{f: h(start)})

	for open.Len() > 0 {
		ui, _, _ := open.Pop()
		s.visited[ui] = true
		u := g.Coordinate(ui)
		res.Visited = append(res.Visited, u)
		if ui == fi {
			return s.complete(res, start, finish), nil
		}
		for _, v := range s.neighbors(u) {
			vi := g.Index(v)
			if seen[vi] {
				continue
			}
			seen[vi] = true
			s.pred.setIdx(vi, ui)
			open.Push(vi, rank{f: h(v)})
		}
	}
	return res, nil
}
