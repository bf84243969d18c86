package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// BFS runs breadth-first search from start to finish.
//
// Cells are recorded in dequeue order. The search ends the moment finish is
// discovered as a neighbour; finish is then appended to Visited. On grids
// with uniform weights the path is shortest in steps.
//
// Complexity: O(R·C) time and memory.
func BFS(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	if _, err := prepare(g, start, finish, AlgBFS, opts); err != nil {
		return nil, err
	}
	if start == finish {
		return trivial(AlgBFS, start), nil
	}

	s := newScratch(g)
	res := &Result{Algorithm: AlgBFS}
	fi := g.Index(finish)
	q := pq.NewQueue[int](g.Size() / 4)

	si := g.Index(start)
	s.visited[si] = true
	q.Push(si)

	for q.Len() > 0 {
		ui, _ := q.Pop()
		u := g.Coordinate(ui)
		res.Visited = append(res.Visited, u)

		for _, v := range s.neighbors(u) {
			vi := g.Index(v)
			if s.visited[vi] {
				continue
			}
			s.visited[vi] = true
			s.pred.setIdx(vi, ui)
			if vi == fi {
				res.Visited = append(res.Visited, v)
				return s.complete(res, start, finish), nil
			}
			q.Push(vi)
		}
	}
	return res, nil
}
