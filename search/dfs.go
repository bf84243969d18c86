package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// frame is one pending DFS visit: the cell and the cell that pushed it.
type frame struct {
	idx, parent int
}

// DFS runs iterative depth-first search. Neighbours are pushed in reverse
// of the fixed up/right/down/left order so "up" is explored first. A cell's
// predecessor is fixed when the cell is popped and marked, so the path is
// the DFS tree branch that first reached finish. No optimality guarantee.
//
// Complexity: O(R·C) time and memory; no recursion.
func DFS(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	if _, err := prepare(g, start, finish, AlgDFS, opts); err != nil {
		return nil, err
	}
	if start == finish {
		return trivial(AlgDFS, start), nil
	}

	s := newScratch(g)
	res := &Result{Algorithm: AlgDFS}
	fi := g.Index(finish)
	st := pq.NewStack[frame](g.Size() / 4)
	st.Push(frame{idx: g.Index(start), parent: noPred})

	for st.Len() > 0 {
		f, _ := st.Pop()
		if s.visited[f.idx] {
			continue
		}
		s.visited[f.idx] = true
		s.pred.setIdx(f.idx, f.parent)
		u := g.Coordinate(f.idx)
		res.Visited = append(res.Visited, u)
		if f.idx == fi {
			return s.complete(res, start, finish), nil
		}

		nb := s.neighbors(u)
		for i := len(nb) - 1; i >= 0; i-- {
			vi := g.Index(nb[i])
			if !s.visited[vi] {
				st.Push(frame{idx: vi, parent: f.idx})
			}
		}
	}
	return res, nil
}
