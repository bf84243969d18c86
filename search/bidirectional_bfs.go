package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// frontier is one side of a bidirectional BFS.
type frontier struct {
	visited []bool
	pred    Predecessors
	queue   *pq.Queue[int]
}

func newFrontier(g *grid.Grid, from int) *frontier {
	f := &frontier{
		visited: make([]bool, g.Size()),
		pred:    NewPredecessors(g),
		queue:   pq.NewQueue[int](g.Size() / 8),
	}
	f.visited[from] = true
	f.queue.Push(from)
	return f
}

// BidirectionalBFS grows one BFS frontier from start and one from finish,
// alternating a single dequeue-expansion per side. The search meets when
// one side discovers a cell the other side has already visited; if either
// queue drains first there is no path.
//
// Visited interleaves both sides in expansion order. The path is the
// forward chain to the meeting cell followed by the backward chain to
// finish; it is shortest in steps up to the meeting-level tie.
//
// Complexity: O(R·C) time and memory.
func BidirectionalBFS(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	if _, err := prepare(g, start, finish, AlgBidirectionalBFS, opts); err != nil {
		return nil, err
	}
	if start == finish {
		return trivial(AlgBidirectionalBFS, start), nil
	}

	res := &Result{Algorithm: AlgBidirectionalBFS}
	fwd := newFrontier(g, g.Index(start))
	bwd := newFrontier(g, g.Index(finish))
	nbuf := make([]grid.Coord, 0, len(grid.Directions))

	// expand dequeues one cell on side cur and returns the meeting index,
	// or -1 when no meeting happened.
	expand := func(cur, other *frontier) int {
		ui, _ := cur.queue.Pop()
		u := g.Coordinate(ui)
		res.Visited = append(res.Visited, u)
		nbuf = g.AppendNeighbors(nbuf[:0], u)
		for _, v := range nbuf {
			vi := g.Index(v)
			if cur.visited[vi] {
				continue
			}
			cur.visited[vi] = true
			cur.pred.setIdx(vi, ui)
			if other.visited[vi] {
				res.Visited = append(res.Visited, v)
				return vi
			}
			cur.queue.Push(vi)
		}
		return -1
	}

	meet := -1
	for fwd.queue.Len() > 0 && bwd.queue.Len() > 0 {
		if meet = expand(fwd, bwd); meet >= 0 {
			break
		}
		if bwd.queue.Len() == 0 {
			break
		}
		if meet = expand(bwd, fwd); meet >= 0 {
			break
		}
	}
	if meet < 0 {
		return res, nil
	}

	res.Path = joinChains(g, fwd.pred, bwd.pred, meet)
	res.Reachable = true
	res.Cost = PathCost(g, res.Path)
	return res, nil
}

// joinChains builds start → meet from the forward arena and meet → finish
// from the backward arena without repeating meet.
func joinChains(g *grid.Grid, fwd, bwd Predecessors, meet int) []grid.Coord {
	head := fwd.chain(meet) // meet … start
	tail := bwd.chain(meet) // meet … finish
	path := make([]grid.Coord, 0, len(head)+len(tail)-1)
	for i := len(head) - 1; i >= 0; i-- {
		path = append(path, g.Coordinate(head[i]))
	}
	for _, k := range tail[1:] {
		path = append(path, g.Coordinate(k))
	}
	return path
}
