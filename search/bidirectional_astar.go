package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// half is one direction of a bidirectional A* run.
type half struct {
	g       []float64
	closed  []bool
	pred    Predecessors
	open    *pq.Heap[int, rank]
	h       heuristic
	forward bool
}

func newHalf(gr *grid.Grid, from grid.Coord, h heuristic, forward bool) *half {
	n := gr.Size()
	x := &half{
		g:       make([]float64, n),
		closed:  make([]bool, n),
		pred:    NewPredecessors(gr),
		open:    pq.NewHeap[int, rank](lessRank),
		h:       h,
		forward: forward,
	}
	inf := math.Inf(1)
	for i := range x.g {
		x.g[i] = inf
	}
	fi := gr.Index(from)
	x.g[fi] = 0
	x.open.Push(fi, rank{f: h(from)})
	return x
}

// top returns the smallest f on the open list, or +Inf when empty.
func (x *half) top() float64 {
	_, p, ok := x.open.Peek()
	if !ok {
		return math.Inf(1)
	}
	return p.f
}

// BidirectionalAStar runs A* from both ends at once and returns a
// least-cost path, always matching Dijkstra's cost.
//
// The forward half charges w(v) for the move u→v. The backward half walks
// edges in reverse, so reaching v from u charges w(u): the cost of the
// forward move v→u. Each half uses the Manhattan distance to its own
// target, which keeps both heuristics consistent.
//
// μ is the best complete path seen so far: whenever a half improves g(v)
// and the other half has a finite g(v), μ = min(μ, gF(v)+gB(v)). The run
// stops once μ ≤ min(top f forward, top f backward); then no unexplored
// path can beat μ. If either open list drains while μ is +Inf there is no
// path. Halves alternate one expansion at a time.
//
// Complexity: O(R·C · log(R·C)) time, O(R·C) memory.
func BidirectionalAStar(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	if _, err := prepare(g, start, finish, AlgBidirectionalAStar, opts); err != nil {
		return nil, err
	}
	if start == finish {
		return trivial(AlgBidirectionalAStar, start), nil
	}

	res := &Result{Algorithm: AlgBidirectionalAStar}
	fwd := newHalf(g, start, manhattanTo(finish), true)
	bwd := newHalf(g, finish, manhattanTo(start), false)
	nbuf := make([]grid.Coord, 0, len(grid.Directions))

	mu := math.Inf(1)
	meet := -1

	expand := func(x, other *half) {
		ui, _, _ := x.open.Pop()
		x.closed[ui] = true
		u := g.Coordinate(ui)
		res.Visited = append(res.Visited, u)

		nbuf = g.AppendNeighbors(nbuf[:0], u)
		for _, v := range nbuf {
			vi := g.Index(v)
			if x.closed[vi] {
				continue
			}
			step := g.Weight(v)
			if !x.forward {
				step = g.Weight(u)
			}
			ng := x.g[ui] + float64(step)
			if ng >= x.g[vi] {
				continue
			}
			x.g[vi] = ng
			x.pred.setIdx(vi, ui)
			x.open.Push(vi, rank{f: ng + x.h(v), g: ng})
			if og := other.g[vi]; !math.IsInf(og, 1) && ng+og < mu {
				mu = ng + og
				meet = vi
			}
		}
	}

	forwardTurn := true
	for fwd.open.Len() > 0 && bwd.open.Len() > 0 {
		if mu <= math.Min(fwd.top(), bwd.top()) {
			break
		}
		if forwardTurn {
			expand(fwd, bwd)
		} else {
			expand(bwd, fwd)
		}
		forwardTurn = !forwardTurn
	}
	if meet < 0 {
		return res, nil
	}

	res.Path = joinChains(g, fwd.pred, bwd.pred, meet)
	res.Reachable = true
	res.Cost = PathCost(g, res.Path)
	return res, nil
}
