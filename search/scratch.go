package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// noPred marks a cell without a predecessor.
const noPred = -1

// scratch is the per-run overlay of search bookkeeping. It lives only for
// one call and is indexed row*cols+col, so the Grid itself stays read-only.
type scratch struct {
	g       *grid.Grid
	visited []bool
	dist    []float64
	pred    Predecessors
	nbuf    []grid.Coord
}

// newScratch allocates the overlay for g with every distance at +Inf.
func newScratch(g *grid.Grid) *scratch {
	n := g.Size()
	s := &scratch{
		g:       g,
		visited: make([]bool, n),
		dist:    make([]float64, n),
		pred:    NewPredecessors(g),
		nbuf:    make([]grid.Coord, 0, len(grid.Directions)),
	}
	inf := math.Inf(1)
	for i := range s.dist {
		s.dist[i] = inf
	}
	return s
}

// neighbors returns the passable neighbours of c in a reused buffer. The
// slice is only valid until the next call.
func (s *scratch) neighbors(c grid.Coord) []grid.Coord {
	s.nbuf = s.g.AppendNeighbors(s.nbuf[:0], c)
	return s.nbuf
}

// complete fills Path, Cost and Reachable on res from the predecessor chain.
func (s *scratch) complete(res *Result, start, finish grid.Coord) *Result {
	res.Path = ReconstructPath(s.pred, start, finish)
	res.Reachable = len(res.Path) > 0
	res.Cost = PathCost(s.g, res.Path)
	return res
}

// prepare validates the grid, the endpoints and the options for alg.
func prepare(g *grid.Grid, start, finish grid.Coord, alg Algorithm, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrNilGrid
	}
	for _, c := range [2]grid.Coord{start, finish} {
		if !g.InBounds(c) {
			return o, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Rows(), g.Cols())
		}
		if g.IsWall(c) {
			return o, fmt.Errorf("%w: %v", ErrEndpointWall, c)
		}
	}
	if !alg.Weighted() && o.WeightPolicy == RejectWeighted && g.Weighted() {
		return o, fmt.Errorf("%w: %s", ErrWeightedGrid, alg)
	}
	return o, nil
}

// trivial is the shared answer when start == finish.
func trivial(alg Algorithm, c grid.Coord) *Result {
	return &Result{
		Algorithm: alg,
		Visited:   []grid.Coord{c},
		Path:      []grid.Coord{c},
		Reachable: true,
	}
}
