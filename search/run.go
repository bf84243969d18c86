package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

var registry = [...]Func{
	AlgBFS:                BFS,
	AlgDFS:                DFS,
	AlgDijkstra:           Dijkstra,
	AlgAStar:              AStar,
	AlgGreedy:             Greedy,
	AlgBidirectionalBFS:   BidirectionalBFS,
	AlgBidirectionalAStar: BidirectionalAStar,
	AlgJPS:                JPS,
}

// Lookup returns the implementation of alg.
func Lookup(alg Algorithm) (Func, error) {
	if alg < 0 || int(alg) >= len(registry) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	return registry[alg], nil
}

// Run executes alg between the grid's own start and finish cells.
func Run(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	fn, err := Lookup(alg)
	if err != nil {
		return nil, err
	}
	return fn(g, g.Start(), g.Finish(), opts...)
}
