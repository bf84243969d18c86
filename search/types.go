package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or finish lies outside the grid.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrEndpointWall is returned when start or finish is a wall.
	ErrEndpointWall = errors.New("search: endpoint is a wall")

	// ErrWeightedGrid is returned by unweighted algorithms configured with
	// RejectWeighted when the grid carries weights above 1.
	ErrWeightedGrid = errors.New("search: weighted grid rejected by unweighted algorithm")

	// ErrUnknownAlgorithm is returned by Lookup, Run and ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm names one of the eight search strategies.
type Algorithm int

const (
	AlgBFS Algorithm = iota
	AlgDFS
	AlgDijkstra
	AlgAStar
	AlgGreedy
	AlgBidirectionalBFS
	AlgBidirectionalAStar
	AlgJPS
)

var algorithmNames = [...]string{
	AlgBFS:                "bfs",
	AlgDFS:                "dfs",
	AlgDijkstra:           "dijkstra",
	AlgAStar:              "astar",
	AlgGreedy:             "greedy",
	AlgBidirectionalBFS:   "bibfs",
	AlgBidirectionalAStar: "biastar",
	AlgJPS:                "jps",
}

// String returns the short lowercase name, e.g. "astar".
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Weighted reports whether the algorithm ranks by cell weight. The others
// ignore or reject weights according to WeightPolicy.
func (a Algorithm) Weighted() bool {
	switch a {
	case AlgDijkstra, AlgAStar, AlgBidirectionalAStar:
		return true
	default:
		return false
	}
}

// Optimal reports whether the algorithm guarantees a least-cost path on the
// grids it accepts.
func (a Algorithm) Optimal() bool {
	switch a {
	case AlgBFS, AlgDijkstra, AlgAStar, AlgBidirectionalAStar, AlgJPS:
		return true
	default:
		return false
	}
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// ParseAlgorithm maps a case-insensitive name (as produced by String) back
// to an Algorithm. A few common spellings are accepted as aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "a*", "a-star":
		return AlgAStar, nil
	case "bidirectional-bfs", "bidirectional_bfs":
		return AlgBidirectionalBFS, nil
	case "bidirectional-astar", "bidirectional_astar":
		return AlgBidirectionalAStar, nil
	case "jump-point", "jump_point":
		return AlgJPS, nil
	}
	for i, s := range algorithmNames {
		if s == n {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// WeightPolicy decides how unweighted algorithms treat a weighted grid.
type WeightPolicy int

const (
	// IgnoreWeights runs unweighted algorithms as if every cell cost 1;
	// Result.Cost still reports the real weighted cost of the path found.
	IgnoreWeights WeightPolicy = iota
	// RejectWeighted makes unweighted algorithms fail with ErrWeightedGrid.
	RejectWeighted
)

// Option configures search behaviour via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds tunables shared by all algorithms.
type Options struct {
	// WeightPolicy applies to BFS, DFS, Greedy, Bidirectional BFS and JPS.
	WeightPolicy WeightPolicy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with WeightPolicy = IgnoreWeights.
func DefaultOptions() Options {
	return Options{WeightPolicy: IgnoreWeights}
}

// WithWeightPolicy selects how unweighted algorithms treat weights.
func WithWeightPolicy(p WeightPolicy) Option {
	return func(o *Options) {
		switch p {
		case IgnoreWeights, RejectWeighted:
			o.WeightPolicy = p
		default:
			o.err = fmt.Errorf("%w: unknown WeightPolicy %d", ErrOptionViolation, int(p))
		}
	}
}

// Result holds the outcome of one search run.
//
//   - Visited: cells in the order the algorithm settled them, for playback.
//     Populated even when the finish is unreachable.
//   - Path: start → finish inclusive; empty when Reachable is false.
//   - Cost: sum of entered-cell weights along Path (start excluded).
//   - JumpPoints: JPS only, the raw jump points in expansion order.
type Result struct {
	Algorithm  Algorithm
	Visited    []grid.Coord
	Path       []grid.Coord
	Reachable  bool
	Cost       int64
	JumpPoints []grid.Coord
}

// Steps returns the number of moves along Path.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Func is the common signature of every search algorithm.
type Func func(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error)
