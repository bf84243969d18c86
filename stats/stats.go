// Package stats summarises search runs. A run produces an Outcome, which is
// either a Single run or a head-to-head Race between two algorithms;
// callers type-switch on the concrete variant.
package stats

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Stats describes one search run.
type Stats struct {
	RunID      uuid.UUID
	Algorithm  search.Algorithm
	Visited    int   // cells settled
	PathLength int   // cells on the path, endpoints included
	PathCost   int64 // sum of entered-cell weights
	Reachable  bool
	Elapsed    time.Duration
}

// FromResult builds Stats for res with a fresh RunID.
func FromResult(res *search.Result, elapsed time.Duration) Stats {
	return Stats{
		RunID:      uuid.New(),
		Algorithm:  res.Algorithm,
		Visited:    len(res.Visited),
		PathLength: len(res.Path),
		PathCost:   res.Cost,
		Reachable:  res.Reachable,
		Elapsed:    elapsed,
	}
}

func (s Stats) String() string {
	if !s.Reachable {
		return fmt.Sprintf("%s: unreachable, visited=%d (%s)", s.Algorithm, s.Visited, s.Elapsed)
	}
	return fmt.Sprintf("%s: visited=%d length=%d cost=%d (%s)",
		s.Algorithm, s.Visited, s.PathLength, s.PathCost, s.Elapsed)
}

// Outcome is implemented by Single and Race only.
type Outcome interface {
	isOutcome()
}

// Single is the outcome of one algorithm run.
type Single struct {
	Stats
}

// Race is the outcome of two algorithms run on the same grid.
type Race struct {
	Left, Right Stats
}

func (Single) isOutcome() {}
func (Race) isOutcome()   {}

// Side names the winner of a Race.
type Side int

const (
	Tie Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "tie"
}

// Winner ranks the two runs: a reachable result beats an unreachable one,
// then lower path cost wins, then fewer visited cells. Anything else is a
// Tie. Elapsed time is ignored because it is not reproducible.
func (r Race) Winner() Side {
	a, b := r.Left, r.Right
	switch {
	case a.Reachable != b.Reachable:
		if a.Reachable {
			return Left
		}
		return Right
	case a.Reachable && a.PathCost != b.PathCost:
		if a.PathCost < b.PathCost {
			return Left
		}
		return Right
	case a.Visited != b.Visited:
		if a.Visited < b.Visited {
			return Left
		}
		return Right
	}
	return Tie
}

// Run times one algorithm on g between its own endpoints.
func Run(g *grid.Grid, alg search.Algorithm, opts ...search.Option) (Single, *search.Result, error) {
	begin := time.Now()
	res, err := search.Run(g, alg, opts...)
	if err != nil {
		return Single{}, nil, err
	}
	return Single{Stats: FromResult(res, time.Since(begin))}, res, nil
}

// RunRace runs left and right concurrently on g. The grid is read-only to
// every search, so sharing it is safe.
func RunRace(g *grid.Grid, left, right search.Algorithm, opts ...search.Option) (Race, [2]*search.Result, error) {
	var (
		wg   sync.WaitGroup
		out  [2]Single
		res  [2]*search.Result
		errs [2]error
	)
	for i, alg := range [2]search.Algorithm{left, right} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i], res[i], errs[i] = Run(g, alg, opts...)
		}()
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			side := Left
			if i == 1 {
				side = Right
			}
			return Race{}, res, fmt.Errorf("stats: race %s side: %w", side, err)
		}
	}
	return Race{Left: out[0].Stats, Right: out[1].Stats}, res, nil
}

// Describe renders any Outcome as one or two lines of text.
func Describe(o Outcome) string {
	switch v := o.(type) {
	case Single:
		return v.Stats.String()
	case Race:
		return fmt.Sprintf("%s\n%s\nwinner: %s", v.Left, v.Right, v.Winner())
	}
	return fmt.Sprintf("unknown outcome %T", o)
}
