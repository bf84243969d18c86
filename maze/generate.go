package maze

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Generate lays out a maze of the given kind over g and returns the edits
// that turn g into it: every wall clear first (row-major), then wall
// placements in the generator's reveal order. Weights are untouched and g
// itself is not modified.
//
// The start and finish cells are never walled, and start always reaches
// finish in the resulting grid.
//
// Errors: ErrNilGrid, ErrUnknownKind, ErrOptionViolation and, if repair
// fails, ErrGenerationInvariantViolated.
func Generate(g *grid.Grid, kind Kind, opts ...Option) ([]grid.Edit, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	l := newLayout(g)
	rng := rngFor(o.Seed, streamLayout)
	switch kind {
	case KindRecursiveDivision:
		l.divide(rng)
	case KindBacktracker:
		l.backtrack(rng, o.Border)
	case KindPrim:
		l.prim(rng, o.Border)
	case KindSpiral:
		l.spiral()
	case KindCellular:
		l.cellular(rng, o)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	l.keepBorder = kind == KindCellular && o.SolidBorder
	if err := l.repair(o.Repair, rngFor(o.Seed, streamRepair)); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if kind == KindCellular {
		l.rowMajor()
	}
	return l.diff(), nil
}

// RecursiveDivision splits open chambers with one-gap walls.
func RecursiveDivision(g *grid.Grid, opts ...Option) ([]grid.Edit, error) {
	return Generate(g, KindRecursiveDivision, opts...)
}

// Backtracker carves a perfect maze with a randomized depth-first search.
func Backtracker(g *grid.Grid, opts ...Option) ([]grid.Edit, error) {
	return Generate(g, KindBacktracker, opts...)
}

// Prim carves a perfect maze with randomized Prim's frontier growth.
func Prim(g *grid.Grid, opts ...Option) ([]grid.Edit, error) {
	return Generate(g, KindPrim, opts...)
}

// Spiral draws concentric rings with rotating gaps. Deterministic.
func Spiral(g *grid.Grid, opts ...Option) ([]grid.Edit, error) {
	return Generate(g, KindSpiral, opts...)
}

// Cellular grows caves with a birth/death cellular automaton.
func Cellular(g *grid.Grid, opts ...Option) ([]grid.Edit, error) {
	return Generate(g, KindCellular, opts...)
}

// Build is Generate followed by Apply: it returns the new grid along with
// the edits that produced it.
func Build(g *grid.Grid, kind Kind, opts ...Option) (*grid.Grid, []grid.Edit, error) {
	edits, err := Generate(g, kind, opts...)
	if err != nil {
		return nil, nil, err
	}
	out, err := g.Apply(edits)
	if err != nil {
		return nil, nil, fmt.Errorf("maze: apply %s: %w", kind, err)
	}
	return out, edits, nil
}
