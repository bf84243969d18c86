package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrUnknownKind is returned for an unrecognised generator.
	ErrUnknownKind = errors.New("maze: unknown generator kind")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrGenerationInvariantViolated means start and finish stayed
	// disconnected after repair. It signals a bug, not a runtime condition.
	ErrGenerationInvariantViolated = errors.New("maze: start and finish disconnected after repair")
)

// Kind selects a generator.
type Kind int

const (
	KindRecursiveDivision Kind = iota
	KindBacktracker
	KindPrim
	KindSpiral
	KindCellular
)

var kindNames = [...]string{
	KindRecursiveDivision: "division",
	KindBacktracker:       "backtracker",
	KindPrim:              "prim",
	KindSpiral:            "spiral",
	KindCellular:          "cellular",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every generator in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind maps a case-insensitive generator name to a Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "recursive-division", "recursive_division":
		return KindRecursiveDivision, nil
	case "dfs", "recursive-backtracker":
		return KindBacktracker, nil
	case "cellular-automata", "ca":
		return KindCellular, nil
	}
	for i, s := range kindNames {
		if s == n {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Repair selects how a disconnected layout is reconnected.
type Repair int

const (
	// RepairWalk carves a Manhattan-biased random walk from start, widening
	// it now and then, and falls back to RepairShortest if the walk runs
	// out of steps.
	RepairWalk Repair = iota
	// RepairShortest carves the route that crosses the fewest walls.
	RepairShortest
)

func (r Repair) String() string {
	switch r {
	case RepairWalk:
		return "walk"
	case RepairShortest:
		return "shortest"
	}
	return fmt.Sprintf("Repair(%d)", int(r))
}

// Default tunables.
const (
	DefaultWallChance  = 0.4
	DefaultBirthLimit  = 4
	DefaultDeathLimit  = 4
	DefaultGenerations = 1
)

// Option configures a generator via functional arguments.
type Option func(*Options)

// Options holds generator tunables. Unused fields are ignored by
// generators they do not apply to.
type Options struct {
	// Seed drives every random choice; 0 ⇒ fixed default seed.
	Seed int64

	// Border keeps a one-cell wall ring for Backtracker and Prim: rooms sit
	// on odd coordinates. Without it rooms sit on even coordinates and
	// passages may run along the grid edge.
	Border bool

	// WallChance is the initial wall probability for Cellular, in [0,1).
	WallChance float64

	// BirthLimit: an open cell becomes a wall when more than BirthLimit of
	// its 8 neighbours are walls.
	BirthLimit int

	// DeathLimit: a wall survives when at least DeathLimit of its 8
	// neighbours are walls.
	DeathLimit int

	// Generations is the number of automaton steps.
	Generations int

	// SolidBorder walls the outer ring after the automaton runs.
	SolidBorder bool

	// Repair picks the reconnection strategy.
	Repair Repair

	err error
}

// DefaultOptions returns the defaults listed on each With* option.
func DefaultOptions() Options {
	return Options{
		Seed:        0,
		Border:      true,
		WallChance:  DefaultWallChance,
		BirthLimit:  DefaultBirthLimit,
		DeathLimit:  DefaultDeathLimit,
		Generations: DefaultGenerations,
		SolidBorder: false,
		Repair:      RepairWalk,
	}
}

// WithSeed fixes the random seed. Default: 0 (⇒ seed 1).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithBorder toggles the wall ring for Backtracker and Prim. Default: true.
func WithBorder(on bool) Option {
	return func(o *Options) { o.Border = on }
}

// WithWallChance sets the initial wall density for Cellular. Default: 0.4.
func WithWallChance(p float64) Option {
	return func(o *Options) {
		if p < 0 || p >= 1 {
			o.err = fmt.Errorf("%w: wall chance %v outside [0,1)", ErrOptionViolation, p)
			return
		}
		o.WallChance = p
	}
}

// WithBirthLimit sets the Cellular birth threshold in [0,8]. Default: 4.
func WithBirthLimit(n int) Option {
	return func(o *Options) {
		if n < 0 || n > 8 {
			o.err = fmt.Errorf("%w: birth limit %d outside [0,8]", ErrOptionViolation, n)
			return
		}
		o.BirthLimit = n
	}
}

// WithDeathLimit sets the Cellular survival threshold in [0,8]. Default: 4.
func WithDeathLimit(n int) Option {
	return func(o *Options) {
		if n < 0 || n > 8 {
			o.err = fmt.Errorf("%w: death limit %d outside [0,8]", ErrOptionViolation, n)
			return
		}
		o.DeathLimit = n
	}
}

// WithGenerations sets the number of automaton steps (≥ 0). Default: 1.
func WithGenerations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: generations %d < 0", ErrOptionViolation, n)
			return
		}
		o.Generations = n
	}
}

// WithSolidBorder walls the outer ring of a Cellular layout. Default: false.
func WithSolidBorder(on bool) Option {
	return func(o *Options) { o.SolidBorder = on }
}

// WithRepair selects the reconnection strategy. Default: RepairWalk.
func WithRepair(r Repair) Option {
	return func(o *Options) {
		switch r {
		case RepairWalk, RepairShortest:
			o.Repair = r
		default:
			o.err = fmt.Errorf("%w: unknown repair strategy %d", ErrOptionViolation, int(r))
		}
	}
}
