package terrain

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("terrain: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("terrain: invalid option supplied")
)

// Weight range produced by Generate.
const (
	MinWeight uint32 = 1
	MaxWeight uint32 = 10
)

// Default tunables.
const (
	DefaultOctaves     = 4
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.0
	DefaultScale       = 0.1
	DefaultIntensity   = 1.6
)

// Option configures terrain generation.
type Option func(*Options)

// Options holds the noise and mapping tunables.
type Options struct {
	Seed        int64   // 0 ⇒ 1
	Octaves     int     // ≥ 1
	Persistence float64 // > 0, amplitude factor per octave
	Lacunarity  float64 // > 0, frequency factor per octave
	Scale       float64 // > 0, noise units per cell
	Intensity   float64 // > 0, exponent of the power curve; > 1 favours light terrain

	err error
}

// DefaultOptions returns the defaults listed on each With* option.
func DefaultOptions() Options {
	return Options{
		Octaves:     DefaultOctaves,
		Persistence: DefaultPersistence,
		Lacunarity:  DefaultLacunarity,
		Scale:       DefaultScale,
		Intensity:   DefaultIntensity,
	}
}

// WithSeed fixes the noise seed. Default: 0 (⇒ 1).
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithOctaves sets the fBm octave count. Default: 4.
func WithOctaves(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: octaves %d < 1", ErrOptionViolation, n)
			return
		}
		o.Octaves = n
	}
}

// WithPersistence sets the per-octave amplitude factor. Default: 0.5.
func WithPersistence(p float64) Option {
	return positive("persistence", p, func(o *Options) { o.Persistence = p })
}

// WithLacunarity sets the per-octave frequency factor. Default: 2.0.
func WithLacunarity(l float64) Option {
	return positive("lacunarity", l, func(o *Options) { o.Lacunarity = l })
}

// WithScale sets noise units per cell; smaller is smoother. Default: 0.1.
func WithScale(s float64) Option {
	return positive("scale", s, func(o *Options) { o.Scale = s })
}

// WithIntensity sets the power-curve exponent. Default: 1.6.
func WithIntensity(e float64) Option {
	return positive("intensity", e, func(o *Options) { o.Intensity = e })
}

func positive(name string, v float64, apply func(*Options)) Option {
	return func(o *Options) {
		if !(v > 0) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: %s %v must be positive and finite", ErrOptionViolation, name, v)
			return
		}
		apply(o)
	}
}

// Field samples the normalised terrain value in [0,1] for every cell, in
// row-major order:
//
//  1. fBm Perlin noise at (col·scale + ox, row·scale + oy), where the
//     offsets come from the seed so different seeds see different regions.
//  2. Min-max stretch to [0,1]; fBm clusters around 0, the stretch restores
//     contrast. A flat field maps to 0.
//  3. Power curve v^intensity.
func Field(rows, cols int, opts ...Option) ([]float64, error) {
	o, err := collect(opts)
	if err != nil {
		return nil, err
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: field size %dx%d is negative", ErrOptionViolation, rows, cols)
	}
	return field(rows, cols, o), nil
}

func collect(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func field(rows, cols int, o Options) []float64 {
	seed := o.Seed
	if seed == 0 {
		seed = 1
	}
	noise := NewNoise(seed)
	rng := rand.New(rand.NewSource(seed))
	ox, oy := rng.Float64()*256, rng.Float64()*256

	vals := make([]float64, rows*cols)
	lo, hi := math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := noise.FBM(float64(c)*o.Scale+ox, float64(r)*o.Scale+oy, o.Octaves, o.Persistence, o.Lacunarity)
			vals[r*cols+c] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	span := hi - lo
	for i, v := range vals {
		if span <= 1e-12 {
			vals[i] = 0
			continue
		}
		vals[i] = math.Pow((v-lo)/span, o.Intensity)
	}
	return vals
}

// WeightOf maps a normalised value to an integer weight in [1,10].
func WeightOf(v float64) uint32 {
	w := 1 + math.Round(9*v)
	switch {
	case w < float64(MinWeight) || math.IsNaN(w):
		return MinWeight
	case w > float64(MaxWeight):
		return MaxWeight
	}
	return uint32(w)
}

// Generate returns one weight edit for every cell of g, ordered outward
// from the grid centre (squared distance, then row, then column) so that a
// replay grows from the middle. Start and finish always get weight 1.
// Walls keep their wall flag; only weights change.
func Generate(g *grid.Grid, opts ...Option) ([]grid.Edit, error) {
	o, err := collect(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	rows, cols := g.Rows(), g.Cols()
	vals := field(rows, cols, o)
	start, finish := g.Index(g.Start()), g.Index(g.Finish())

	order := radialOrder(rows, cols)
	edits := make([]grid.Edit, 0, len(order))
	for _, i := range order {
		w := WeightOf(vals[i])
		if i == start || i == finish {
			w = MinWeight
		}
		edits = append(edits, grid.SetWeight(g.Coordinate(i), w))
	}
	return edits, nil
}

// radialOrder lists row-major indices by squared distance from the centre,
// ties broken by row then column. Doubled coordinates keep it integral.
func radialOrder(rows, cols int) []int {
	type key struct{ d, r, c, i int }
	keys := make([]key, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dr, dc := 2*r-(rows-1), 2*c-(cols-1)
			keys = append(keys, key{d: dr*dr + dc*dc, r: r, c: c, i: r*cols + c})
		}
	}
	sort.Slice(keys, func(a, b int) bool {
		ka, kb := keys[a], keys[b]
		if ka.d != kb.d {
			return ka.d < kb.d
		}
		if ka.r != kb.r {
			return ka.r < kb.r
		}
		return ka.c < kb.c
	})
	out := make([]int, len(keys))
	for k, e := range keys {
		out[k] = e.i
	}
	return out
}

// Flatten returns edits resetting every cell heavier than 1 back to 1, in
// row-major order.
func Flatten(g *grid.Grid) ([]grid.Edit, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	var edits []grid.Edit
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if g.Weight(c) != grid.DefaultWeight {
			edits = append(edits, grid.SetWeight(c, grid.DefaultWeight))
		}
	}
	return edits, nil
}
