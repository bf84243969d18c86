package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stats"
	"github.com/katalvlaran/gridpath/terrain"
)

// Sentinel errors.
var (
	// ErrParse wraps HCL syntax and decoding diagnostics.
	ErrParse = errors.New("scenario: parse")
	// ErrInvalid reports a well-formed file whose values make no sense.
	ErrInvalid = errors.New("scenario: invalid")
	// ErrTooLarge is returned when rows×cols exceeds Defaults.MaxCells.
	ErrTooLarge = errors.New("scenario: grid too large")
)

// Defaults carries values that a file may omit.
type Defaults struct {
	Seed     int64 // exposed as default_seed, used when maze/terrain omit seed
	MaxCells int   // 0 disables the bound
}

// Scenario is a decoded scenario file.
type Scenario struct {
	Name          string
	Rows, Cols    int
	Layout        []string // non-nil when the grid came from ASCII rows
	Start, Finish grid.Coord
	Maze          *MazeStep
	Terrain       *TerrainStep
	Runs          []RunStep
	Races         []RaceStep
}

// MazeStep generates walls before any search.
type MazeStep struct {
	Kind    maze.Kind
	Options []maze.Option
}

// TerrainStep assigns weights after the maze.
type TerrainStep struct {
	Options []terrain.Option
}

// RunStep is one named search.
type RunStep struct {
	Name      string
	Algorithm search.Algorithm
	Options   []search.Option
}

// RaceStep is one named head-to-head search.
type RaceStep struct {
	Name        string
	Left, Right search.Algorithm
	Options     []search.Option
}

// Load reads and decodes the scenario file at path.
func Load(ctx context.Context, path string, def Defaults) (*Scenario, error) {
	LoggerFrom(ctx).Debug("Loading scenario file.", "path", path)
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrParse, path, diags)
	}
	return decode(ctx, file.Body, path, def)
}

// Parse decodes a scenario held in memory; filename is used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string, def Defaults) (*Scenario, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrParse, filename, diags)
	}
	return decode(ctx, file.Body, filename, def)
}

func decode(ctx context.Context, body hcl.Body, name string, def Defaults) (*Scenario, error) {
	logger := LoggerFrom(ctx)
	if def.Seed == 0 {
		def.Seed = 1
	}

	// Pass 1: grid size only, so rows and cols can be variables afterwards.
	var sizes sizeFile
	if diags := gohcl.DecodeBody(body, evalContext(def.Seed, 0, 0), &sizes); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode grid block in %s: %w", ErrParse, name, diags)
	}
	if sizes.Grid == nil {
		return nil, fmt.Errorf("%w: %s: missing grid block", ErrInvalid, name)
	}
	sc := &Scenario{Name: name}
	if err := sc.size(sizes.Grid, def); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("Decoded grid size.", "rows", sc.Rows, "cols", sc.Cols, "layout", sc.Layout != nil)

	// Pass 2: everything else, with rows and cols in scope.
	ectx := evalContext(def.Seed, sc.Rows, sc.Cols)
	var ends endpointBlock
	if diags := gohcl.DecodeBody(sizes.Grid.Remain, ectx, &ends); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode grid endpoints in %s: %w", ErrParse, name, diags)
	}
	if err := sc.endpoints(ends); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var rest bodyFile
	if diags := gohcl.DecodeBody(sizes.Remain, ectx, &rest); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", ErrParse, name, diags)
	}
	if err := sc.steps(rest, def); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("Scenario decoded.", "name", name, "runs", len(sc.Runs), "races", len(sc.Races))
	return sc, nil
}

func (sc *Scenario) size(b *sizeBlock, def Defaults) error {
	switch {
	case len(b.Layout) > 0:
		if b.Rows != nil || b.Cols != nil {
			return fmt.Errorf("%w: layout and rows/cols are mutually exclusive", ErrInvalid)
		}
		sc.Layout = b.Layout
		sc.Rows, sc.Cols = len(b.Layout), len(b.Layout[0])
	case b.Rows != nil && b.Cols != nil:
		sc.Rows, sc.Cols = *b.Rows, *b.Cols
	default:
		return fmt.Errorf("%w: grid needs rows and cols or a layout", ErrInvalid)
	}
	return def.CheckSize(sc.Rows, sc.Cols)
}

// CheckSize reports whether a rows×cols grid is at least grid.MinSize on
// each side and holds no more than MaxCells cells.
func (def Defaults) CheckSize(rows, cols int) error {
	if rows < grid.MinSize || cols < grid.MinSize {
		return fmt.Errorf("%w: grid %dx%d is below %dx%d", ErrInvalid, rows, cols, grid.MinSize, grid.MinSize)
	}
	// rows > MaxCells/cols is rows*cols > MaxCells without the overflow
	if def.MaxCells > 0 && rows > def.MaxCells/cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrTooLarge, rows, cols, def.MaxCells)
	}
	return nil
}

// Validate checks a Scenario assembled in code against the rules Parse
// applies to files: size bounds, unique run and race names, at least one
// step.
func (sc *Scenario) Validate(def Defaults) error {
	if err := def.CheckSize(sc.Rows, sc.Cols); err != nil {
		return err
	}
	names := mapset.New[string]()
	for _, r := range sc.Runs {
		if names.Has(r.Name) {
			return fmt.Errorf("%w: duplicate run name %q", ErrInvalid, r.Name)
		}
		names.Put(r.Name)
	}
	for _, r := range sc.Races {
		if names.Has(r.Name) {
			return fmt.Errorf("%w: duplicate race name %q", ErrInvalid, r.Name)
		}
		names.Put(r.Name)
	}
	if names.Size() == 0 {
		return fmt.Errorf("%w: no run or race blocks", ErrInvalid)
	}
	return nil
}

func (sc *Scenario) endpoints(e endpointBlock) error {
	if sc.Layout != nil {
		if e.Start != nil || e.Finish != nil {
			return fmt.Errorf("%w: a layout marks its own endpoints", ErrInvalid)
		}
		return nil
	}
	sc.Start = grid.Coord{Row: 1, Col: 1}
	sc.Finish = grid.Coord{Row: sc.Rows - 2, Col: sc.Cols - 2}
	var err error
	if e.Start != nil {
		if sc.Start, err = coord("start", e.Start); err != nil {
			return err
		}
	}
	if e.Finish != nil {
		if sc.Finish, err = coord("finish", e.Finish); err != nil {
			return err
		}
	}
	return nil
}

func coord(attr string, v []int) (grid.Coord, error) {
	if len(v) != 2 {
		return grid.Coord{}, fmt.Errorf("%w: %s must be [row, col], got %d values", ErrInvalid, attr, len(v))
	}
	return grid.Coord{Row: v[0], Col: v[1]}, nil
}

func (sc *Scenario) steps(rest bodyFile, def Defaults) error {
	if rest.Maze != nil {
		step, err := mazeStep(rest.Maze, def)
		if err != nil {
			return err
		}
		sc.Maze = step
	}
	if rest.Terrain != nil {
		sc.Terrain = terrainStep(rest.Terrain, def)
	}

	names := mapset.New[string]()
	claim := func(kind, name string) error {
		if names.Has(name) {
			return fmt.Errorf("%w: duplicate %s name %q", ErrInvalid, kind, name)
		}
		names.Put(name)
		return nil
	}
	for _, r := range rest.Runs {
		if err := claim("run", r.Name); err != nil {
			return err
		}
		alg, err := search.ParseAlgorithm(r.Algorithm)
		if err != nil {
			return fmt.Errorf("%w: run %q: %w", ErrInvalid, r.Name, err)
		}
		sc.Runs = append(sc.Runs, RunStep{Name: r.Name, Algorithm: alg, Options: searchOptions(r.RejectWeighted)})
	}
	for _, r := range rest.Races {
		if err := claim("race", r.Name); err != nil {
			return err
		}
		left, err := search.ParseAlgorithm(r.Left)
		if err != nil {
			return fmt.Errorf("%w: race %q: %w", ErrInvalid, r.Name, err)
		}
		right, err := search.ParseAlgorithm(r.Right)
		if err != nil {
			return fmt.Errorf("%w: race %q: %w", ErrInvalid, r.Name, err)
		}
		sc.Races = append(sc.Races, RaceStep{Name: r.Name, Left: left, Right: right, Options: searchOptions(r.RejectWeighted)})
	}
	if names.Size() == 0 {
		return fmt.Errorf("%w: no run or race blocks", ErrInvalid)
	}
	return nil
}

func mazeStep(b *mazeBlock, def Defaults) (*MazeStep, error) {
	kind, err := maze.ParseKind(b.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: maze: %w", ErrInvalid, err)
	}
	seed := def.Seed
	if b.Seed != nil {
		seed = *b.Seed
	}
	opts := []maze.Option{maze.WithSeed(seed)}
	if b.Border != nil {
		opts = append(opts, maze.WithBorder(*b.Border))
	}
	if b.Repair != nil {
		switch *b.Repair {
		case maze.RepairWalk.String():
			opts = append(opts, maze.WithRepair(maze.RepairWalk))
		case maze.RepairShortest.String():
			opts = append(opts, maze.WithRepair(maze.RepairShortest))
		default:
			return nil, fmt.Errorf("%w: maze: unknown repair %q", ErrInvalid, *b.Repair)
		}
	}
	if b.WallChance != nil {
		opts = append(opts, maze.WithWallChance(*b.WallChance))
	}
	if b.BirthLimit != nil {
		opts = append(opts, maze.WithBirthLimit(*b.BirthLimit))
	}
	if b.DeathLimit != nil {
		opts = append(opts, maze.WithDeathLimit(*b.DeathLimit))
	}
	if b.Generations != nil {
		opts = append(opts, maze.WithGenerations(*b.Generations))
	}
	if b.SolidBorder != nil {
		opts = append(opts, maze.WithSolidBorder(*b.SolidBorder))
	}
	return &MazeStep{Kind: kind, Options: opts}, nil
}

func terrainStep(b *terrainBlock, def Defaults) *TerrainStep {
	seed := def.Seed
	if b.Seed != nil {
		seed = *b.Seed
	}
	opts := []terrain.Option{terrain.WithSeed(seed)}
	if b.Octaves != nil {
		opts = append(opts, terrain.WithOctaves(*b.Octaves))
	}
	if b.Persistence != nil {
		opts = append(opts, terrain.WithPersistence(*b.Persistence))
	}
	if b.Lacunarity != nil {
		opts = append(opts, terrain.WithLacunarity(*b.Lacunarity))
	}
	if b.Scale != nil {
		opts = append(opts, terrain.WithScale(*b.Scale))
	}
	if b.Intensity != nil {
		opts = append(opts, terrain.WithIntensity(*b.Intensity))
	}
	return &TerrainStep{Options: opts}
}

func searchOptions(reject *bool) []search.Option {
	if reject != nil && *reject {
		return []search.Option{search.WithWeightPolicy(search.RejectWeighted)}
	}
	return nil
}

// Build constructs the grid: the base grid, then maze walls, then terrain
// weights. Option errors from maze and terrain surface here.
func (sc *Scenario) Build(ctx context.Context) (*grid.Grid, error) {
	logger := LoggerFrom(ctx)
	var (
		g   *grid.Grid
		err error
	)
	if sc.Layout != nil {
		g, err = grid.Parse(sc.Layout)
	} else {
		g, err = grid.NewEmpty(sc.Rows, sc.Cols, sc.Start, sc.Finish)
	}
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	if sc.Maze != nil {
		var edits []grid.Edit
		g, edits, err = maze.Build(g, sc.Maze.Kind, sc.Maze.Options...)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: maze %s: %w", sc.Name, sc.Maze.Kind, err)
		}
		logger.Debug("Maze generated.", "kind", sc.Maze.Kind.String(), "edits", len(edits), "walls", g.WallCount())
	}
	if sc.Terrain != nil {
		edits, err := terrain.Generate(g, sc.Terrain.Options...)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: terrain: %w", sc.Name, err)
		}
		if g, err = g.Apply(edits); err != nil {
			return nil, fmt.Errorf("scenario %s: terrain: %w", sc.Name, err)
		}
		logger.Debug("Terrain generated.", "edits", len(edits))
	}
	return g, nil
}

// Entry is one executed run or race.
type Entry struct {
	Name    string
	Outcome stats.Outcome
	// Results holds one result for a run and two (left, right) for a race.
	Results []*search.Result
}

// Report is the output of Execute.
type Report struct {
	Grid    *grid.Grid
	Entries []Entry
}

// Outcomes lists the entries' outcomes in execution order.
func (r *Report) Outcomes() []stats.Outcome {
	out := make([]stats.Outcome, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Outcome
	}
	return out
}

// Execute builds the grid, then performs the runs in file order followed by
// the races in file order. Cancelling ctx stops before the next step.
func (sc *Scenario) Execute(ctx context.Context) (*Report, error) {
	logger := LoggerFrom(ctx)
	g, err := sc.Build(ctx)
	if err != nil {
		return nil, err
	}
	report := &Report{Grid: g}

	for _, r := range sc.Runs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		single, res, err := stats.Run(g, r.Algorithm, r.Options...)
		if err != nil {
			return report, fmt.Errorf("scenario %s: run %q: %w", sc.Name, r.Name, err)
		}
		logger.Info("Run finished.", "name", r.Name, "algorithm", r.Algorithm.String(),
			"visited", single.Visited, "cost", single.PathCost, "reachable", single.Reachable, "run_id", single.RunID)
		report.Entries = append(report.Entries, Entry{Name: r.Name, Outcome: single, Results: []*search.Result{res}})
	}
	for _, r := range sc.Races {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		race, res, err := stats.RunRace(g, r.Left, r.Right, r.Options...)
		if err != nil {
			return report, fmt.Errorf("scenario %s: race %q: %w", sc.Name, r.Name, err)
		}
		logger.Info("Race finished.", "name", r.Name, "left", r.Left.String(), "right", r.Right.String(),
			"winner", race.Winner().String())
		report.Entries = append(report.Entries, Entry{Name: r.Name, Outcome: race, Results: res[:]})
	}
	return report, nil
}
