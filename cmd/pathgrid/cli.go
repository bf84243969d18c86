package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stats"
	"github.com/katalvlaran/gridpath/terrain"
)

// ExitError carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Path overlay symbols.
const (
	markPath    = 'o'
	markVisited = '+'
)

type options struct {
	scenario  string
	envFile   string
	rows      int
	cols      int
	maze      string
	terrain   bool
	algs      string
	race      string
	seed      int64
	render    bool
	visited   bool
	logLevel  string
	logFormat string
}

// parseArgs reports (nil, true, nil) when the program should exit cleanly.
func parseArgs(args []string, out io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("pathgrid", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
pathgrid - grid maze generation and pathfinding races.

Usage:
  pathgrid [options] [SCENARIO.hcl]

Without a scenario file the grid is described by -rows, -cols, -maze and
-terrain, and searched with -alg and -race.

Options:
`)
		fs.PrintDefaults()
	}

	o := &options{}
	fs.StringVar(&o.scenario, "scenario", "", "Path to an HCL scenario file.")
	fs.StringVar(&o.envFile, "env", "", "Dotenv file to read instead of .env.")
	fs.IntVar(&o.rows, "rows", 21, "Grid rows.")
	fs.IntVar(&o.cols, "cols", 41, "Grid columns.")
	fs.StringVar(&o.maze, "maze", "backtracker", "Maze generator, or 'none': "+kindList()+".")
	fs.BoolVar(&o.terrain, "terrain", false, "Add Perlin terrain weights.")
	fs.StringVar(&o.algs, "alg", "astar", "Comma-separated algorithms to run: "+algList()+".")
	fs.StringVar(&o.race, "race", "", "Two comma-separated algorithms to race, e.g. dijkstra,astar.")
	fs.Int64Var(&o.seed, "seed", 0, "Seed for maze and terrain (0: PATHGRID_SEED or the fixed default).")
	fs.BoolVar(&o.render, "render", true, "Draw the grid with the path overlaid.")
	fs.BoolVar(&o.visited, "visited", false, "Also mark visited cells when rendering.")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error (default PATHGRID_LOG_LEVEL or info).")
	fs.StringVar(&o.logFormat, "log-format", "", "Log format: text or json (default PATHGRID_LOG_FORMAT or text).")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if o.scenario == "" && fs.NArg() > 0 {
		o.scenario = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one scenario file may be given"}
	}
	return o, false, nil
}

func kindList() string {
	names := make([]string, 0, len(maze.Kinds()))
	for _, k := range maze.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func algList() string {
	names := make([]string, 0, len(search.Algorithms()))
	for _, a := range search.Algorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	o, exit, err := parseArgs(args, stdout)
	if err != nil || exit {
		return err
	}

	var envFiles []string
	if o.envFile != "" {
		envFiles = append(envFiles, o.envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	if _, err := config.ParseLevel(cfg.LogLevel); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	logger := cfg.NewLogger(stderr)
	ctx = scenario.WithLogger(ctx, logger)

	def := scenario.Defaults{Seed: cfg.Seed, MaxCells: cfg.MaxCells}
	if o.seed != 0 {
		def.Seed = o.seed
	}

	var sc *scenario.Scenario
	if o.scenario != "" {
		sc, err = scenario.Load(ctx, o.scenario, def)
	} else {
		sc, err = fromFlags(o, def)
	}
	if err != nil {
		return err
	}
	logger.Debug("Scenario ready.", "name", sc.Name, "rows", sc.Rows, "cols", sc.Cols)

	report, err := sc.Execute(ctx)
	if err != nil {
		return err
	}
	return printReport(stdout, report, o)
}

// fromFlags assembles the scenario the flags describe.
func fromFlags(o *options, def scenario.Defaults) (*scenario.Scenario, error) {
	if o.rows < grid.MinSize || o.cols < grid.MinSize {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("grid must be at least %dx%d", grid.MinSize, grid.MinSize)}
	}
	if err := def.CheckSize(o.rows, o.cols); err != nil {
		return nil, err
	}
	sc := &scenario.Scenario{
		Name:   "flags",
		Rows:   o.rows,
		Cols:   o.cols,
		Start:  grid.Coord{Row: 1, Col: 1},
		Finish: grid.Coord{Row: o.rows - 2, Col: o.cols - 2},
	}
	if o.maze != "" && o.maze != "none" {
		kind, err := maze.ParseKind(o.maze)
		if err != nil {
			return nil, err
		}
		sc.Maze = &scenario.MazeStep{Kind: kind, Options: []maze.Option{maze.WithSeed(def.Seed)}}
	}
	if o.terrain {
		sc.Terrain = &scenario.TerrainStep{Options: []terrain.Option{terrain.WithSeed(def.Seed)}}
	}

	for _, name := range splitList(o.algs) {
		alg, err := search.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		sc.Runs = append(sc.Runs, scenario.RunStep{Name: alg.String(), Algorithm: alg})
	}
	if o.race != "" {
		pair := splitList(o.race)
		if len(pair) != 2 {
			return nil, &ExitError{Code: 2, Message: fmt.Sprintf("-race needs exactly two algorithms, got %q", o.race)}
		}
		left, err := search.ParseAlgorithm(pair[0])
		if err != nil {
			return nil, err
		}
		right, err := search.ParseAlgorithm(pair[1])
		if err != nil {
			return nil, err
		}
		sc.Races = append(sc.Races, scenario.RaceStep{Name: left.String() + " vs " + right.String(), Left: left, Right: right})
	}
	if len(sc.Runs) == 0 && len(sc.Races) == 0 {
		return nil, &ExitError{Code: 2, Message: "nothing to run: give -alg or -race"}
	}
	if err := sc.Validate(def); err != nil {
		return nil, err
	}
	return sc, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printReport(w io.Writer, report *scenario.Report, o *options) error {
	g := report.Grid
	fmt.Fprintf(w, "grid %dx%d, %d walls, start %s, finish %s\n", g.Rows(), g.Cols(), g.WallCount(), g.Start(), g.Finish())
	for _, e := range report.Entries {
		fmt.Fprintf(w, "\n== %s ==\n", e.Name)
		if o.render {
			for _, res := range e.Results {
				if len(e.Results) > 1 {
					fmt.Fprintf(w, "-- %s --\n", res.Algorithm)
				}
				fmt.Fprintln(w, g.Render(overlay(res, o.visited)))
			}
		}
		if _, err := fmt.Fprintln(w, stats.Describe(e.Outcome)); err != nil {
			return err
		}
	}
	return nil
}

func overlay(res *search.Result, visited bool) map[grid.Coord]byte {
	marks := make(map[grid.Coord]byte, len(res.Path))
	if visited {
		for _, c := range res.Visited {
			marks[c] = markVisited
		}
	}
	for _, c := range res.Path {
		marks[c] = markPath
	}
	return marks
}
