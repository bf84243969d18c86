package maze_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

var sizes = [][2]int{{10, 10}, {15, 23}, {25, 25}, {31, 40}, {40, 60}}

// emptyGrid places start and finish at random distinct cells.
func emptyGrid(t testing.TB, rng *rand.Rand, rows, cols int) *grid.Grid {
	t.Helper()
	start := grid.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	finish := start
	for finish == start {
		finish = grid.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	}
	g, err := grid.NewEmpty(rows, cols, start, finish)
	require.NoError(t, err)
	return g
}

func TestConnectivity_AllGenerators(t *testing.T) {
	for _, kind := range maze.Kinds() {
		for _, repair := range []maze.Repair{maze.RepairWalk, maze.RepairShortest} {
			t.Run(fmt.Sprintf("%s/%s", kind, repair), func(t *testing.T) {
				rng := rand.New(rand.NewSource(int64(kind)*100 + int64(repair)))
				for seed := int64(1); seed <= 100; seed++ {
					sz := sizes[int(seed)%len(sizes)]
					g := emptyGrid(t, rng, sz[0], sz[1])
					out, edits, err := maze.Build(g, kind, maze.WithSeed(seed), maze.WithRepair(repair))
					require.NoError(t, err, "seed %d", seed)
					require.NotEmpty(t, edits)
					require.False(t, out.IsWall(out.Start()))
					require.False(t, out.IsWall(out.Finish()))
					require.True(t, out.Reachable(out.Start(), out.Finish()), "seed %d\n%s", seed, out)
				}
			})
		}
	}
}

func TestConnectivity_OptionVariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	variants := []struct {
		kind maze.Kind
		opts []maze.Option
	}{
		{maze.KindBacktracker, []maze.Option{maze.WithBorder(false)}},
		{maze.KindPrim, []maze.Option{maze.WithBorder(false)}},
		{maze.KindCellular, []maze.Option{maze.WithSolidBorder(true)}},
		{maze.KindCellular, []maze.Option{maze.WithWallChance(0.6), maze.WithGenerations(4)}},
		{maze.KindCellular, []maze.Option{maze.WithBirthLimit(3), maze.WithDeathLimit(2), maze.WithGenerations(0)}},
	}
	for _, v := range variants {
		for seed := int64(1); seed <= 40; seed++ {
			sz := sizes[int(seed)%len(sizes)]
			g := emptyGrid(t, rng, sz[0], sz[1])
			out, _, err := maze.Build(g, v.kind, append(v.opts, maze.WithSeed(seed))...)
			require.NoError(t, err)
			require.True(t, out.Reachable(out.Start(), out.Finish()), "%s seed %d\n%s", v.kind, seed, out)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g, err := grid.NewEmpty(21, 31, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 19, Col: 29})
	require.NoError(t, err)
	for _, kind := range maze.Kinds() {
		a, err := maze.Generate(g, kind, maze.WithSeed(99))
		require.NoError(t, err)
		b, err := maze.Generate(g, kind, maze.WithSeed(99))
		require.NoError(t, err)
		require.Equal(t, a, b, kind.String())

		z, err := maze.Generate(g, kind)
		require.NoError(t, err)
		one, err := maze.Generate(g, kind, maze.WithSeed(1))
		require.NoError(t, err)
		require.Equal(t, z, one, "seed 0 means seed 1 for %s", kind)
	}
	a, _ := maze.Backtracker(g, maze.WithSeed(1))
	b, _ := maze.Backtracker(g, maze.WithSeed(2))
	require.NotEqual(t, a, b)
}

func TestSpiral_ExactSequence(t *testing.T) {
	g, err := grid.NewEmpty(5, 5, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 4})
	require.NoError(t, err)
	edits, err := maze.Spiral(g)
	require.NoError(t, err)
	want := []grid.Edit{
		grid.SetWall(grid.Coord{Row: 1, Col: 1}),
		grid.SetWall(grid.Coord{Row: 1, Col: 3}),
		grid.SetWall(grid.Coord{Row: 2, Col: 3}),
		grid.SetWall(grid.Coord{Row: 3, Col: 3}),
		grid.SetWall(grid.Coord{Row: 3, Col: 2}),
		grid.SetWall(grid.Coord{Row: 3, Col: 1}),
		grid.SetWall(grid.Coord{Row: 2, Col: 1}),
	}
	require.Equal(t, want, edits)
}

func TestPerfectMaze_CellCounts(t *testing.T) {
	// 11×11 with rooms on odd coordinates: 25 rooms, 24 carved links.
	g, err := grid.NewEmpty(11, 11, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 9, Col: 9})
	require.NoError(t, err)
	// Without a border: rooms on even coordinates, 36 rooms, 35 links.
	gb, err := grid.NewEmpty(11, 11, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 10, Col: 10})
	require.NoError(t, err)

	for _, kind := range []maze.Kind{maze.KindBacktracker, maze.KindPrim} {
		for seed := int64(1); seed <= 20; seed++ {
			out, _, err := maze.Build(g, kind, maze.WithSeed(seed))
			require.NoError(t, err)
			assert.Equal(t, 121-49, out.WallCount(), "%s seed %d", kind, seed)
			for i := 0; i < 11; i++ {
				for _, c := range []grid.Coord{{Row: 0, Col: i}, {Row: 10, Col: i}, {Row: i, Col: 0}, {Row: i, Col: 10}} {
					require.True(t, out.IsWall(c), "border cell %v", c)
				}
			}

			out, _, err = maze.Build(gb, kind, maze.WithSeed(seed), maze.WithBorder(false))
			require.NoError(t, err)
			assert.Equal(t, 121-71, out.WallCount(), "%s seed %d no border", kind, seed)
		}
	}
}

func TestRecursiveDivision_Structure(t *testing.T) {
	g, err := grid.NewEmpty(15, 21, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 13, Col: 19})
	require.NoError(t, err)
	for seed := int64(1); seed <= 30; seed++ {
		edits, err := maze.RecursiveDivision(g, maze.WithSeed(seed))
		require.NoError(t, err)
		out, err := g.Apply(edits)
		require.NoError(t, err)
		for r := 0; r < out.Rows(); r++ {
			for c := 0; c < out.Cols(); c++ {
				cc := grid.Coord{Row: r, Col: c}
				border := r == 0 || c == 0 || r == out.Rows()-1 || c == out.Cols()-1
				switch {
				case border:
					require.True(t, out.IsWall(cc), "border %v", cc)
				case r%2 == 1 && c%2 == 1:
					require.False(t, out.IsWall(cc), "odd/odd cell %v must stay open", cc)
				}
			}
		}
		// First edits draw the outer ring clockwise from the top-left.
		require.Equal(t, grid.SetWall(grid.Coord{Row: 0, Col: 0}), edits[0])
		require.Equal(t, grid.SetWall(grid.Coord{Row: 0, Col: 20}), edits[20])
	}
}

func TestCellular_BorderAndClearings(t *testing.T) {
	g, err := grid.NewEmpty(21, 21, grid.Coord{Row: 5, Col: 5}, grid.Coord{Row: 15, Col: 15})
	require.NoError(t, err)
	for seed := int64(1); seed <= 30; seed++ {
		out, _, err := maze.Build(g, maze.KindCellular, maze.WithSeed(seed), maze.WithSolidBorder(true), maze.WithGenerations(3))
		require.NoError(t, err)
		for i := 0; i < 21; i++ {
			for _, c := range []grid.Coord{{Row: 0, Col: i}, {Row: 20, Col: i}, {Row: i, Col: 0}, {Row: i, Col: 20}} {
				require.True(t, out.IsWall(c), "border cell %v seed %d", c, seed)
			}
		}
		for _, e := range []grid.Coord{g.Start(), g.Finish()} {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					require.False(t, out.IsWall(grid.Coord{Row: e.Row + dr, Col: e.Col + dc}))
				}
			}
		}
	}
}

func TestEditOrder_ClearsFirst(t *testing.T) {
	g, err := grid.NewEmpty(21, 21, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 19, Col: 19})
	require.NoError(t, err)
	walled, _, err := maze.Build(g, maze.KindBacktracker, maze.WithSeed(3))
	require.NoError(t, err)

	edits, err := maze.Generate(walled, maze.KindCellular, maze.WithSeed(3))
	require.NoError(t, err)
	seenSet := false
	clears := 0
	for _, e := range edits {
		require.Equal(t, grid.EditWall, e.Kind, "weights untouched")
		if e.Wall {
			seenSet = true
			continue
		}
		clears++
		require.False(t, seenSet, "clear %v after a wall placement", e.Coord)
	}
	require.Positive(t, clears)

	out, err := walled.Apply(edits)
	require.NoError(t, err)
	require.True(t, out.Reachable(out.Start(), out.Finish()))
}

func TestWeightsPreserved(t *testing.T) {
	g := grid.MustParse(
		"S5555555",
		"55555555",
		"55555555",
		"55555555",
		"55555555",
		"5555555F",
	)
	out, _, err := maze.Build(g, maze.KindPrim, maze.WithSeed(4))
	require.NoError(t, err)
	for r := 0; r < out.Rows(); r++ {
		for c := 0; c < out.Cols(); c++ {
			cc := grid.Coord{Row: r, Col: c}
			require.Equal(t, g.Weight(cc), out.Weight(cc))
		}
	}
}

func TestJPSMatchesAStarOnMazes(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	for _, kind := range maze.Kinds() {
		for seed := int64(1); seed <= 15; seed++ {
			sz := sizes[int(seed)%len(sizes)]
			out, _, err := maze.Build(emptyGrid(t, rng, sz[0], sz[1]), kind, maze.WithSeed(seed))
			require.NoError(t, err)
			as, err := search.Run(out, search.AlgAStar)
			require.NoError(t, err)
			jp, err := search.Run(out, search.AlgJPS)
			require.NoError(t, err)
			require.True(t, as.Reachable)
			require.True(t, jp.Reachable)
			require.Equal(t, as.Cost, jp.Cost, "%s seed %d\n%s", kind, seed, out)
		}
	}
}

func TestOptionErrors(t *testing.T) {
	g, err := grid.NewEmpty(10, 10, grid.Coord{}, grid.Coord{Row: 9, Col: 9})
	require.NoError(t, err)
	bad := []maze.Option{
		maze.WithWallChance(1),
		maze.WithWallChance(-0.1),
		maze.WithBirthLimit(9),
		maze.WithDeathLimit(-1),
		maze.WithGenerations(-1),
		maze.WithRepair(maze.Repair(7)),
	}
	for i, opt := range bad {
		_, err := maze.Generate(g, maze.KindCellular, opt)
		require.ErrorIs(t, err, maze.ErrOptionViolation, "option %d", i)
	}
	_, err = maze.Generate(nil, maze.KindSpiral)
	require.ErrorIs(t, err, maze.ErrNilGrid)
	_, err = maze.Generate(g, maze.Kind(42))
	require.ErrorIs(t, err, maze.ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	for _, k := range maze.Kinds() {
		got, err := maze.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	got, err := maze.ParseKind("Recursive-Division")
	require.NoError(t, err)
	require.Equal(t, maze.KindRecursiveDivision, got)
	_, err = maze.ParseKind("hedge")
	require.ErrorIs(t, err, maze.ErrUnknownKind)
}
