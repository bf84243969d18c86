package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// gapGrid is a 5×5 grid with a wall column at col 2, rows 0..3; the only
// way across is the gap at row 4.
func gapGrid() *grid.Grid {
	return grid.MustParse(
		"S.#..",
		"..#..",
		"..#..",
		"..#..",
		"....F",
	)
}

// ringGrid walls the finish in completely.
func ringGrid() *grid.Grid {
	return grid.MustParse(
		"S....",
		".###.",
		".#F#.",
		".###.",
		".....",
	)
}

// randomGrid scatters walls with the given density and, when maxWeight > 1,
// random weights in [1, maxWeight] on open cells.
func randomGrid(t testing.TB, rng *rand.Rand, rows, cols int, density float64, maxWeight int) *grid.Grid {
	t.Helper()
	start := grid.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	finish := start
	for finish == start {
		finish = grid.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	}
	g, err := grid.NewEmpty(rows, cols, start, finish)
	require.NoError(t, err)

	var edits []grid.Edit
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cc := grid.Coord{Row: r, Col: c}
			if cc == start || cc == finish {
				continue
			}
			if rng.Float64() < density {
				edits = append(edits, grid.SetWall(cc))
				continue
			}
			if maxWeight > 1 {
				edits = append(edits, grid.SetWeight(cc, uint32(1+rng.Intn(maxWeight))))
			}
		}
	}
	g, err = g.Apply(edits)
	require.NoError(t, err)
	return g
}

// referenceSteps runs a plain BFS over an explicit adjacency list and
// returns the step count from start to finish, or -1.
func referenceSteps(g *grid.Grid) int {
	adj := make(map[grid.Coord][]grid.Coord)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			u := grid.Coord{Row: r, Col: c}
			if !g.Passable(u) {
				continue
			}
			for _, v := range []grid.Coord{{Row: r - 1, Col: c}, {Row: r + 1, Col: c}, {Row: r, Col: c - 1}, {Row: r, Col: c + 1}} {
				if g.Passable(v) {
					adj[u] = append(adj[u], v)
				}
			}
		}
	}
	dist := map[grid.Coord]int{g.Start(): 0}
	queue := []grid.Coord{g.Start()}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	if d, ok := dist[g.Finish()]; ok {
		return d
	}
	return -1
}

// referenceCost relaxes every edge until nothing changes and returns the
// least entry-weight cost from start to finish, or -1.
func referenceCost(g *grid.Grid) int64 {
	const inf = int64(1) << 62
	n := g.Size()
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[g.Index(g.Start())] = 0
	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			if dist[i] == inf {
				continue
			}
			for _, v := range g.Neighbors(g.Coordinate(i)) {
				vi := g.Index(v)
				if nd := dist[i] + int64(g.Weight(v)); nd < dist[vi] {
					dist[vi] = nd
					changed = true
				}
			}
		}
	}
	if d := dist[g.Index(g.Finish())]; d < inf {
		return d
	}
	return -1
}

func TestGapScenario(t *testing.T) {
	g := gapGrid()
	for _, alg := range []search.Algorithm{search.AlgBFS, search.AlgDijkstra, search.AlgAStar, search.AlgBidirectionalAStar, search.AlgJPS} {
		res, err := search.Run(g, alg)
		require.NoError(t, err, alg.String())
		require.True(t, res.Reachable, alg.String())
		assert.Len(t, res.Path, 9, alg.String())
		assert.Equal(t, 8, res.Steps(), alg.String())
		assert.EqualValues(t, 8, res.Cost, alg.String())
		assert.True(t, search.ValidPath(g, res.Path, g.Start(), g.Finish()), alg.String())
	}
	for _, alg := range []search.Algorithm{search.AlgGreedy, search.AlgDFS, search.AlgBidirectionalBFS} {
		res, err := search.Run(g, alg)
		require.NoError(t, err, alg.String())
		require.True(t, res.Reachable, alg.String())
		assert.GreaterOrEqual(t, len(res.Path), 9, alg.String())
		assert.True(t, search.ValidPath(g, res.Path, g.Start(), g.Finish()), alg.String())
	}
}

func TestUnreachable_AllAlgorithms(t *testing.T) {
	g := ringGrid()
	for _, alg := range search.Algorithms() {
		res, err := search.Run(g, alg)
		require.NoError(t, err, alg.String())
		assert.False(t, res.Reachable, alg.String())
		assert.Empty(t, res.Path, alg.String())
		assert.Zero(t, res.Cost, alg.String())
		assert.NotEmpty(t, res.Visited, alg.String())
		assert.Equal(t, alg, res.Algorithm)
	}
}

func TestStartEqualsFinish(t *testing.T) {
	g := gapGrid()
	c := grid.Coord{Row: 2, Col: 3}
	for _, alg := range search.Algorithms() {
		fn, err := search.Lookup(alg)
		require.NoError(t, err)
		res, err := fn(g, c, c)
		require.NoError(t, err, alg.String())
		assert.True(t, res.Reachable)
		assert.Equal(t, []grid.Coord{c}, res.Path)
		assert.Zero(t, res.Steps())
	}
}

func TestBFS_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 80; i++ {
		g := randomGrid(t, rng, 5+rng.Intn(16), 5+rng.Intn(16), 0.3, 1)
		want := referenceSteps(g)
		res, err := search.BFS(g, g.Start(), g.Finish())
		require.NoError(t, err)
		if want < 0 {
			require.False(t, res.Reachable, "grid %d", i)
			continue
		}
		require.True(t, res.Reachable, "grid %d", i)
		require.Equal(t, want, res.Steps(), "grid %d\n%s", i, g)
		require.True(t, search.ValidPath(g, res.Path, g.Start(), g.Finish()))
		require.Equal(t, g.Finish(), res.Visited[len(res.Visited)-1], "BFS ends on discovery of finish")
	}
}

func TestWeighted_CostEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	unreachable := 0
	for i := 0; i < 60; i++ {
		g := randomGrid(t, rng, 5+rng.Intn(20), 5+rng.Intn(20), 0.25+0.2*rng.Float64(), 10)
		want := referenceCost(g)

		dj, err := search.Dijkstra(g, g.Start(), g.Finish())
		require.NoError(t, err)
		as, err := search.AStar(g, g.Start(), g.Finish())
		require.NoError(t, err)
		bi, err := search.BidirectionalAStar(g, g.Start(), g.Finish())
		require.NoError(t, err)

		if want < 0 {
			unreachable++
			require.False(t, dj.Reachable)
			require.False(t, as.Reachable)
			require.False(t, bi.Reachable)
			require.Equal(t, len(dj.Visited), len(as.Visited), "both exhaust the component")
			continue
		}
		require.Equal(t, want, dj.Cost, "dijkstra grid %d\n%s", i, g)
		require.Equal(t, want, as.Cost, "astar grid %d\n%s", i, g)
		require.Equal(t, want, bi.Cost, "bidirectional astar grid %d\n%s", i, g)
		require.LessOrEqual(t, len(as.Visited), len(dj.Visited), "astar settles no more than dijkstra")
		for _, r := range []*search.Result{dj, as, bi} {
			require.True(t, search.ValidPath(g, r.Path, g.Start(), g.Finish()), r.Algorithm.String())
			require.Equal(t, search.PathCost(g, r.Path), r.Cost)
		}
	}
	require.Positive(t, unreachable, "sample should include unreachable grids")
}

func TestJPS_MatchesAStarOnUniformGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 80; i++ {
		g := randomGrid(t, rng, 5+rng.Intn(25), 5+rng.Intn(25), 0.35*rng.Float64(), 1)
		as, err := search.AStar(g, g.Start(), g.Finish())
		require.NoError(t, err)
		jp, err := search.JPS(g, g.Start(), g.Finish())
		require.NoError(t, err)
		require.Equal(t, as.Reachable, jp.Reachable, "grid %d\n%s", i, g)
		if !as.Reachable {
			continue
		}
		require.Equal(t, as.Cost, jp.Cost, "grid %d\n%s", i, g)
		require.True(t, search.ValidPath(g, jp.Path, g.Start(), g.Finish()))

		seen := make(map[grid.Coord]bool, len(jp.Visited))
		for _, c := range jp.Visited {
			require.False(t, seen[c], "cell %v shown twice", c)
			seen[c] = true
		}
		for _, c := range jp.Path {
			require.True(t, seen[c], "path cell %v missing from Visited", c)
		}
	}
}

func TestJPS_JumpPointsOnOpenGrid(t *testing.T) {
	g := grid.MustParse(
		"S....",
		".....",
		".....",
		".....",
		"....F",
	)
	res, err := search.JPS(g, g.Start(), g.Finish())
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 4, Col: 0}, {Row: 4, Col: 4}}, res.JumpPoints)
	require.Len(t, res.Path, 9)
	require.Len(t, res.Visited, 9)
}

func TestBidirectionalBFS_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 60; i++ {
		g := randomGrid(t, rng, 5+rng.Intn(15), 5+rng.Intn(15), 0.3, 1)
		want := referenceSteps(g)
		res, err := search.BidirectionalBFS(g, g.Start(), g.Finish())
		require.NoError(t, err)
		require.Equal(t, want >= 0, res.Reachable, "grid %d\n%s", i, g)
		if res.Reachable {
			require.True(t, search.ValidPath(g, res.Path, g.Start(), g.Finish()), "grid %d", i)
			require.GreaterOrEqual(t, res.Steps(), want)
		}
	}
}

func TestGreedyAndDFS_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	for i := 0; i < 60; i++ {
		g := randomGrid(t, rng, 5+rng.Intn(15), 5+rng.Intn(15), 0.3, 1)
		want := referenceSteps(g)
		for _, fn := range []search.Func{search.Greedy, search.DFS} {
			res, err := fn(g, g.Start(), g.Finish())
			require.NoError(t, err)
			require.Equal(t, want >= 0, res.Reachable)
			if res.Reachable {
				require.True(t, search.ValidPath(g, res.Path, g.Start(), g.Finish()))
				require.GreaterOrEqual(t, res.Steps(), want)
			}
		}
	}
}

func TestDFS_ExploresUpFirst(t *testing.T) {
	g := grid.MustParse(
		"F....",
		".....",
		".....",
		".....",
		"S....",
	)
	res, err := search.DFS(g, g.Start(), g.Finish())
	require.NoError(t, err)
	want := []grid.Coord{{Row: 4, Col: 0}, {Row: 3, Col: 0}, {Row: 2, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0}}
	require.Equal(t, want, res.Visited)
	require.Equal(t, want, res.Path)
}

func TestRepeatedRunsAreIdentical(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	g := randomGrid(t, rng, 30, 30, 0.3, 5)
	for _, alg := range search.Algorithms() {
		a, err := search.Run(g, alg)
		require.NoError(t, err)
		b, err := search.Run(g, alg)
		require.NoError(t, err)
		require.Equal(t, a, b, alg.String())
	}
}

func TestWeightPolicy(t *testing.T) {
	g := grid.MustParse(
		"S999F",
		".###.",
		".....",
		"#####",
		".....",
	)

	bfs, err := search.BFS(g, g.Start(), g.Finish())
	require.NoError(t, err)
	require.Equal(t, 4, bfs.Steps(), "weights ignored")
	require.EqualValues(t, 28, bfs.Cost, "cost still reports real weights")

	dj, err := search.Dijkstra(g, g.Start(), g.Finish())
	require.NoError(t, err)
	require.Equal(t, 8, dj.Steps())
	require.EqualValues(t, 8, dj.Cost)

	for _, alg := range search.Algorithms() {
		_, err := search.Run(g, alg, search.WithWeightPolicy(search.RejectWeighted))
		if alg.Weighted() {
			require.NoError(t, err, alg.String())
		} else {
			require.ErrorIs(t, err, search.ErrWeightedGrid, alg.String())
		}
	}

	_, err = search.BFS(gapGrid(), grid.Coord{}, grid.Coord{Row: 4, Col: 4}, search.WithWeightPolicy(search.RejectWeighted))
	require.NoError(t, err, "uniform grid passes under RejectWeighted")
}

func TestErrors(t *testing.T) {
	g := gapGrid()
	start, finish := g.Start(), g.Finish()

	_, err := search.BFS(nil, start, finish)
	require.ErrorIs(t, err, search.ErrNilGrid)
	_, err = search.Run(nil, search.AlgAStar)
	require.ErrorIs(t, err, search.ErrNilGrid)

	_, err = search.AStar(g, grid.Coord{Row: -1, Col: 0}, finish)
	require.ErrorIs(t, err, search.ErrOutOfBounds)
	_, err = search.JPS(g, start, grid.Coord{Row: 5, Col: 5})
	require.ErrorIs(t, err, search.ErrOutOfBounds)

	_, err = search.Dijkstra(g, grid.Coord{Row: 0, Col: 2}, finish)
	require.ErrorIs(t, err, search.ErrEndpointWall)

	_, err = search.Greedy(g, start, finish, search.WithWeightPolicy(search.WeightPolicy(9)))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Run(g, search.Algorithm(99))
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range search.Algorithms() {
		got, err := search.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		require.Equal(t, alg, got)
	}
	got, err := search.ParseAlgorithm(" A* ")
	require.NoError(t, err)
	require.Equal(t, search.AlgAStar, got)

	_, err = search.ParseAlgorithm("teleport")
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	require.Equal(t, "Algorithm(42)", search.Algorithm(42).String())
}

func TestReconstructPath(t *testing.T) {
	g := gapGrid()
	p := search.NewPredecessors(g)
	a, b, c := grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 2, Col: 0}
	require.Empty(t, search.ReconstructPath(p, a, c), "finish never reached")

	p.Set(b, a)
	p.Set(c, b)
	require.Equal(t, []grid.Coord{a, b, c}, search.ReconstructPath(p, a, c))
	got, ok := p.Get(c)
	require.True(t, ok)
	require.Equal(t, b, got)
	_, ok = p.Get(a)
	require.False(t, ok)
	require.Empty(t, search.ReconstructPath(p, b, grid.Coord{Row: 3, Col: 0}))
}
