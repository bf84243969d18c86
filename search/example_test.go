package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleBFS finds the detour through the single gap in a wall column.
func ExampleBFS() {
	g := grid.MustParse(
		"S.#..",
		"..#..",
		"..#..",
		"..#..",
		"....F",
	)
	res, err := search.BFS(g, g.Start(), g.Finish())
	if err != nil {
		panic(err)
	}
	marks := make(map[grid.Coord]byte, len(res.Path))
	for _, c := range res.Path {
		marks[c] = 'o'
	}
	fmt.Printf("steps=%d cost=%d\n", res.Steps(), res.Cost)
	fmt.Println(g.Render(marks))
	// Output:
	// steps=8 cost=8
	// So#..
	// .o#..
	// .o#..
	// .o#..
	// .oooF
}

// ExampleDijkstra routes around an expensive strip of terrain.
func ExampleDijkstra() {
	g := grid.MustParse(
		"S999F",
		".###.",
		".....",
		"#####",
		".....",
	)
	for _, alg := range []search.Algorithm{search.AlgBFS, search.AlgDijkstra} {
		res, err := search.Run(g, alg)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-8s steps=%d cost=%d\n", alg, res.Steps(), res.Cost)
	}
	// Output:
	// bfs      steps=4 cost=28
	// dijkstra steps=8 cost=8
}

// ExampleJPS shows the raw jump points on an open grid.
func ExampleJPS() {
	g := grid.MustParse(
		"S....",
		".....",
		".....",
		".....",
		"....F",
	)
	res, err := search.JPS(g, g.Start(), g.Finish())
	if err != nil {
		panic(err)
	}
	fmt.Println(res.JumpPoints)
	fmt.Println(len(res.Path))
	// Output:
	// [(0,0) (4,0) (4,4)]
	// 9
}
