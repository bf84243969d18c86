// Package gridpath is a playground for pathfinding on 2-D grids: build a
// grid, carve a maze into it, roll terrain over it, then watch search
// algorithms race from S to F.
//
// 🚀 What is in the box?
//
//	• Grid model: walls, weights 1–10, start/finish, ASCII in and out
//	• Searches: BFS, DFS, Dijkstra, A*, Greedy best-first,
//	  bidirectional BFS, bidirectional A*, Jump Point Search
//	• Mazes: recursive division, backtracker, Prim, spiral, cellular automata
//	• Terrain: seeded Perlin fBm mapped to cell weights
//	• Stats: per-run counters and head-to-head races
//	• Scenarios: HCL files that tie all of the above together
//
// ✨ Guarantees
//
//   - Every search returns the cells it visited in order plus the path,
//     so a caller can replay the exploration.
//   - Every maze generator leaves start and finish connected.
//   - Equal seeds give equal grids.
//
// Layout:
//
//	grid/      Grid, Coord, Edit, ASCII parsing and rendering
//	pq/        indexed binary heap, FIFO queue and stack
//	search/    the eight search algorithms and a registry
//	maze/      maze generators and connectivity repair
//	terrain/   Perlin noise and weight edits
//	stats/     Stats, Single/Race outcomes
//	scenario/  HCL scenario loading and execution
//	config/    environment and dotenv settings
//	cmd/pathgrid  command-line front end
//
// Quick ASCII example:
//
//	S.#..        So#..
//	..#..        .o#..
//	..#..  BFS→  .o#..
//	..#..        .o#..
//	....F        .oooF
//
//	go get github.com/katalvlaran/gridpath
package gridpath
