// Package maze generates wall layouts for a grid.Grid and reports them as
// ordered grid edits that a caller can apply at once or replay for
// animation.
//
// Generators
//
//	division     start empty; recursively split chambers with one-gap
//	             walls (walls on even lines, gaps on odd ones); the wall
//	             crosses the longer axis, ties random.
//	backtracker  start full; randomized DFS over rooms two cells apart.
//	prim         start full; randomized Prim's frontier growth over rooms.
//	spiral       concentric rings with one gap per ring rotating
//	             top → right → bottom → left. Deterministic.
//	cellular     random fill, then birth/death automaton steps; start and
//	             finish neighbourhoods cleared; optional solid border.
//
// Output
//
//	Generate returns the edits turning the grid into the new layout: all
//	wall clears first in row-major order, then wall placements in reveal
//	order (division: outer ring, then split order; backtracker and prim:
//	outer ring, then row-major; spiral: ring by ring; cellular: row-major).
//	Weights are never touched.
//
// Guarantees
//
//   - Start and finish are never walled.
//   - After every generator the layout is checked with a flood fill; if
//     finish is unreachable it is reconnected (see Repair). Failure to
//     reconnect returns ErrGenerationInvariantViolated.
//   - A fixed seed reproduces the same edits; seed 0 means seed 1.
//   - Chambers too small to split are left as open rooms.
//
// Parity
//
//	With WithBorder(true) (default) backtracker and prim place rooms on odd
//	coordinates and keep a solid outer ring. With WithBorder(false) rooms sit
//	on even coordinates and passages may touch the edge.
//
// Complexity (N = rows·cols)
//
//   - division, backtracker, prim, spiral: O(N) time and memory.
//   - cellular: O(N·generations).
//   - repair: O(N) flood fill, plus O(N) for the 0-1 BFS carve.
package maze
