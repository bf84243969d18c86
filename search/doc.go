// Package search implements eight pathfinding strategies over a grid.Grid:
// BFS, DFS, Dijkstra, A*, Greedy best-first, Bidirectional BFS,
// Bidirectional A* and Jump Point Search (4-connected).
//
// What
//
//   - Every algorithm shares one signature (Func) and returns a *Result:
//   - Visited: cells in the order they were settled, for animation.
//   - Path: start → finish inclusive, empty when unreachable.
//   - Cost: sum of the weights of every entered cell (start excluded).
//   - Reachable: false means "no path", which is not an error.
//   - Run picks the algorithm by Algorithm value and uses the grid's own
//     start and finish.
//
// Determinism
//
//	Neighbours are always generated in the order up, right, down, left, and
//	the frontier heap breaks equal priorities by insertion order. Running
//	the same algorithm twice on the same grid yields identical Visited and
//	Path slices.
//
// Ordering rules
//
//	BFS        FIFO; stops when finish is discovered.
//	DFS        LIFO; "up" explored first; stops when finish is popped.
//	Dijkstra   min g; decrease-key; stops when finish is popped.
//	A*         min g+h, ties by lower g; h = Manhattan to finish.
//	Greedy     min h; predecessor fixed on first discovery.
//	BiBFS      alternating FIFO sides; stops at the first cross-discovery.
//	BiA*       alternating A* halves; stops when μ ≤ min(top f of both).
//	JPS        A* over jump points; edge cost = Manhattan distance.
//
// Weights
//
//	Entering a cell costs its weight (≥ 1). Dijkstra, A* and Bidirectional
//	A* honour weights. The remaining algorithms treat every cell as cost 1
//	unless WithWeightPolicy(RejectWeighted) is passed, in which case they
//	fail fast with ErrWeightedGrid on grids that carry weights.
//
// Memory model
//
//	Each call allocates its own scratch overlay (visited flags, distances,
//	predecessors) indexed row*cols+col. The grid is never mutated, so
//	concurrent searches over the same *grid.Grid are safe.
//
// Complexity (N = rows·cols)
//
//   - BFS, DFS, Bidirectional BFS: O(N) time, O(N) memory.
//   - Dijkstra, A*, Greedy, Bidirectional A*, JPS: O(N log N) time, O(N) memory.
//
// Errors
//
//   - ErrNilGrid          if g is nil.
//   - ErrOutOfBounds      if start or finish is outside the grid.
//   - ErrEndpointWall     if start or finish is a wall.
//   - ErrWeightedGrid     for unweighted algorithms under RejectWeighted.
//   - ErrUnknownAlgorithm from Lookup, Run and ParseAlgorithm.
//   - ErrOptionViolation  for an invalid Option.
package search
