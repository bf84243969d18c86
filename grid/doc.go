// Package grid is the shared data model for the gridpath module: a
// rectangular rows×cols array of cells, each of which may be a wall, the
// unique start, the unique finish, or an open cell with an entry cost.
//
// What:
//
//   - Grid wraps a validated, immutable [][]Cell snapshot.
//   - Neighbors enumerates the four orthogonal neighbours in the fixed
//     order up, right, down, left, skipping walls and out-of-bounds cells.
//   - ReachableFrom / Reachable / Components provide flood-fill connectivity.
//   - Edit lists describe wall or weight changes; Apply returns a fresh Grid.
//   - Parse and String convert to and from a compact ASCII form.
//
// Invariants:
//
//   - rows, cols ≥ MinSize.
//   - Exactly one start cell and one finish cell; they are distinct and
//     neither is a wall.
//   - Every cell weight is ≥ 1 (a zero weight is normalised to 1).
//
// Search algorithms never write into a Grid: per-run scratch state lives in
// the caller's own overlay, indexed by Index(c) = row*cols + col.
//
// ASCII alphabet:
//
//	.  open cell, weight 1
//	#  wall
//	S  start
//	F  finish
//	1-9 open cell with that weight
//	*  open cell with weight 10
//
// Complexity:
//
//   - New / Parse / Apply / Clone: O(R×C) time and memory.
//   - Neighbors, InBounds, Index: O(1).
//   - ReachableFrom, Components:   O(R×C) time and memory.
//
// Errors:
//
//   - every construction failure is a *ConfigurationError wrapping
//     ErrConfiguration plus one specific sentinel (ErrNoStart, ErrTooSmall, …).
//   - ErrInvalidEdit for edits that are out of bounds or would wall an endpoint.
package grid
