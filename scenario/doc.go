// Package scenario loads HCL scenario files and executes them.
//
// A scenario names a grid (by size or by ASCII layout), an optional maze
// generator and terrain pass, and any number of named runs and races:
//
//	grid {
//	  rows   = 20
//	  cols   = 30
//	  finish = [rows - 2, cols - 2]
//	}
//	maze {
//	  algorithm = "prim"
//	  seed      = default_seed
//	}
//	terrain { octaves = 3 }
//	run "a" { algorithm = "astar" }
//	race "r" {
//	  left  = "dijkstra"
//	  right = "bibfs"
//	}
//
// Decoding happens in two passes. The first reads rows, cols or layout; the
// second evaluates everything else with rows, cols and default_seed bound as
// variables and min, max, abs, floor and ceil as functions.
//
// Start defaults to (1,1) and finish to (rows-2, cols-2). A layout carries
// its own S and F and may not set them.
//
// Errors:
//   - ErrParse    HCL syntax or type errors (the diagnostics are wrapped).
//   - ErrInvalid  unknown algorithm or generator, duplicate names, bad sizes.
//   - ErrTooLarge rows×cols above Defaults.MaxCells.
//
// Logging goes to the *slog.Logger stored with WithLogger, or slog.Default.
package scenario
