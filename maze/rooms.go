package maze

import (
	"github.com/katalvlaran/gridpath/grid"
)

// lattice is the set of "room" cells used by Backtracker and Prim. Rooms
// are two cells apart; the cell between two adjacent rooms is the wall
// that gets carved to join them.
//
// With a border rooms sit on odd coordinates 1..n-2, leaving a solid outer
// ring. Without one they sit on even coordinates 0..n-1.
type lattice struct {
	l        *layout
	rowLo    int
	rowHi    int
	colLo    int
	colHi    int
	maze     []bool // room already joined to the maze
	stepDirs [4]grid.Coord
}

func newLattice(l *layout, border bool) *lattice {
	lt := &lattice{l: l, maze: make([]bool, len(l.wall))}
	if border {
		lt.rowLo, lt.colLo = 1, 1
		lt.rowHi = lastOfParity(1, l.rows-2)
		lt.colHi = lastOfParity(1, l.cols-2)
	} else {
		lt.rowHi = lastOfParity(0, l.rows-1)
		lt.colHi = lastOfParity(0, l.cols-1)
	}
	for i, d := range grid.Directions {
		lt.stepDirs[i] = grid.Coord{Row: 2 * d.Row, Col: 2 * d.Col}
	}
	return lt
}

// lastOfParity returns the largest value ≤ hi with the same parity as lo.
func lastOfParity(lo, hi int) int {
	if (hi-lo)%2 != 0 {
		return hi - 1
	}
	return hi
}

func (lt *lattice) isRoom(c grid.Coord) bool {
	return c.Row >= lt.rowLo && c.Row <= lt.rowHi && c.Col >= lt.colLo && c.Col <= lt.colHi &&
		(c.Row-lt.rowLo)%2 == 0 && (c.Col-lt.colLo)%2 == 0
}

// nearest returns the room closest to c.
func (lt *lattice) nearest(c grid.Coord) grid.Coord {
	return grid.Coord{
		Row: snap(c.Row, lt.rowLo, lt.rowHi),
		Col: snap(c.Col, lt.colLo, lt.colHi),
	}
}

// snap rounds v to the nearest lo+2k inside [lo, hi].
func snap(v, lo, hi int) int {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	k := (v - lo + 1) / 2
	return lo + 2*k
}

// join marks room c as part of the maze and opens it.
func (lt *lattice) join(c grid.Coord) {
	lt.maze[lt.l.idx(c.Row, c.Col)] = true
	lt.l.open(c.Row, c.Col)
}

func (lt *lattice) joined(c grid.Coord) bool { return lt.maze[lt.l.idx(c.Row, c.Col)] }

// carve opens the wall between adjacent rooms a and b.
func (lt *lattice) carve(a, b grid.Coord) {
	lt.l.open((a.Row+b.Row)/2, (a.Col+b.Col)/2)
}

// rooms appends the rooms two steps from c that satisfy keep.
func (lt *lattice) rooms(dst []grid.Coord, c grid.Coord, keep func(grid.Coord) bool) []grid.Coord {
	for _, d := range lt.stepDirs {
		n := c.Add(d)
		if lt.isRoom(n) && keep(n) {
			dst = append(dst, n)
		}
	}
	return dst
}
