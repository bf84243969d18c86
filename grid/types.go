package grid

import "fmt"

// MinSize is the smallest permitted number of rows and of columns.
const MinSize = 5

// DefaultWeight is the entry cost of an unweighted cell.
const DefaultWeight uint32 = 1

// Coord identifies a cell by row and column. It is the cell's identity:
// cells are never aliased by pointer across grids.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord { return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col} }

// Sub returns the component-wise difference c-d.
func (c Coord) Sub(d Coord) Coord { return Coord{Row: c.Row - d.Row, Col: c.Col - d.Col} }

// Direction offsets in the fixed enumeration order used by every algorithm.
var (
	Up    = Coord{Row: -1, Col: 0}
	Right = Coord{Row: 0, Col: 1}
	Down  = Coord{Row: 1, Col: 0}
	Left  = Coord{Row: 0, Col: -1}
)

// Directions lists the four orthogonal offsets: up, right, down, left.
var Directions = [4]Coord{Up, Right, Down, Left}

// Cell is one grid position with wall, weight and role attributes.
type Cell struct {
	Row, Col int
	Wall     bool
	Start    bool
	Finish   bool
	Weight   uint32 // cost to enter this cell, ≥ 1
}

// Grid is an immutable rectangular array of cells with exactly one start
// and one finish. Build it with New, NewEmpty or Parse.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
	start      Coord
	finish     Coord
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
