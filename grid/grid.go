package grid

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input, stamps Row/Col from each cell's position and
// normalises a zero Weight to DefaultWeight.
//
// Validation order:
//  1. at least one row and one column  (ErrEmptyGrid)
//  2. every row has the same length    (ErrNonRectangular)
//  3. rows, cols ≥ MinSize             (ErrTooSmall)
//  4. start/finish uniqueness, distinctness and passability.
//
// Every failure is a *ConfigurationError; New never picks a start or
// finish on the caller's behalf.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	const op = "New"
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, configErr(op, ErrEmptyGrid)
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, configErr(op, ErrNonRectangular)
		}
	}
	if rows < MinSize || cols < MinSize {
		return nil, configErr(op, ErrTooSmall)
	}

	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	var haveStart, haveFinish bool
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := cells[r][c]
			cell.Row, cell.Col = r, c
			if cell.Weight == 0 {
				cell.Weight = DefaultWeight
			}
			if cell.Start && cell.Finish {
				return nil, cellErr(op, r, c, ErrSameEndpoints)
			}
			if cell.Start {
				if haveStart {
					return nil, cellErr(op, r, c, ErrDuplicateStart)
				}
				haveStart = true
				g.start = Coord{Row: r, Col: c}
			}
			if cell.Finish {
				if haveFinish {
					return nil, cellErr(op, r, c, ErrDuplicateFinish)
				}
				haveFinish = true
				g.finish = Coord{Row: r, Col: c}
			}
			if (cell.Start || cell.Finish) && cell.Wall {
				return nil, cellErr(op, r, c, ErrEndpointWall)
			}
			g.cells[r*cols+c] = cell
		}
	}
	if !haveStart {
		return nil, configErr(op, ErrNoStart)
	}
	if !haveFinish {
		return nil, configErr(op, ErrNoFinish)
	}

	return g, nil
}

// NewEmpty builds a rows×cols grid with no walls, unit weights and the
// given endpoints. Endpoints outside the grid fail with ErrNoStart or
// ErrNoFinish.
func NewEmpty(rows, cols int, start, finish Coord) (*Grid, error) {
	const op = "NewEmpty"
	if rows <= 0 || cols <= 0 {
		return nil, configErr(op, ErrEmptyGrid)
	}
	if rows < MinSize || cols < MinSize {
		return nil, configErr(op, ErrTooSmall)
	}
	inside := func(c Coord) bool { return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols }
	if !inside(start) {
		return nil, configErr(op, ErrNoStart)
	}
	if !inside(finish) {
		return nil, configErr(op, ErrNoFinish)
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	cells[start.Row][start.Col].Start = true
	cells[finish.Row][finish.Col].Finish = true

	return New(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows*cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Finish returns the finish coordinate.
func (g *Grid) Finish() Coord { return g.finish }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns a copy of the cell at c. c must be in bounds.
func (g *Grid) At(c Coord) Cell { return g.cells[g.Index(c)] }

// Passable reports whether c is in bounds and not a wall.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && !g.cells[g.Index(c)].Wall
}

// IsWall reports whether the in-bounds cell c is a wall.
func (g *Grid) IsWall(c Coord) bool { return g.cells[g.Index(c)].Wall }

// Weight returns the entry cost of c. c must be in bounds.
func (g *Grid) Weight(c Coord) uint32 { return g.cells[g.Index(c)].Weight }

// Weighted reports whether any open cell costs more than DefaultWeight.
func (g *Grid) Weighted() bool {
	for i := range g.cells {
		if !g.cells[i].Wall && g.cells[i].Weight > DefaultWeight {
			return true
		}
	}
	return false
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Wall {
			n++
		}
	}
	return n
}

// Index maps c to its row-major index: row*cols + col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int { return c.Row*g.cols + c.Col }

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the passable orthogonal neighbours of c in the fixed
// order up, right, down, left.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	return g.AppendNeighbors(out, c)
}

// AppendNeighbors appends the passable neighbours of c to dst, in the same
// order as Neighbors, and returns the extended slice. Hot loops reuse dst
// to avoid one allocation per expansion.
func (g *Grid) AppendNeighbors(dst []Coord, c Coord) []Coord {
	for _, d := range Directions {
		n := c.Add(d)
		if g.Passable(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Cells returns a deep copy of the cells as a 2D slice.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}
