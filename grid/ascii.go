package grid

import "strings"

// ASCII symbols understood by Parse and produced by String.
const (
	SymbolOpen   = '.'
	SymbolWall   = '#'
	SymbolStart  = 'S'
	SymbolFinish = 'F'
	SymbolHeavy  = '*' // weight 10
)

// heavyWeight is the weight written as SymbolHeavy.
const heavyWeight = 10

// Parse builds a Grid from ASCII rows (see the package documentation for
// the alphabet). Validation is the same as New.
func Parse(lines []string) (*Grid, error) {
	const op = "Parse"
	if len(lines) == 0 {
		return nil, configErr(op, ErrEmptyGrid)
	}
	cells := make([][]Cell, len(lines))
	for r, line := range lines {
		row := make([]Cell, 0, len(line))
		for c, ch := range []byte(line) {
			cell := Cell{Weight: DefaultWeight}
			switch {
			case ch == SymbolOpen:
			case ch == SymbolWall:
				cell.Wall = true
			case ch == SymbolStart:
				cell.Start = true
			case ch == SymbolFinish:
				cell.Finish = true
			case ch == SymbolHeavy:
				cell.Weight = heavyWeight
			case ch >= '1' && ch <= '9':
				cell.Weight = uint32(ch - '0')
			default:
				return nil, cellErr(op, r, c, ErrUnknownSymbol)
			}
			row = append(row, cell)
		}
		cells[r] = row
	}
	g, err := New(cells)
	if err != nil {
		// re-tag the failing operation so callers see where the input came from
		if ce, ok := err.(*ConfigurationError); ok {
			ce.Op = op
		}
		return nil, err
	}
	return g, nil
}

// MustParse is Parse for tests and examples; it panics on error.
func MustParse(lines ...string) *Grid {
	g, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// symbol returns the ASCII symbol for one cell.
func symbol(cell Cell) byte {
	switch {
	case cell.Start:
		return SymbolStart
	case cell.Finish:
		return SymbolFinish
	case cell.Wall:
		return SymbolWall
	case cell.Weight <= DefaultWeight:
		return SymbolOpen
	case cell.Weight >= heavyWeight:
		return SymbolHeavy
	default:
		return byte('0' + cell.Weight)
	}
}

// Lines renders g as one ASCII string per row.
//
// The ASCII form is lossy: weights above 10 are drawn as SymbolHeavy and
// the endpoint symbols hide their cell's weight, so Parse(g.Lines()) only
// reproduces g when every weight is in 1..10 and both endpoints weigh 1.
func (g *Grid) Lines() []string {
	return g.render(nil)
}

// String renders g as newline-separated ASCII rows. It loses the same
// detail as Lines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Render is String with overlay marks: any coordinate present in marks is
// drawn with its mark instead of its own symbol, except start and finish.
func (g *Grid) Render(marks map[Coord]byte) string {
	return strings.Join(g.render(marks), "\n")
}

func (g *Grid) render(marks map[Coord]byte) []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r*g.cols+c]
			buf[c] = symbol(cell)
			if m, ok := marks[Coord{Row: r, Col: c}]; ok && !cell.Start && !cell.Finish {
				buf[c] = m
			}
		}
		out[r] = string(buf)
	}
	return out
}
