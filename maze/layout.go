package maze

import (
	"github.com/katalvlaran/gridpath/grid"
)

// layout is the working wall buffer of one generation run. Generators
// write into it; diff turns the final buffer into grid edits.
type layout struct {
	g          *grid.Grid
	rows, cols int
	wall       []bool
	order      []int // wall placements in reveal order
	start      int
	finish     int
	keepBorder bool // repair may not carve the outer ring
}

func newLayout(g *grid.Grid) *layout {
	return &layout{
		g:      g,
		rows:   g.Rows(),
		cols:   g.Cols(),
		wall:   make([]bool, g.Size()),
		start:  g.Index(g.Start()),
		finish: g.Index(g.Finish()),
	}
}

func (l *layout) idx(r, c int) int { return r*l.cols + c }

func (l *layout) inBounds(r, c int) bool {
	return r >= 0 && r < l.rows && c >= 0 && c < l.cols
}

func (l *layout) endpoint(i int) bool { return i == l.start || i == l.finish }

// carvable reports whether repair may step on (r,c).
func (l *layout) carvable(r, c int) bool {
	if !l.inBounds(r, c) {
		return false
	}
	if !l.keepBorder || !l.wall[l.idx(r, c)] {
		return true
	}
	return r > 0 && c > 0 && r < l.rows-1 && c < l.cols-1
}

// set walls (r,c) and records it for reveal. Endpoints are never walled.
func (l *layout) set(r, c int) {
	i := l.idx(r, c)
	if l.wall[i] || l.endpoint(i) {
		return
	}
	l.wall[i] = true
	l.order = append(l.order, i)
}

// open clears (r,c).
func (l *layout) open(r, c int) { l.wall[l.idx(r, c)] = false }

// fill walls every cell except the endpoints without recording order.
// Generators that start full call ringThenRowMajor once carving is done.
func (l *layout) fill() {
	for i := range l.wall {
		l.wall[i] = !l.endpoint(i)
	}
}

// ringThenRowMajor rebuilds order as the outer ring (clockwise from the
// top-left corner) followed by every remaining wall in row-major order.
func (l *layout) ringThenRowMajor() {
	l.order = l.order[:0]
	seen := make([]bool, len(l.wall))
	add := func(r, c int) {
		i := l.idx(r, c)
		if l.wall[i] && !seen[i] {
			seen[i] = true
			l.order = append(l.order, i)
		}
	}
	forRing(0, 0, l.rows-1, l.cols-1, add)
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			add(r, c)
		}
	}
}

// rowMajor rebuilds order as every wall in row-major order.
func (l *layout) rowMajor() {
	l.order = l.order[:0]
	for i, w := range l.wall {
		if w {
			l.order = append(l.order, i)
		}
	}
}

// forRing visits the perimeter of the rectangle [top..bottom]×[left..right]
// clockwise from (top,left), each cell once.
func forRing(top, left, bottom, right int, visit func(r, c int)) {
	for c := left; c <= right; c++ {
		visit(top, c)
	}
	for r := top + 1; r <= bottom; r++ {
		visit(r, right)
	}
	if bottom > top {
		for c := right - 1; c >= left; c-- {
			visit(bottom, c)
		}
	}
	if right > left {
		for r := bottom - 1; r > top; r-- {
			visit(r, left)
		}
	}
}

// diff returns the edits that turn the grid into the layout: every clear
// in row-major order, then wall placements in reveal order. Cells whose
// wall state already matches produce no edit.
func (l *layout) diff() []grid.Edit {
	var edits []grid.Edit
	for i, w := range l.wall {
		c := l.g.Coordinate(i)
		if !w && l.g.IsWall(c) {
			edits = append(edits, grid.ClearWall(c))
		}
	}
	emitted := make([]bool, len(l.wall))
	for _, i := range l.order {
		if !l.wall[i] || emitted[i] {
			continue
		}
		emitted[i] = true
		c := l.g.Coordinate(i)
		if !l.g.IsWall(c) {
			edits = append(edits, grid.SetWall(c))
		}
	}
	return edits
}

// connected reports whether finish is reachable from start in the layout.
func (l *layout) connected() bool {
	return l.g.ReachableFromLayout(l.g.Start(), l.wall)[l.finish]
}
