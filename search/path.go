package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// Predecessors is a back-pointer arena for one search run, indexed
// row*cols+col. A negative entry means "no predecessor".
type Predecessors struct {
	cols int
	prev []int32
}

// NewPredecessors returns an arena sized for g with every entry unset.
func NewPredecessors(g *grid.Grid) Predecessors {
	p := Predecessors{cols: g.Cols(), prev: make([]int32, g.Size())}
	for i := range p.prev {
		p.prev[i] = noPred
	}
	return p
}

func (p Predecessors) index(c grid.Coord) int { return c.Row*p.cols + c.Col }

func (p Predecessors) coord(i int) grid.Coord {
	return grid.Coord{Row: i / p.cols, Col: i % p.cols}
}

// Set records from as the predecessor of c.
func (p Predecessors) Set(c, from grid.Coord) { p.prev[p.index(c)] = int32(p.index(from)) }

// Get returns the predecessor of c, if any.
func (p Predecessors) Get(c grid.Coord) (grid.Coord, bool) {
	i := p.prev[p.index(c)]
	if i < 0 {
		return grid.Coord{}, false
	}
	return p.coord(int(i)), true
}

// setIdx and getIdx are the index-based forms used in hot loops.
func (p Predecessors) setIdx(i, from int) { p.prev[i] = int32(from) }
func (p Predecessors) getIdx(i int) int  { return int(p.prev[i]) }

// chain walks predecessors from idx until an unset entry, returning the
// indices visited (idx first).
func (p Predecessors) chain(idx int) []int {
	var out []int
	for i := idx; i >= 0; i = p.getIdx(i) {
		out = append(out, i)
		if len(out) > len(p.prev) {
			break // corrupt arena; never loop forever
		}
	}
	return out
}

// ReconstructPath follows predecessors from finish back to start and
// returns the path start → finish inclusive. The result is empty when
// finish was never reached. If start == finish the path is [start].
func ReconstructPath(p Predecessors, start, finish grid.Coord) []grid.Coord {
	if start == finish {
		return []grid.Coord{start}
	}
	idx := p.chain(p.index(finish))
	if len(idx) < 2 || idx[len(idx)-1] != p.index(start) {
		return nil
	}
	path := make([]grid.Coord, len(idx))
	for i, k := range idx {
		path[len(idx)-1-i] = p.coord(k)
	}
	return path
}

// PathCost sums the weights of every cell entered along path, i.e. all
// cells except the first. An empty path costs 0.
func PathCost(g *grid.Grid, path []grid.Coord) int64 {
	var cost int64
	for i := 1; i < len(path); i++ {
		cost += int64(g.Weight(path[i]))
	}
	return cost
}

// ValidPath reports whether path is a non-empty chain of orthogonally
// adjacent, passable cells from start to finish.
func ValidPath(g *grid.Grid, path []grid.Coord, start, finish grid.Coord) bool {
	if len(path) == 0 || path[0] != start || path[len(path)-1] != finish {
		return false
	}
	for i, c := range path {
		if !g.Passable(c) {
			return false
		}
		if i > 0 && grid.Manhattan(path[i-1], c) != 1 {
			return false
		}
	}
	return true
}
