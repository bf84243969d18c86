package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// backtrack carves a perfect maze with an iterative randomized DFS over the
// room lattice, starting from the room nearest to start.
//
//  1. Fill the layout with walls.
//  2. Push the seed room; while the stack is non-empty, look at the top
//     room's unjoined neighbours. If there are none, pop. Otherwise pick
//     one at random, carve the wall between and push it.
//  3. Reveal walls as outer ring then row-major.
func (l *layout) backtrack(rng *rand.Rand, border bool) {
	l.fill()
	lt := newLattice(l, border)

	seed := lt.nearest(l.g.Start())
	lt.join(seed)
	stack := pq.NewStack[grid.Coord](len(l.wall) / 4)
	stack.Push(seed)

	unjoined := func(c grid.Coord) bool { return !lt.joined(c) }
	var cand []grid.Coord
	for stack.Len() > 0 {
		cur, _ := stack.Peek()
		cand = lt.rooms(cand[:0], cur, unjoined)
		if len(cand) == 0 {
			stack.Pop()
			continue
		}
		next := cand[rng.Intn(len(cand))]
		lt.carve(cur, next)
		lt.join(next)
		stack.Push(next)
	}
	l.ringThenRowMajor()
}
