package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// prim grows a perfect maze outward from the room nearest to start, in the
// manner of Prim's spanning tree with random weights.
//
//  1. Fill the layout with walls and join the seed room.
//  2. Put the seed's neighbour rooms on the frontier.
//  3. While the frontier is non-empty: remove a random frontier room, join
//     it to one random neighbour already in the maze, and add its own
//     unjoined, unlisted neighbours to the frontier.
//  4. Reveal walls as outer ring then row-major.
func (l *layout) prim(rng *rand.Rand, border bool) {
	l.fill()
	lt := newLattice(l, border)
	listed := make([]bool, len(l.wall))

	var frontier []grid.Coord
	enqueue := func(c grid.Coord) {
		for _, n := range lt.rooms(nil, c, func(n grid.Coord) bool {
			return !lt.joined(n) && !listed[l.idx(n.Row, n.Col)]
		}) {
			listed[l.idx(n.Row, n.Col)] = true
			frontier = append(frontier, n)
		}
	}

	seed := lt.nearest(l.g.Start())
	lt.join(seed)
	enqueue(seed)

	joined := func(c grid.Coord) bool { return lt.joined(c) }
	var anchors []grid.Coord
	for len(frontier) > 0 {
		k := rng.Intn(len(frontier))
		cur := frontier[k]
		frontier[k] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		anchors = lt.rooms(anchors[:0], cur, joined)
		lt.carve(cur, anchors[rng.Intn(len(anchors))])
		lt.join(cur)
		enqueue(cur)
	}
	l.ringThenRowMajor()
}
