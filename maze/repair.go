package maze

import (
	"container/list"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// Walk tuning.
const (
	walkBias      = 0.75 // chance a step moves toward finish
	walkWiden     = 0.10 // chance a step also opens a side cell
	walkStepsPerN = 8    // walk budget = walkStepsPerN·(rows+cols)
)

// repair reconnects start and finish if the layout separates them.
//
//  1. Flood-fill from start; done if finish is reached.
//  2. RepairWalk: carve a biased random walk into finish's component,
//     falling back to the shortest carve if the budget runs out.
//  3. RepairShortest: carve the route crossing the fewest walls.
//  4. Still disconnected ⇒ ErrGenerationInvariantViolated.
func (l *layout) repair(strategy Repair, rng *rand.Rand) error {
	if l.connected() {
		return nil
	}
	if strategy == RepairWalk && l.carveWalk(rng) && l.connected() {
		return nil
	}
	l.carveShortest()
	if !l.connected() {
		return fmt.Errorf("%w: %dx%d layout", ErrGenerationInvariantViolated, l.rows, l.cols)
	}
	return nil
}

// carveWalk walks from start, opening every cell it steps on, until it
// enters the component that contains finish. Each step moves toward finish
// with probability walkBias (picking randomly between the two axes when
// both reduce the distance) and otherwise in a random in-bounds direction.
// Reports whether the walk arrived within budget.
func (l *layout) carveWalk(rng *rand.Rand) bool {
	target := l.g.ReachableFromLayout(l.g.Finish(), l.wall)
	fr, fc := l.finish/l.cols, l.finish%l.cols
	r, c := l.start/l.cols, l.start%l.cols

	budget := walkStepsPerN * (l.rows + l.cols)
	for step := 0; step < budget; step++ {
		if target[l.idx(r, c)] {
			return true
		}
		var d grid.Coord
		if chance(rng, walkBias) {
			d = towards(rng, r, c, fr, fc)
		} else {
			d = grid.Directions[rng.Intn(len(grid.Directions))]
		}
		nr, nc := r+d.Row, c+d.Col
		if !l.carvable(nr, nc) {
			continue
		}
		r, c = nr, nc
		l.open(r, c)
		if chance(rng, walkWiden) {
			side := grid.Directions[rng.Intn(len(grid.Directions))]
			if sr, sc := r+side.Row, c+side.Col; l.carvable(sr, sc) {
				l.open(sr, sc)
			}
		}
	}
	return target[l.idx(r, c)]
}

// towards returns a unit step that reduces the Manhattan distance from
// (r,c) to (tr,tc).
func towards(rng *rand.Rand, r, c, tr, tc int) grid.Coord {
	var vertical, horizontal grid.Coord
	switch {
	case tr < r:
		vertical = grid.Up
	case tr > r:
		vertical = grid.Down
	}
	switch {
	case tc < c:
		horizontal = grid.Left
	case tc > c:
		horizontal = grid.Right
	}
	zero := grid.Coord{}
	switch {
	case vertical == zero:
		return horizontal
	case horizontal == zero:
		return vertical
	case rng.Intn(2) == 0:
		return vertical
	default:
		return horizontal
	}
}

// carveShortest runs a multi-source 0-1 BFS from start's component:
// entering an open cell costs 0, entering a wall costs 1. The first cell of
// finish's component to be popped ends the search and the walls along the
// predecessor chain are opened.
func (l *layout) carveShortest() {
	src := l.g.ReachableFromLayout(l.g.Start(), l.wall)
	dst := l.g.ReachableFromLayout(l.g.Finish(), l.wall)

	n := len(l.wall)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	for i, in := range src {
		if in {
			dist[i] = 0
			dq.PushBack(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if dst[u] {
			target = u
			break
		}
		ur, uc := u/l.cols, u%l.cols
		for _, d := range grid.Directions {
			vr, vc := ur+d.Row, uc+d.Col
			if !l.carvable(vr, vc) {
				continue
			}
			v := l.idx(vr, vc)
			step := 0
			if l.wall[v] {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	for at := target; at >= 0; at = prev[at] {
		l.wall[at] = false
	}
}
