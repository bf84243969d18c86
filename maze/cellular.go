package maze

import "math/rand"

// cellular builds a cave layout with a birth/death automaton.
//
//  1. Seed each cell as a wall with probability WallChance.
//  2. Run Generations steps over the 8-neighbourhood, counting
//     out-of-bounds cells as walls: a wall survives when at least
//     DeathLimit neighbours are walls; an open cell becomes a wall when
//     more than BirthLimit neighbours are walls.
//  3. Optionally wall the outer ring.
//  4. Clear the 3×3 neighbourhoods of start and finish.
//
// Connectivity is left to repair. Walls are revealed row-major.
func (l *layout) cellular(rng *rand.Rand, o Options) {
	for i := range l.wall {
		l.wall[i] = chance(rng, o.WallChance)
	}

	next := make([]bool, len(l.wall))
	for gen := 0; gen < o.Generations; gen++ {
		for r := 0; r < l.rows; r++ {
			for c := 0; c < l.cols; c++ {
				n := l.wallsAround(r, c)
				i := l.idx(r, c)
				if l.wall[i] {
					next[i] = n >= o.DeathLimit
				} else {
					next[i] = n > o.BirthLimit
				}
			}
		}
		l.wall, next = next, l.wall
	}

	if o.SolidBorder {
		forRing(0, 0, l.rows-1, l.cols-1, func(r, c int) { l.wall[l.idx(r, c)] = true })
	}
	for _, e := range [2]int{l.start, l.finish} {
		er, ec := e/l.cols, e%l.cols
		for r := er - 1; r <= er+1; r++ {
			for c := ec - 1; c <= ec+1; c++ {
				if l.inBounds(r, c) {
					l.open(r, c)
				}
			}
		}
	}
}

// wallsAround counts walls among the 8 neighbours of (r,c); cells outside
// the grid count as walls.
func (l *layout) wallsAround(r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if !l.inBounds(nr, nc) || l.wall[l.idx(nr, nc)] {
				n++
			}
		}
	}
	return n
}
