package maze

import "math/rand"

// chamber is an open rectangle bounded by walls, inclusive on all sides.
// top and left are always odd.
type chamber struct {
	top, left, bottom, right int
}

// divider carries the state of one recursive-division run.
type divider struct {
	l   *layout
	rng *rand.Rand
}

// divide draws the outer ring, then splits the interior recursively.
func (l *layout) divide(rng *rand.Rand) {
	forRing(0, 0, l.rows-1, l.cols-1, l.set)
	d := &divider{l: l, rng: rng}
	d.split(chamber{top: 1, left: 1, bottom: l.rows - 2, right: l.cols - 2})
}

// split places one wall with one gap across ch and recurses into both
// halves. Walls sit on even rows/cols and gaps on odd ones, so a later
// perpendicular wall can never plug an earlier gap. The wall runs across
// the longer axis (ties random); if that orientation has no room the other
// is tried, and a chamber with room for neither is left as is.
func (d *divider) split(ch chamber) {
	height := ch.bottom - ch.top + 1
	width := ch.right - ch.left + 1

	horizontal := width < height
	if width == height {
		horizontal = d.rng.Intn(2) == 0
	}
	if horizontal && !canSplit(ch.top, ch.bottom) {
		horizontal = false
	} else if !horizontal && !canSplit(ch.left, ch.right) {
		horizontal = true
	}

	switch {
	case horizontal && canSplit(ch.top, ch.bottom):
		y := d.pickWall(ch.top, ch.bottom)
		gap := d.pickGap(ch.left, ch.right)
		for c := ch.left; c <= ch.right; c++ {
			if c != gap {
				d.l.set(y, c)
			}
		}
		d.split(chamber{top: ch.top, left: ch.left, bottom: y - 1, right: ch.right})
		d.split(chamber{top: y + 1, left: ch.left, bottom: ch.bottom, right: ch.right})
	case !horizontal && canSplit(ch.left, ch.right):
		x := d.pickWall(ch.left, ch.right)
		gap := d.pickGap(ch.top, ch.bottom)
		for r := ch.top; r <= ch.bottom; r++ {
			if r != gap {
				d.l.set(r, x)
			}
		}
		d.split(chamber{top: ch.top, left: ch.left, bottom: ch.bottom, right: x - 1})
		d.split(chamber{top: ch.top, left: x + 1, bottom: ch.bottom, right: ch.right})
	}
}

// canSplit reports whether [lo..hi] (lo odd) contains an even line with
// open cells on both sides.
func canSplit(lo, hi int) bool { return hi-lo >= 2 }

// pickWall returns a random even line strictly inside [lo..hi].
func (d *divider) pickWall(lo, hi int) int {
	first := lo + 1
	count := (hi-1-first)/2 + 1
	return first + 2*d.rng.Intn(count)
}

// pickGap returns a random odd position in [lo..hi].
func (d *divider) pickGap(lo, hi int) int {
	count := (hi-lo)/2 + 1
	return lo + 2*d.rng.Intn(count)
}
