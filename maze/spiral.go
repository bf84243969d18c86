package maze

// spiral draws concentric wall rings at offsets 1, 3, 5, … from the edge.
// Ring k leaves one gap in the middle of one side, rotating top, right,
// bottom, left, so the corridors between rings chain into one winding
// route toward the centre. Rings stop once the next one would have no
// interior. Deterministic.
func (l *layout) spiral() {
	for k, off := 0, 1; ; k, off = k+1, off+2 {
		top, left := off, off
		bottom, right := l.rows-1-off, l.cols-1-off
		if bottom-top < 2 || right-left < 2 {
			return
		}
		var gr, gc int
		switch k % 4 {
		case 0:
			gr, gc = top, (left+right)/2
		case 1:
			gr, gc = (top+bottom)/2, right
		case 2:
			gr, gc = bottom, (left+right)/2
		default:
			gr, gc = (top+bottom)/2, left
		}
		forRing(top, left, bottom, right, func(r, c int) {
			if r != gr || c != gc {
				l.set(r, c)
			}
		})
	}
}
