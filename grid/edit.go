package grid

import "fmt"

// EditKind selects which attribute an Edit changes.
type EditKind int

const (
	// EditWall sets or clears the wall flag.
	EditWall EditKind = iota
	// EditWeight sets the entry cost.
	EditWeight
)

// String returns "wall" or "weight".
func (k EditKind) String() string {
	switch k {
	case EditWall:
		return "wall"
	case EditWeight:
		return "weight"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// Edit is one cell change produced by a maze or terrain generator. The
// core never applies edits itself; callers replay them (possibly animated)
// or hand the whole list to Apply.
type Edit struct {
	Coord
	Kind   EditKind
	Wall   bool   // new wall state, EditWall only
	Weight uint32 // new weight, EditWeight only
}

// SetWall returns an edit that turns c into a wall.
func SetWall(c Coord) Edit { return Edit{Coord: c, Kind: EditWall, Wall: true} }

// ClearWall returns an edit that opens c.
func ClearWall(c Coord) Edit { return Edit{Coord: c, Kind: EditWall, Wall: false} }

// SetWeight returns an edit that sets the entry cost of c.
func SetWeight(c Coord, w uint32) Edit { return Edit{Coord: c, Kind: EditWeight, Weight: w} }

// String renders the edit for diagnostics.
func (e Edit) String() string {
	if e.Kind == EditWeight {
		return fmt.Sprintf("%s weight=%d", e.Coord, e.Weight)
	}
	return fmt.Sprintf("%s wall=%t", e.Coord, e.Wall)
}

// Apply returns a new Grid with edits applied in order; g itself is left
// untouched. The whole list is validated before anything is returned, so
// callers either get a fully edited grid or an error.
//
// Errors (wrapping ErrInvalidEdit):
//   - an edit outside the grid,
//   - a wall edit on the start or finish cell,
//   - a zero weight.
//
// Complexity: O(R×C + len(edits)).
func (g *Grid) Apply(edits []Edit) (*Grid, error) {
	out := g.Clone()
	for i, e := range edits {
		if !out.InBounds(e.Coord) {
			return nil, fmt.Errorf("%w: edit %d at %s out of bounds", ErrInvalidEdit, i, e.Coord)
		}
		cell := &out.cells[out.Index(e.Coord)]
		switch e.Kind {
		case EditWall:
			if e.Wall && (cell.Start || cell.Finish) {
				return nil, fmt.Errorf("%w: edit %d walls endpoint %s", ErrInvalidEdit, i, e.Coord)
			}
			cell.Wall = e.Wall
		case EditWeight:
			if e.Weight == 0 {
				return nil, fmt.Errorf("%w: edit %d sets zero weight at %s", ErrInvalidEdit, i, e.Coord)
			}
			cell.Weight = e.Weight
		default:
			return nil, fmt.Errorf("%w: edit %d has unknown kind %v", ErrInvalidEdit, i, e.Kind)
		}
	}
	return out, nil
}

// WallLayout returns the grid's wall flags in row-major order.
func (g *Grid) WallLayout() []bool {
	out := make([]bool, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Wall
	}
	return out
}
