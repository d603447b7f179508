package structure

import (
	"github.com/dhconnelly/rtreego"
)

// R-tree node fan-out.  25/50 is the library's customary tuning and works
// well for the tens of thousands of atoms in a large structure.
const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// pointExtent is the edge length of the degenerate box each atom occupies in
// the R-tree (the library indexes rectangles, not points).
const pointExtent = 1e-9

// AtomIndex is a spatial index over one structure's atom positions,
// supporting radius queries in better than quadratic time.  It is built once
// per structure and is read-only afterwards.
//
// Distance semantics are linear (not squared) end-to-end: the radius passed
// to Within is in the same units as the coordinates, and the inclusion test
// is a strict Euclidean comparison against that same radius.
type AtomIndex struct {
	tree *rtreego.Rtree
}

// atomEntry adapts an Atom to the rtreego.Spatial interface.
type atomEntry struct {
	atom *Atom
	rect rtreego.Rect
}

func (e *atomEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NewAtomIndex builds a 3D R-tree over atoms.  The atoms slice is captured
// by reference; callers must not mutate it while the index is in use.
// Atoms with non-finite coordinates are indexed as-is; they simply never
// match a query (edge membership for such atoms is undefined, not a fault).
func NewAtomIndex(atoms []Atom) *AtomIndex {
	entries := make([]rtreego.Spatial, 0, len(atoms))
	for i := range atoms {
		p := rtreego.Point{atoms[i].Pos[0], atoms[i].Pos[1], atoms[i].Pos[2]}
		entries = append(entries, &atomEntry{atom: &atoms[i], rect: p.ToRect(pointExtent)})
	}
	return &AtomIndex{tree: rtreego.NewTree(3, rtreeMinChildren, rtreeMaxChildren, entries...)}
}

// Within returns every indexed atom strictly closer than radius to center,
// including an atom located exactly at center (distance zero).  Callers that
// must not see the query atom itself filter by serial.  A non-positive
// radius returns nil.
func (idx *AtomIndex) Within(center Position, radius float64) []*Atom {
	if !(radius > 0) {
		return nil
	}

	corner := rtreego.Point{center[0] - radius, center[1] - radius, center[2] - radius}
	box, err := rtreego.NewRect(corner, []float64{2 * radius, 2 * radius, 2 * radius})
	if err != nil {
		return nil
	}

	candidates := idx.tree.SearchIntersect(box)
	out := make([]*Atom, 0, len(candidates))
	for _, s := range candidates {
		a := s.(*atomEntry).atom
		if center.DistanceTo(a.Pos) < radius {
			out = append(out, a)
		}
	}
	return out
}

// Size returns the number of indexed atoms.
func (idx *AtomIndex) Size() int {
	return idx.tree.Size()
}
