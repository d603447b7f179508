// Package structure models parsed molecular structures: atoms with 3D
// coordinates, the PDB reader that produces them, and the spatial index used
// for neighbor queries.
package structure

import (
	"math"

	"github.com/turtacn/protograph/internal/domain/chem"
)

// Position is a point in the structure's Cartesian coordinate system,
// in ångströms for PDB input.
type Position [3]float64

// DistanceTo returns the Euclidean distance between p and q.
func (p Position) DistanceTo(q Position) float64 {
	dx := p[0] - q[0]
	dy := p[1] - q[1]
	dz := p[2] - q[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Atom is one atom record from a structure file.
type Atom struct {
	// Serial is the atom's serial number, unique within one structure.
	Serial int

	// Pos is the atom's position.
	Pos Position

	// Element is the normalized element symbol, empty when the record does
	// not resolve to one.  Atoms without an element are kept in the
	// collection; exclusion happens at graph construction.
	Element chem.Element

	// Charge is the formal charge, e.g. -1 for a chloride ion.
	Charge int
}
