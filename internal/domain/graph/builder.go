package graph

import (
	"math"
	"sort"

	"github.com/turtacn/protograph/internal/domain/chem"
	"github.com/turtacn/protograph/internal/domain/structure"
)

// Build constructs the proximity graph of atoms.  Atoms whose symbol is not
// a recognized element ("Xx", unresolved records) are excluded entirely;
// real elements outside the property tables keep their node with sentinel
// annotations.  Two distinct atoms are connected when
// their Euclidean distance is strictly below cutoff; the edge weight is
// that distance.  Node order follows input order, and each unordered atom
// pair yields at most one edge.
//
// A cutoff that is not a positive finite number produces a graph with
// nodes and no edges.
func Build(atoms []structure.Atom, cutoff float64) *ProteinGraph {
	g := &ProteinGraph{}

	// nodeIndex maps atom serial to node index.  Duplicate serials should
	// not occur in well-formed files; if they do, the last one wins.
	nodeIndex := make(map[int]int, len(atoms))
	noded := make([]structure.Atom, 0, len(atoms))
	for _, a := range atoms {
		if !chem.IsElement(a.Element) {
			continue
		}
		g.Nodes = append(g.Nodes, Node{
			Index:             len(g.Nodes),
			ID:                a.Serial,
			AtomicNumber:      chem.AtomicNumber(a.Element),
			ValenceElectrons:  chem.ValenceElectrons(a.Element),
			Electronegativity: chem.Electronegativity(a.Element),
			Charge:            a.Charge,
		})
		nodeIndex[a.Serial] = len(g.Nodes) - 1
		noded = append(noded, a)
	}

	if !(cutoff > 0) || math.IsInf(cutoff, 1) {
		return g
	}

	idx := structure.NewAtomIndex(noded)

	// Unordered node-index pairs, so each neighborhood overlap produces a
	// single edge.
	weights := make(map[[2]int]float64)
	for _, a := range noded {
		src := nodeIndex[a.Serial]
		for _, nb := range idx.Within(a.Pos, cutoff) {
			if nb.Serial == a.Serial {
				continue
			}
			dst, ok := nodeIndex[nb.Serial]
			if !ok {
				continue
			}
			key := [2]int{src, dst}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			weights[key] = a.Pos.DistanceTo(nb.Pos)
		}
	}

	g.Edges = make([]Edge, 0, len(weights))
	for key, w := range weights {
		g.Edges = append(g.Edges, Edge{Source: key[0], Target: key[1], Weight: w})
	}
	sort.Slice(g.Edges, func(i, j int) bool {
		if g.Edges[i].Source != g.Edges[j].Source {
			return g.Edges[i].Source < g.Edges[j].Source
		}
		return g.Edges[i].Target < g.Edges[j].Target
	})
	return g
}
