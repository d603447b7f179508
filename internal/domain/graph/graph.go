// Package graph builds annotated proximity graphs from molecular
// structures and serializes them as JSON artifacts.
package graph

import (
	"encoding/json"
	"io"

	"github.com/turtacn/protograph/pkg/errors"
)

// Node is one atom of the proximity graph, annotated with the chemical
// properties used by downstream featurization.
type Node struct {
	// Index is the node's position in the Nodes slice; edges reference it.
	Index int `json:"index"`
	// ID is the atom serial number from the source structure.
	ID int `json:"id"`

	AtomicNumber      int     `json:"atomic_number"`
	ValenceElectrons  int     `json:"valence_electrons"`
	Electronegativity float64 `json:"electronegativity"`
	Charge            int     `json:"charge"`
}

// Edge connects two nodes whose atoms lie within the proximity cutoff.
// Weight is their Euclidean distance.
type Edge struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight"`
}

// ProteinGraph is the complete proximity graph of one structure.
type ProteinGraph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// EncodeJSON writes the graph to w as a single JSON document.  Empty node
// and edge sets serialize as empty arrays, not null.
func (g *ProteinGraph) EncodeJSON(w io.Writer) error {
	out := *g
	if out.Nodes == nil {
		out.Nodes = []Node{}
	}
	if out.Edges == nil {
		out.Edges = []Edge{}
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(&out); err != nil {
		return errors.Wrap(err, errors.ErrCodeGraphEncodeFailed, "failed to encode graph")
	}
	return nil
}
