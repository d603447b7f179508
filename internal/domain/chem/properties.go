// Package chem provides per-element chemical property lookups for graph
// featurization.  The tables cover the elements that occur in protein
// structures and common ligands; anything outside the set degrades to a
// sentinel value rather than an error, so rare or exotic atoms never fail a
// pipeline.
package chem

// Element is a normalized element symbol, e.g. "C", "Na".
type Element string

// Sentinel values returned for elements outside the tables.
const (
	// UnknownVdwRadius approximates a generic heavy atom.
	UnknownVdwRadius = 1.8

	// UnknownAtomicNumber, UnknownValence, and UnknownElectronegativity are
	// all zero: downstream consumers treat 0 as "no data".
	UnknownAtomicNumber      = 0
	UnknownValence           = 0
	UnknownElectronegativity = 0.0
)

// atomicNumbers maps element symbols to atomic numbers.
var atomicNumbers = map[Element]int{
	"H": 1, "C": 6, "N": 7, "O": 8, "F": 9,
	"Na": 11, "Mg": 12, "P": 15, "S": 16, "Cl": 17,
	"K": 19, "Ca": 20, "Cu": 29, "Se": 34, "Br": 35, "I": 53,
}

// valenceElectrons maps element symbols to outer-shell electron counts.
// Cu is listed with 1 (4s¹); in complexes it is typically found as Cu²⁺.
var valenceElectrons = map[Element]int{
	"H": 1, "C": 4, "N": 5, "O": 6, "F": 7,
	"Na": 1, "Mg": 2, "P": 5, "S": 6, "Cl": 7,
	"K": 1, "Ca": 2, "Cu": 1, "Se": 6, "Br": 7, "I": 7,
}

// electronegativities maps element symbols to Pauling electronegativity.
var electronegativities = map[Element]float64{
	"H": 2.20, "C": 2.55, "N": 3.04, "O": 3.44, "F": 3.98,
	"Na": 0.93, "Mg": 1.31, "P": 2.19, "S": 2.58, "Cl": 3.16,
	"K": 0.82, "Ca": 1.00, "Cu": 1.90, "Se": 2.55, "Br": 2.96, "I": 2.66,
}

// vdwRadii maps element symbols to van der Waals radii in ångströms.
var vdwRadii = map[Element]float64{
	"H": 1.20, "C": 1.70, "N": 1.55, "O": 1.52, "F": 1.47,
	"Na": 2.27, "Mg": 1.73, "P": 1.80, "S": 1.80, "Cl": 1.75,
	"K": 2.75, "Ca": 2.31, "Cu": 1.40, "Se": 1.90, "Br": 1.85, "I": 1.98,
}

// AtomicNumber returns the element's atomic number, or 0 when unknown.
func AtomicNumber(e Element) int {
	if n, ok := atomicNumbers[e]; ok {
		return n
	}
	return UnknownAtomicNumber
}

// ValenceElectrons returns the element's valence electron count, or 0 when
// unknown.
func ValenceElectrons(e Element) int {
	if n, ok := valenceElectrons[e]; ok {
		return n
	}
	return UnknownValence
}

// Electronegativity returns the element's Pauling electronegativity, or 0.0
// when unknown.
func Electronegativity(e Element) float64 {
	if x, ok := electronegativities[e]; ok {
		return x
	}
	return UnknownElectronegativity
}

// VdwRadius returns the element's van der Waals radius in ångströms, or 1.8
// when unknown.  The graph builder does not consume this today; it is part
// of the table's contract for featurizers that weight contacts by radius.
func VdwRadius(e Element) float64 {
	if r, ok := vdwRadii[e]; ok {
		return r
	}
	return UnknownVdwRadius
}
