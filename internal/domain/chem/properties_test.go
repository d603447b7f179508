package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// supportedElements is the contract set: every table must cover all of
// these symbols.
var supportedElements = []Element{
	"H", "C", "N", "O", "F", "Na", "Mg", "P", "S", "Cl",
	"K", "Ca", "Cu", "Br", "Se", "I",
}

func TestTables_CoverSupportedElements(t *testing.T) {
	for _, e := range supportedElements {
		assert.NotZero(t, AtomicNumber(e), "atomic number for %s", e)
		assert.NotZero(t, ValenceElectrons(e), "valence for %s", e)
		assert.NotZero(t, Electronegativity(e), "electronegativity for %s", e)
		assert.NotZero(t, VdwRadius(e), "vdW radius for %s", e)
	}
}

func TestAtomicNumber_KnownValues(t *testing.T) {
	assert.Equal(t, 1, AtomicNumber("H"))
	assert.Equal(t, 6, AtomicNumber("C"))
	assert.Equal(t, 8, AtomicNumber("O"))
	assert.Equal(t, 34, AtomicNumber("Se"))
	assert.Equal(t, 53, AtomicNumber("I"))
}

func TestValenceElectrons_KnownValues(t *testing.T) {
	assert.Equal(t, 4, ValenceElectrons("C"))
	assert.Equal(t, 5, ValenceElectrons("N"))
	assert.Equal(t, 7, ValenceElectrons("Cl"))
	assert.Equal(t, 1, ValenceElectrons("Cu"))
	assert.Equal(t, 2, ValenceElectrons("Ca"))
}

func TestElectronegativity_KnownValues(t *testing.T) {
	assert.InDelta(t, 2.20, Electronegativity("H"), 1e-9)
	assert.InDelta(t, 3.44, Electronegativity("O"), 1e-9)
	assert.InDelta(t, 3.98, Electronegativity("F"), 1e-9)
	assert.InDelta(t, 0.82, Electronegativity("K"), 1e-9)
}

func TestVdwRadius_KnownValues(t *testing.T) {
	assert.InDelta(t, 1.20, VdwRadius("H"), 1e-9)
	assert.InDelta(t, 1.70, VdwRadius("C"), 1e-9)
	assert.InDelta(t, 2.75, VdwRadius("K"), 1e-9)
}

func TestUnknownElement_SentinelsNotErrors(t *testing.T) {
	for _, e := range []Element{"Xx", "Fe", "Zn", "", "c"} {
		assert.Equal(t, 0, AtomicNumber(e))
		assert.Equal(t, 0, ValenceElectrons(e))
		assert.Equal(t, 0.0, Electronegativity(e))
		assert.Equal(t, 1.8, VdwRadius(e))
	}
}

func TestIsElement(t *testing.T) {
	// Real elements, in and out of the property tables.
	for _, e := range []Element{"H", "C", "Cl", "Fe", "Zn", "U", "Og"} {
		assert.True(t, IsElement(e), "%q is an element", e)
	}
	// Non-elements: placeholder tokens, unresolved records, wrong case.
	for _, e := range []Element{"Xx", "Zz", "Qq", "", "c", "FE", "CL"} {
		assert.False(t, IsElement(e), "%q is not a normalized element symbol", e)
	}
}
