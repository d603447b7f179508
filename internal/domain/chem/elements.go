package chem

// periodicTable is the set of all IUPAC element symbols, in normalized
// form.  Membership distinguishes a real element the property tables do not
// cover (sentinel values apply) from a token that is not an element at all
// (excluded from graphs entirely).
var periodicTable = map[Element]struct{}{
	"H": {}, "He": {},
	"Li": {}, "Be": {}, "B": {}, "C": {}, "N": {}, "O": {}, "F": {}, "Ne": {},
	"Na": {}, "Mg": {}, "Al": {}, "Si": {}, "P": {}, "S": {}, "Cl": {}, "Ar": {},
	"K": {}, "Ca": {}, "Sc": {}, "Ti": {}, "V": {}, "Cr": {}, "Mn": {}, "Fe": {},
	"Co": {}, "Ni": {}, "Cu": {}, "Zn": {}, "Ga": {}, "Ge": {}, "As": {}, "Se": {},
	"Br": {}, "Kr": {},
	"Rb": {}, "Sr": {}, "Y": {}, "Zr": {}, "Nb": {}, "Mo": {}, "Tc": {}, "Ru": {},
	"Rh": {}, "Pd": {}, "Ag": {}, "Cd": {}, "In": {}, "Sn": {}, "Sb": {}, "Te": {},
	"I": {}, "Xe": {},
	"Cs": {}, "Ba": {},
	"La": {}, "Ce": {}, "Pr": {}, "Nd": {}, "Pm": {}, "Sm": {}, "Eu": {}, "Gd": {},
	"Tb": {}, "Dy": {}, "Ho": {}, "Er": {}, "Tm": {}, "Yb": {}, "Lu": {},
	"Hf": {}, "Ta": {}, "W": {}, "Re": {}, "Os": {}, "Ir": {}, "Pt": {}, "Au": {},
	"Hg": {}, "Tl": {}, "Pb": {}, "Bi": {}, "Po": {}, "At": {}, "Rn": {},
	"Fr": {}, "Ra": {},
	"Ac": {}, "Th": {}, "Pa": {}, "U": {}, "Np": {}, "Pu": {}, "Am": {}, "Cm": {},
	"Bk": {}, "Cf": {}, "Es": {}, "Fm": {}, "Md": {}, "No": {}, "Lr": {},
	"Rf": {}, "Db": {}, "Sg": {}, "Bh": {}, "Hs": {}, "Mt": {}, "Ds": {}, "Rg": {},
	"Cn": {}, "Nh": {}, "Fl": {}, "Mc": {}, "Lv": {}, "Ts": {}, "Og": {},
}

// IsElement reports whether e is a recognized element symbol in normalized
// form ("Fe", not "FE").  Symbols outside the property tables are still
// elements; tokens like "Xx" are not.
func IsElement(e Element) bool {
	_, ok := periodicTable[e]
	return ok
}
