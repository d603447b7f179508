package structure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/protograph/internal/domain/chem"
	"github.com/turtacn/protograph/pkg/errors"
)

// atomLine renders a fixed-column ATOM record.  name is the 4-column
// atom-name field verbatim (leading blank marks a one-letter element);
// element and charge fill columns 77-78 and 79-80.
func atomLine(serial int, name, element, charge string, x, y, z float64) string {
	return fmt.Sprintf("ATOM  %5d %-4s ALA A   1    %8.3f%8.3f%8.3f  1.00  0.00          %2s%2s",
		serial, name, x, y, z, element, charge)
}

func hetatmLine(serial int, name, element, charge string, x, y, z float64) string {
	return "HETATM" + atomLine(serial, name, element, charge, x, y, z)[6:]
}

func TestParsePDB_BasicAtoms(t *testing.T) {
	input := strings.Join([]string{
		"HEADER    TEST STRUCTURE",
		atomLine(1, " N  ", "N", "", 0.0, 0.0, 0.0),
		atomLine(2, " CA ", "C", "", 1.458, 0.0, 0.0),
		hetatmLine(3, "CL  ", "Cl", "1-", 5.0, 1.0, -2.5),
		"END",
	}, "\n")

	atoms, err := ParsePDB(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, atoms, 3)

	assert.Equal(t, 1, atoms[0].Serial)
	assert.Equal(t, chem.Element("N"), atoms[0].Element)
	assert.Equal(t, Position{0, 0, 0}, atoms[0].Pos)
	assert.Equal(t, 0, atoms[0].Charge)

	assert.Equal(t, 2, atoms[1].Serial)
	assert.Equal(t, chem.Element("C"), atoms[1].Element)
	assert.InDelta(t, 1.458, atoms[1].Pos[0], 1e-9)

	assert.Equal(t, 3, atoms[2].Serial)
	assert.Equal(t, chem.Element("Cl"), atoms[2].Element)
	assert.Equal(t, -1, atoms[2].Charge)
	assert.InDelta(t, -2.5, atoms[2].Pos[2], 1e-9)
}

func TestParsePDB_ElementColumnNormalization(t *testing.T) {
	// Element columns are upper-case in PDB files ("FE", "CL").
	input := atomLine(1, "FE  ", "FE", "", 1, 2, 3)

	atoms, err := ParsePDB(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, chem.Element("Fe"), atoms[0].Element)
}

func TestParsePDB_ElementFallbackFromAtomName(t *testing.T) {
	// Blank element columns: a leading blank in the name field means a
	// one-letter element (" CA " is an alpha carbon), a letter in column 13
	// means a two-letter element ("CA  " is calcium).
	input := strings.Join([]string{
		atomLine(1, " CA ", "", "", 0, 0, 0),
		atomLine(2, "CA  ", "", "2+", 9, 9, 9),
	}, "\n")

	atoms, err := ParsePDB(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, chem.Element("C"), atoms[0].Element)
	assert.Equal(t, chem.Element("Ca"), atoms[1].Element)
	assert.Equal(t, 2, atoms[1].Charge)
}

func TestParsePDB_UnresolvedElementIsKept(t *testing.T) {
	// Neither element columns nor the name yield letters: the atom is kept
	// with an empty element; exclusion is the graph builder's job.
	input := atomLine(1, "1234", "", "", 0, 0, 0)

	atoms, err := ParsePDB(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, atoms, 1)
	assert.Empty(t, atoms[0].Element)
}

func TestParsePDB_FirstModelOnly(t *testing.T) {
	input := strings.Join([]string{
		"MODEL        1",
		atomLine(1, " C  ", "C", "", 0, 0, 0),
		"ENDMDL",
		"MODEL        2",
		atomLine(1, " C  ", "C", "", 5, 5, 5),
		"ENDMDL",
	}, "\n")

	atoms, err := ParsePDB(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, atoms, 1)
	assert.Equal(t, Position{0, 0, 0}, atoms[0].Pos)
}

func TestParsePDB_MalformedCoordinateFails(t *testing.T) {
	line := atomLine(1, " C  ", "C", "", 0, 0, 0)
	// Corrupt the x-coordinate columns.
	broken := line[:30] + "xxxxxxxx" + line[38:]

	_, err := ParsePDB(strings.NewReader(broken))
	assert.True(t, errors.IsCode(err, errors.ErrCodeStructureMalformed))
}

func TestParsePDB_TruncatedRecordFails(t *testing.T) {
	_, err := ParsePDB(strings.NewReader("ATOM      1  C"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeStructureMalformed))
}

func TestParsePDB_NoAtomsFails(t *testing.T) {
	_, err := ParsePDB(strings.NewReader("HEADER    EMPTY\nEND\n"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeStructureEmpty))
}

func TestParsePDB_UnknownRecordsSkipped(t *testing.T) {
	input := strings.Join([]string{
		"REMARK 350 NOT AN ATOM",
		"SEQRES   1 A   10  MET",
		atomLine(7, " O  ", "O", "", 1, 1, 1),
	}, "\n")

	atoms, err := ParsePDB(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, atoms, 1)
	assert.Equal(t, 7, atoms[0].Serial)
}

func TestParsePDBFile_MissingFile(t *testing.T) {
	_, err := ParsePDBFile(filepath.Join(t.TempDir(), "absent.pdb"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeStructureUnreadable))
}

func TestParsePDBFile_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.pdb")
	content := atomLine(1, " C  ", "C", "", 0, 0, 0) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	atoms, err := ParsePDBFile(path)
	require.NoError(t, err)
	assert.Len(t, atoms, 1)
}

func TestParseCharge(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"1-", -1},
		{"2+", 2},
		{"-1", -1},
		{"+2", 2},
		{"+", 1},
		{"-", -1},
		{"??", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseCharge(tt.in), "charge %q", tt.in)
	}
}

func TestPositionDistanceTo(t *testing.T) {
	a := Position{0, 0, 0}
	b := Position{3, 4, 0}
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-12)
	assert.InDelta(t, 5.0, b.DistanceTo(a), 1e-12)
	assert.Zero(t, a.DistanceTo(a))
}
