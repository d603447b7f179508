package structure

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/turtacn/protograph/internal/domain/chem"
	"github.com/turtacn/protograph/pkg/errors"
)

// PDB fixed-column field boundaries (0-based, half-open) for ATOM/HETATM
// records, per the wwPDB format specification.
const (
	colSerialStart  = 6
	colSerialEnd    = 11
	colNameStart    = 12
	colNameEnd      = 16
	colXStart       = 30
	colXEnd         = 38
	colYStart       = 38
	colYEnd         = 46
	colZStart       = 46
	colZEnd         = 54
	colElementStart = 76
	colElementEnd   = 78
	colChargeStart  = 78
	colChargeEnd    = 80
)

// ParsePDBFile reads the structure file at path and returns its atoms in
// record order.  Only the first model of a multi-model file is read.
func ParsePDBFile(path string) ([]Atom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStructureUnreadable, "cannot open structure file").
			WithDetail(path)
	}
	defer f.Close()

	atoms, err := ParsePDB(f)
	if err != nil {
		var ae *errors.AppError
		if stderrors.As(err, &ae) {
			return nil, ae.WithDetail(path)
		}
		return nil, err
	}
	return atoms, nil
}

// ParsePDB reads PDB-format atom records from r.  ATOM and HETATM records
// are parsed; ENDMDL stops reading; every other record type is skipped.
// An atom record whose serial or coordinates cannot be parsed fails the
// structure, as does input with no atom records at all.
func ParsePDB(r io.Reader) ([]Atom, error) {
	var atoms []Atom

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		record := recordName(line)

		switch record {
		case "ATOM", "HETATM":
			atom, err := parseAtomRecord(line)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeStructureMalformed,
					fmt.Sprintf("malformed %s record at line %d", record, lineNo))
			}
			atoms = append(atoms, atom)
		case "ENDMDL":
			// First model only.
			if len(atoms) > 0 {
				return atoms, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStructureUnreadable, "failed reading structure")
	}

	if len(atoms) == 0 {
		return nil, errors.New(errors.ErrCodeStructureEmpty, "no atom records found")
	}
	return atoms, nil
}

// recordName extracts the record type from the first six columns.
func recordName(line string) string {
	if len(line) < 6 {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line[:6])
}

// parseAtomRecord parses one ATOM/HETATM line.
func parseAtomRecord(line string) (Atom, error) {
	if len(line) < colZEnd {
		return Atom{}, fmt.Errorf("record too short (%d columns, need %d)", len(line), colZEnd)
	}

	serial, err := strconv.Atoi(field(line, colSerialStart, colSerialEnd))
	if err != nil {
		return Atom{}, fmt.Errorf("invalid serial number %q", field(line, colSerialStart, colSerialEnd))
	}

	var pos Position
	for i, span := range [3][2]int{{colXStart, colXEnd}, {colYStart, colYEnd}, {colZStart, colZEnd}} {
		v, err := strconv.ParseFloat(field(line, span[0], span[1]), 64)
		if err != nil {
			return Atom{}, fmt.Errorf("invalid coordinate %q", field(line, span[0], span[1]))
		}
		pos[i] = v
	}

	return Atom{
		Serial:  serial,
		Pos:     pos,
		Element: resolveElement(line),
		Charge:  parseCharge(field(line, colChargeStart, colChargeEnd)),
	}, nil
}

// field returns the trimmed substring of line in [start, end), tolerating
// lines shorter than end.
func field(line string, start, end int) string {
	if len(line) <= start {
		return ""
	}
	if len(line) < end {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

// resolveElement determines the element symbol for an atom record.  The
// element columns (77-78) are authoritative; older files leave them blank,
// in which case the symbol is derived from the atom-name field: a letter in
// column 13 marks a two-letter element ("FE", "CL"), otherwise the first
// letter of the name is the element ("CA" the alpha-carbon, " CA " vs
// calcium "CA  " with column 13 set).
func resolveElement(line string) chem.Element {
	if sym := normalizeElement(field(line, colElementStart, colElementEnd)); sym != "" {
		return sym
	}

	raw := line[colNameStart:colNameEnd]
	if len(raw) == 0 {
		return ""
	}
	if isLetter(raw[0]) && len(raw) > 1 && isLetter(raw[1]) {
		return normalizeElement(raw[:2])
	}
	for i := 0; i < len(raw); i++ {
		if isLetter(raw[i]) {
			return normalizeElement(raw[i : i+1])
		}
	}
	return ""
}

// normalizeElement maps raw column text to the canonical symbol form:
// leading capital, lowercase remainder ("FE" → "Fe").  Anything that is not
// one or two letters resolves to the empty element.
func normalizeElement(s string) chem.Element {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return ""
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return ""
		}
	}
	normalized := strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	return chem.Element(normalized)
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// parseCharge parses the formal-charge columns.  The PDB form is
// digit-then-sign ("2+", "1-"); sign-then-digit is tolerated.  A bare sign
// means magnitude one and anything unparseable is charge zero, since the
// charge columns are optional in practice.
func parseCharge(s string) int {
	if s == "" {
		return 0
	}

	sign := 1
	digits := strings.Builder{}
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '+':
			sign = 1
		case s[i] == '-':
			sign = -1
		case unicode.IsDigit(rune(s[i])):
			digits.WriteByte(s[i])
		default:
			return 0
		}
	}

	if digits.Len() == 0 {
		if strings.ContainsAny(s, "+-") {
			return sign
		}
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return sign * n
}
