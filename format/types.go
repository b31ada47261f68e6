// Package format reads and writes the PANDA and PORTA textual dialects
// used to describe a polyhedron on disk, and pretty-prints the results
// of a run. It owns the one place in this module where a Row's on-disk
// layout (homogenizing coordinate first, coefficients un-negated) is
// converted to and from row's internal layout (homogenizing coordinate
// last, coefficients negated) — see the row package doc comment.
package format

import "errors"

// Sentinel errors for file parsing.
var (
	ErrInvalidSection  = errors.New("format: unrecognized section keyword")
	ErrUnexpectedEOF   = errors.New("format: unexpected end of input")
	ErrRowLength       = errors.New("format: row length does not match the declared dimension")
	ErrNoDimension     = errors.New("format: dimension could not be determined from input")
	ErrInvalidPANDA    = errors.New("format: malformed PANDA input")
	ErrInvalidPORTA    = errors.New("format: malformed PORTA input")
	ErrInvalidMap      = errors.New("format: malformed coordinate map")
)

// Names holds one label per coordinate, excluding the homogenizing
// column. A nil or short Names falls back to "x1", "x2", ... in
// PrettyPrint.
type Names []string

// Name returns the label for 1-based coordinate i, falling back to
// "x<i>" when names has no entry for it.
func (n Names) Name(i int) string {
	if i-1 >= 0 && i-1 < len(n) && n[i-1] != "" {
		return n[i-1]
	}
	return "x" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// Description is the in-memory result of parsing a PANDA or PORTA file:
// whichever sections were present, with rows kept in their raw on-disk
// layout (PointsFromDisk and IneqsFromDisk convert them to this module's
// internal Row layout).
type Description struct {
	Dimension    int
	Names        Names
	Vertices     [][]int64 // raw disk-layout rows, homogenizing coordinate first; 0 in that slot marks a ray
	Inequalities [][]int64 // raw disk-layout rows: rhs first, coefficients after
	MapsText     []string  // raw MAPS: section lines, handed to ParseMaps once the dimension is known
	Permutations [][]int
}
