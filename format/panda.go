package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var pandaKeywords = map[string]bool{
	"NAMES:":               true,
	"EQUATIONS:":           true,
	"INEQUALITIES:":        true,
	"VERTICES:":            true,
	"ROWS:":                true,
	"REDUCED:":             true,
	"MAPS:":                true,
	"VERTEX_PERMUTATIONS:": true,
}

func isPandaKeyword(line string) bool {
	return pandaKeywords[strings.ToUpper(strings.TrimSpace(line))]
}

// ParsePANDA reads the PANDA dialect described in SPEC_FULL.md §6.2:
// uppercase keyword sections, each ending at the next keyword or a
// blank line.
func ParsePANDA(r io.Reader) (*Description, error) {
	scanner := bufio.NewScanner(r)
	d := &Description{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToUpper(line) {
		case "NAMES:":
			if err := readSection(scanner, func(l string) error {
				d.Names = append(d.Names, strings.Fields(l)...)
				return nil
			}); err != nil {
				return nil, err
			}
		case "EQUATIONS:", "INEQUALITIES:":
			if err := readRows(scanner, &d.Inequalities, &d.Dimension); err != nil {
				return nil, err
			}
		case "VERTICES:", "ROWS:", "REDUCED:":
			if err := readRows(scanner, &d.Vertices, &d.Dimension); err != nil {
				return nil, err
			}
		case "MAPS:":
			if err := readSection(scanner, func(l string) error {
				d.MapsText = append(d.MapsText, l)
				return nil
			}); err != nil {
				return nil, err
			}
		case "VERTEX_PERMUTATIONS:":
			perms, err := readPermutations(scanner, len(d.Vertices))
			if err != nil {
				return nil, err
			}
			d.Permutations = perms
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidSection, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// readSection feeds every non-blank, non-keyword line to fn until the
// next keyword or blank line (left unconsumed for the outer loop).
func readSection(scanner *bufio.Scanner, fn func(string) error) error {
	for {
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isPandaKeyword(line) {
			return nil
		}
		if err := fn(line); err != nil {
			return err
		}
	}
}

// readRows parses a section of whitespace-separated integer rows,
// checking every row has the same length and recording its coordinate
// count (the length minus the homogenizing/right-hand-side column) in
// *dim.
func readRows(scanner *bufio.Scanner, into *[][]int64, dim *int) error {
	return readSection(scanner, func(line string) error {
		fields := strings.Fields(line)
		row := make([]int64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", ErrInvalidPANDA, f)
			}
			row[i] = v
		}
		if *dim == 0 {
			*dim = len(row) - 1
		} else if len(row)-1 != *dim {
			return fmt.Errorf("%w: row %v", ErrRowLength, row)
		}
		*into = append(*into, row)
		return nil
	})
}

// readPermutations implements input.vertexPermutations/parsePermutation
// from original_source/src/input_vertex_permutation.cpp, including its
// exact error wording: it has already consumed the VERTEX_PERMUTATIONS:
// keyword line (the caller's switch matched it), so it only parses the
// generator lines that follow.
func readPermutations(scanner *bufio.Scanner, nVertices int) ([][]int, error) {
	var generators [][]int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isPandaKeyword(line) {
			break
		}
		perm, err := parsePermutationLine(line, nVertices)
		if err != nil {
			return nil, err
		}
		generators = append(generators, perm)
	}
	return generators, nil
}

func parsePermutationLine(line string, nVertices int) ([]int, error) {
	fields := strings.Fields(line)
	perm := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidPANDA, f)
		}
		if v < 0 || v >= nVertices {
			return nil, fmt.Errorf("%w: Vertex index %d out of range [0, %d] in permutation %q", ErrInvalidPANDA, v, nVertices-1, line)
		}
		perm = append(perm, v)
	}
	if len(perm) != nVertices {
		return nil, fmt.Errorf("%w: Permutation has %d entries but expected %d (one per vertex).", ErrInvalidPANDA, len(perm), nVertices)
	}
	return perm, nil
}

// ParseVertexPermutations reads a standalone VERTEX_PERMUTATIONS: stream
// (spec §6, §8's concrete scenario), requiring the keyword line to be
// the first line read.
func ParseVertexPermutations(r io.Reader, nVertices int) ([][]int, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() || !isPandaKeyword(scanner.Text()) || strings.ToUpper(strings.TrimSpace(scanner.Text())) != "VERTEX_PERMUTATIONS:" {
		return nil, fmt.Errorf("cannot read vertex permutations: file is at an invalid position")
	}
	gens, err := readPermutations(scanner, nVertices)
	if err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return gens, nil
}
