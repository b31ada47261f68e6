package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsePORTA reads the PORTA dialect (DIM = n header, CONV_SECTION for
// vertices, INEQUALITIES_SECTION for facets, END terminator),
// mapping it onto the same Description PANDA produces (spec §6.2,
// "semantically equivalent to PANDA for this core's purposes"). PORTA
// rows omit the homogenizing coordinate and the inequality right-hand
// side is written after a "<=" token rather than first on the line;
// both are reattached here so the rest of the module never needs to
// know which dialect a file came from.
func ParsePORTA(r io.Reader) (*Description, error) {
	scanner := bufio.NewScanner(r)
	d := &Description{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "DIM"):
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("%w: malformed DIM header %q", ErrInvalidPORTA, line)
			}
			dim, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, fmt.Errorf("%w: malformed DIM header %q", ErrInvalidPORTA, line)
			}
			d.Dimension = dim
		case upper == "CONV_SECTION":
			if err := readPortaVertices(scanner, d); err != nil {
				return nil, err
			}
		case upper == "INEQUALITIES_SECTION":
			if err := readPortaInequalities(scanner, d); err != nil {
				return nil, err
			}
		case upper == "END":
			return d, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func readPortaVertices(scanner *bufio.Scanner, d *Description) error {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if isPortaSectionHeader(line) {
			return nil
		}
		fields := strings.Fields(stripLeadingLabel(line))
		vals := make([]int64, 0, len(fields)+1)
		vals = append(vals, 1) // PORTA's CONV_SECTION lists bounded points only; rays are not distinguished here
		for _, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", ErrInvalidPORTA, f)
			}
			vals = append(vals, v)
		}
		d.Vertices = append(d.Vertices, vals)
		if d.Dimension == 0 {
			d.Dimension = len(vals) - 1
		}
	}
	return nil
}

func readPortaInequalities(scanner *bufio.Scanner, d *Description) error {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if isPortaSectionHeader(line) {
			return nil
		}
		line = stripLeadingLabel(line)
		idx := strings.Index(line, "<=")
		if idx == -1 {
			return fmt.Errorf("%w: inequality line missing \"<=\": %q", ErrInvalidPORTA, line)
		}
		lhs := strings.Fields(line[:idx])
		rhsStr := strings.TrimSpace(line[idx+2:])
		rhs, err := strconv.ParseInt(rhsStr, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: malformed right-hand side %q", ErrInvalidPORTA, rhsStr)
		}
		coeffs := make([]int64, 0, len(lhs))
		for _, f := range lhs {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", ErrInvalidPORTA, f)
			}
			coeffs = append(coeffs, v)
		}
		row := append([]int64{rhs}, coeffs...)
		d.Inequalities = append(d.Inequalities, row)
		if d.Dimension == 0 {
			d.Dimension = len(coeffs)
		}
	}
	return nil
}

func isPortaSectionHeader(line string) bool {
	switch strings.ToUpper(line) {
	case "CONV_SECTION", "INEQUALITIES_SECTION", "END":
		return true
	}
	return strings.HasPrefix(strings.ToUpper(line), "DIM")
}

// stripLeadingLabel drops a PORTA "N:" row-counter prefix if present.
func stripLeadingLabel(line string) string {
	if idx := strings.Index(line, ":"); idx != -1 && idx < 6 {
		if _, err := strconv.Atoi(strings.TrimSpace(line[:idx])); err == nil {
			return strings.TrimSpace(line[idx+1:])
		}
	}
	return line
}
