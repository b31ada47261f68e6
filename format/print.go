package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/doubledesc/dd/row"
)

// PrettyPrint writes "Inequalities:" followed by one line per facet in
// human form "a_1*x_1 + ... <= b", using names for coordinate labels
// (falling back to x1, x2, ... for any missing entry), grounded on
// original_source/src/list.cpp's prettyPrintln call site and the "<="
// separator fixed by original_source/src/test/integration_samples.cpp.
func PrettyPrint(w io.Writer, facets row.Matrix, names Names) error {
	if _, err := fmt.Fprintln(w, "Inequalities:"); err != nil {
		return err
	}
	for _, f := range facets {
		if err := PrintFacetLine(w, f, names); err != nil {
			return err
		}
	}
	return nil
}

// PrintFacetLine writes a single facet's "a_1*x_1 + ... <= b" line with
// no section header, the form original_source/src/list.cpp's
// prettyPrintln call streams one row at a time as rotation discovers
// it; PrettyPrint itself is PrintFacetLine looped under one header for
// a single final batch.
func PrintFacetLine(w io.Writer, facet row.Row, names Names) error {
	return printInequalityLine(w, IneqToDisk(facet), names)
}

func printInequalityLine(w io.Writer, disk []int64, names Names) error {
	rhs := disk[0]
	var b strings.Builder
	wrote := false
	for i := 1; i < len(disk); i++ {
		coeff := disk[i]
		if coeff == 0 {
			continue
		}
		abs := coeff
		if abs < 0 {
			abs = -abs
		}
		switch {
		case !wrote && coeff < 0:
			b.WriteString("-")
		case wrote && coeff > 0:
			b.WriteString(" + ")
		case wrote && coeff < 0:
			b.WriteString(" - ")
		}
		if abs == 1 {
			b.WriteString(names.Name(i))
		} else {
			fmt.Fprintf(&b, "%d*%s", abs, names.Name(i))
		}
		wrote = true
	}
	if !wrote {
		b.WriteString("0")
	}
	_, err := fmt.Fprintf(w, "%s <= %d\n", b.String(), rhs)
	return err
}

// PrintVertices writes "Vertices:" (hasRays false) or "Vertices / Rays:"
// (hasRays true) followed by one raw disk-layout row per line, spec §6.
func PrintVertices(w io.Writer, vertices row.Matrix, hasRays bool) error {
	header := "Vertices:"
	if hasRays {
		header = "Vertices / Rays:"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, v := range vertices {
		if err := PrintVertexLine(w, v); err != nil {
			return err
		}
	}
	return nil
}

// PrintVertexLine writes a single vertex/ray's raw disk-layout
// coordinates with no section header, for streaming output as rows are
// discovered (see PrintFacetLine).
func PrintVertexLine(w io.Writer, vertex row.Row) error {
	return printRawLine(w, PointToDisk(vertex))
}

func printRawLine(w io.Writer, disk []int64) error {
	parts := make([]string, len(disk))
	for i, v := range disk {
		parts[i] = fmt.Sprintf("%d", v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
