package cliapp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/doubledesc/dd/ad"
	"github.com/doubledesc/dd/equiv"
	"github.com/doubledesc/dd/fme"
	"github.com/doubledesc/dd/format"
	"github.com/doubledesc/dd/row"
	"github.com/doubledesc/dd/vertexgroup"
)

// Run executes the double-description pipeline: it parses input (a
// PANDA or PORTA file, auto-detected), interprets its rows under
// inputTag, computes the dual description with opts.Method, and writes
// the result to out. inputTag is row.VertexTag for the facets
// subcommand (vertices/rays in, facets out) and row.FacetTag for the
// vertices subcommand (facets in, vertices/rays out).
func Run(ctx context.Context, opts Options, input io.Reader, inputTag row.Tag, out io.Writer) error {
	desc, err := parseInput(input)
	if err != nil {
		return fmt.Errorf("cliapp: parsing input: %w", err)
	}

	var rows row.Matrix
	switch inputTag {
	case row.VertexTag:
		rows = format.PointsFromDisk(desc.Vertices)
	case row.FacetTag:
		rows = format.IneqsFromDisk(desc.Inequalities)
	}
	if len(rows) == 0 {
		return fmt.Errorf("cliapp: input declares no rows for %s", inputTag)
	}

	maps, err := format.ParseMaps(desc.MapsText, rows[0].Len())
	if err != nil {
		return fmt.Errorf("cliapp: parsing MAPS section: %w", err)
	}

	var group *vertexgroup.Group
	if len(desc.Permutations) > 0 {
		group, err = vertexgroup.New(desc.Permutations, len(rows))
		if err != nil {
			return fmt.Errorf("cliapp: building vertex group: %w", err)
		}
	}

	outputTag := inputTag.Dual()

	var result row.Matrix
	switch opts.Method {
	case "dd":
		result = fme.Eliminate(rows, inputTag)
		if group != nil {
			result = equiv.ClassesVertexSupport(result, rows, maps, group, outputTag)
		} else {
			result = equiv.Classes(result, maps, outputTag)
		}
		if err := writeResult(out, result, outputTag, desc.Names); err != nil {
			return err
		}
	case "ad":
		cfg := ad.ParallelConfig{
			Workers:     opts.Threads,
			Depth:       opts.RecursionDepth,
			MinVertices: opts.RecursionMinVertices,
			Sampling:    opts.Sampling,
		}
		// ParallelDecompose streams accepted rows to out itself (spec
		// §5's results-before-completion guarantee), so there is
		// nothing left to print here.
		result, err = ad.ParallelDecompose(ctx, rows, maps, group, outputTag, desc.Names, out, cfg)
		if err != nil {
			return fmt.Errorf("cliapp: decomposition: %w", err)
		}
	default:
		return fmt.Errorf("cliapp: unknown method %q (want \"ad\" or \"dd\")", opts.Method)
	}

	return nil
}

func parseInput(r io.Reader) (*format.Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if isPORTA(data) {
		return format.ParsePORTA(bytes.NewReader(data))
	}
	return format.ParsePANDA(bytes.NewReader(data))
}

// isPORTA reports whether data's first non-blank line looks like a
// PORTA DIM header, the only token the two dialects disagree on at the
// very start of a file.
func isPORTA(data []byte) bool {
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(strings.ToUpper(trimmed), "DIM")
	}
	return false
}

func writeResult(out io.Writer, rows row.Matrix, tag row.Tag, names format.Names) error {
	if tag == row.FacetTag {
		return format.PrettyPrint(out, rows, names)
	}
	hasRays := false
	for _, r := range rows {
		if r[r.Len()-1].Sign() == 0 {
			hasRays = true
			break
		}
	}
	return format.PrintVertices(out, rows, hasRays)
}
