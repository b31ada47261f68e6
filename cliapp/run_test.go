package cliapp_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/doubledesc/dd/cliapp"
	"github.com/doubledesc/dd/row"
	"github.com/stretchr/testify/require"
)

const unitSquareVerticesPANDA = `VERTICES:
1 0 0
1 1 0
1 1 1
1 0 1
`

const unitSquareFacetsPANDA = `INEQUALITIES:
0 -1 0
0 0 -1
1 1 0
1 0 1
`

func TestRunFacetsMethodDDFindsFourInequalities(t *testing.T) {
	var out bytes.Buffer
	opts := cliapp.DefaultOptions()
	opts.Method = "dd"

	err := cliapp.Run(context.Background(), opts, strings.NewReader(unitSquareVerticesPANDA), row.VertexTag, &out)
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "Inequalities:")
	require.Equal(t, 4, strings.Count(text, "<="))
}

func TestRunVerticesMethodDDFindsFourVertices(t *testing.T) {
	var out bytes.Buffer
	opts := cliapp.DefaultOptions()
	opts.Method = "dd"

	err := cliapp.Run(context.Background(), opts, strings.NewReader(unitSquareFacetsPANDA), row.FacetTag, &out)
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "Vertices:")
	require.Equal(t, 4, strings.Count(text, "\n")-1, "one line per vertex after the header")
}

func TestRunMethodADStreamsFacetsAsTheyAreFound(t *testing.T) {
	var out bytes.Buffer
	opts := cliapp.DefaultOptions()
	opts.Method = "ad"
	opts.Threads = 2

	err := cliapp.Run(context.Background(), opts, strings.NewReader(unitSquareVerticesPANDA), row.VertexTag, &out)
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(out.String(), "<="))
}

func TestRunRejectsUnknownMethod(t *testing.T) {
	var out bytes.Buffer
	opts := cliapp.DefaultOptions()
	opts.Method = "bogus"

	err := cliapp.Run(context.Background(), opts, strings.NewReader(unitSquareVerticesPANDA), row.VertexTag, &out)
	require.Error(t, err)
}

func TestRunRejectsMalformedInput(t *testing.T) {
	var out bytes.Buffer
	opts := cliapp.DefaultOptions()

	err := cliapp.Run(context.Background(), opts, strings.NewReader("NONSENSE:\n1 2\n"), row.VertexTag, &out)
	require.Error(t, err)
}
