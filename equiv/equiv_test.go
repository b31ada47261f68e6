package equiv_test

import (
	"math/big"
	"testing"

	"github.com/doubledesc/dd/coordmap"
	"github.com/doubledesc/dd/equiv"
	"github.com/doubledesc/dd/row"
	"github.com/doubledesc/dd/vertexgroup"
	"github.com/stretchr/testify/require"
)

func swapXY() coordmap.Map {
	one := big.NewInt(1)
	return coordmap.Map{Images: []coordmap.Image{
		{{Index: 1, Factor: one}},
		{{Index: 0, Factor: one}},
		{{Index: 2, Factor: one}},
	}}
}

func TestClassesDedupesOrbitRepresentatives(t *testing.T) {
	maps := []coordmap.Map{swapXY()}
	rows := row.Matrix{
		row.NewRow(1, 0, 0), // x >= 0
		row.NewRow(0, 1, 0), // y >= 0: same orbit as the row above
		row.NewRow(0, 0, 1), // h >= 0: a separate orbit (fixed by the swap)
	}
	classes := equiv.Classes(rows, maps, row.VertexTag)
	require.Len(t, classes, 2)
}

func TestClassesVertexSupportPicksOneRepresentativePerOrbit(t *testing.T) {
	// Unit square vertices (x, y, h).
	vertices := row.Matrix{
		row.NewRow(0, 0, 1),
		row.NewRow(1, 0, 1),
		row.NewRow(1, 1, 1),
		row.NewRow(0, 1, 1),
	}
	// x >= 0 has support {vertex0, vertex3} (x=0); y >= 0 has support
	// {vertex0, vertex1} (y=0). Swapping x<->y also swaps vertex1<->3.
	xGeq0 := row.NewRow(1, 0, 0)
	yGeq0 := row.NewRow(0, 1, 0)
	maps := []coordmap.Map{swapXY()}

	group, err := vertexgroup.New([][]int{{0, 3, 2, 1}}, 4) // the vertex permutation the swap induces
	require.NoError(t, err)

	reduced := equiv.ClassesVertexSupport(row.Matrix{xGeq0, yGeq0}, vertices, maps, group, row.FacetTag)
	require.Len(t, reduced, 1, "x>=0 and y>=0 have canonically-equal vertex support under the swap")
}

// TestClassesVertexSupportReducesSquareEdgesUnderCyclicGenerator is
// spec.md §8's "Orbit reduction" scenario literally: the four corners
// of the unit square under the cyclic vertex-permutation generator
// [1,2,3,0] (vertex i maps to vertex i+1 mod 4) collapse the square's
// four edge inequalities into a single orbit representative.
func TestClassesVertexSupportReducesSquareEdgesUnderCyclicGenerator(t *testing.T) {
	vertices := row.Matrix{
		row.NewRow(0, 0, 1), // 0: (0,0)
		row.NewRow(1, 0, 1), // 1: (1,0)
		row.NewRow(1, 1, 1), // 2: (1,1)
		row.NewRow(0, 1, 1), // 3: (0,1)
	}
	edges := row.Matrix{
		row.NewRow(1, 0, 0),  // x >= 0, support {0,3}
		row.NewRow(0, 1, 0),  // y >= 0, support {0,1}
		row.NewRow(-1, 0, 1), // x <= 1, support {1,2}
		row.NewRow(0, -1, 1), // y <= 1, support {2,3}
	}

	group, err := vertexgroup.New([][]int{{1, 2, 3, 0}}, 4)
	require.NoError(t, err)

	reduced := equiv.ClassesVertexSupport(edges, vertices, nil, group, row.FacetTag)
	require.Len(t, reduced, 1, "the cyclic generator puts all four edges in one orbit")
}
