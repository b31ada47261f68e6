package rotate_test

import (
	"testing"

	"github.com/doubledesc/dd/fme"
	"github.com/doubledesc/dd/rotate"
	"github.com/doubledesc/dd/row"
	"github.com/stretchr/testify/require"
)

func unitSquareVertices() row.Matrix {
	return row.Matrix{
		row.NewRow(0, 0, 1), // 0
		row.NewRow(1, 0, 1), // 1
		row.NewRow(1, 1, 1), // 2
		row.NewRow(0, 1, 1), // 3
	}
}

// Rotating the bottom edge (y>=0) across each of its ridges must
// discover exactly the two facets adjacent to it: the left edge (x>=0,
// sharing vertex 0) and the right edge (x<=1, sharing vertex 1).
func TestRotateAcrossRidgesFindsAdjacentFacets(t *testing.T) {
	vertices := unitSquareVertices()
	facet := row.NewRow(0, 1, 0) // y >= 0, on vertices 0 and 1

	onFacet := row.VerticesOn(facet, vertices)
	require.Len(t, onFacet, 2)
	ridges := fme.Eliminate(onFacet, row.FacetTag)
	require.NotEmpty(t, ridges)

	furthest, _ := row.FurthestVertex(vertices, facet)

	want := row.Matrix{
		row.NewRow(1, 0, 0),  // x >= 0
		row.NewRow(-1, 0, 1), // x <= 1
	}
	got := make(row.Matrix, 0, len(ridges))
	for _, ridge := range ridges {
		adjacent := rotate.Rotate(vertices, furthest, facet, ridge)
		for _, v := range vertices {
			require.GreaterOrEqual(t, row.Distance(adjacent, v).Sign(), 0,
				"every vertex must satisfy the rotated-to facet")
		}
		got = append(got, adjacent.ReduceGCD())
	}

	for _, w := range want {
		found := false
		for _, g := range got {
			if g.Equal(w) {
				found = true
				break
			}
		}
		require.True(t, found, "expected facet %v among rotation results %v", w, got)
	}
}

// When the ridge passed in is already the correct adjacent facet, Rotate
// must return it unchanged (up to GCD reduction): the loop's do-while
// structure still runs once, but the recentred vertex immediately has
// zero distance to the unchanged row.
func TestRotateIsStableOnACorrectRidge(t *testing.T) {
	vertices := unitSquareVertices()
	facet := row.NewRow(0, 1, 0)   // y >= 0
	correct := row.NewRow(-1, 0, 1) // x <= 1, adjacent at vertex 1

	furthest, _ := row.FurthestVertex(vertices, facet)
	result := rotate.Rotate(vertices, furthest, facet, correct)
	require.True(t, result.ReduceGCD().Equal(correct))
}
