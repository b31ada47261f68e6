package ad_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/doubledesc/dd/ad"
	"github.com/doubledesc/dd/row"
	"github.com/stretchr/testify/require"
)

func TestParallelDecomposeFindsAllFacetsOfUnitSquare(t *testing.T) {
	vertices := unitSquareVertices()
	ctx := context.Background()

	got, err := ad.ParallelDecompose(ctx, vertices, nil, nil, row.FacetTag, nil, io.Discard, ad.ParallelConfig{Workers: 3})
	require.NoError(t, err)

	want := unitSquareFacets()
	require.Len(t, got, len(want))
	for _, w := range want {
		found := false
		for _, g := range got {
			if g.ReduceGCD().Equal(w) {
				found = true
				break
			}
		}
		require.True(t, found, "expected facet %v among %v", w, got)
	}
}

func TestParallelDecomposeHonorsCancellation(t *testing.T) {
	vertices := unitSquareVertices()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ad.ParallelDecompose(ctx, vertices, nil, nil, row.FacetTag, nil, io.Discard, ad.ParallelConfig{Workers: 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParallelDecomposeSingleWorkerMatchesSingleThreaded(t *testing.T) {
	vertices := unitSquareVertices()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := ad.ParallelDecompose(ctx, vertices, nil, nil, row.FacetTag, nil, io.Discard, ad.ParallelConfig{Workers: 1})
	require.NoError(t, err)

	want := ad.SingleThreadedAD(vertices, row.FacetTag, 0, 2, false)
	require.ElementsMatch(t, keys(got), keys(want))
}
