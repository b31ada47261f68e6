package vertexgroup_test

import (
	"testing"

	"github.com/doubledesc/dd/vertexgroup"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidGenerators(t *testing.T) {
	_, err := vertexgroup.New(nil, 4)
	require.ErrorIs(t, err, vertexgroup.ErrNoGenerators)

	_, err = vertexgroup.New([][]int{{0, 1, 2}}, 0)
	require.ErrorIs(t, err, vertexgroup.ErrInvalidVertexCount)

	_, err = vertexgroup.New([][]int{{0, 1}}, 3)
	require.ErrorIs(t, err, vertexgroup.ErrGeneratorLength)

	_, err = vertexgroup.New([][]int{{0, 0, 2}}, 3)
	require.ErrorIs(t, err, vertexgroup.ErrNotAPermutation)
}

func TestSizeReportsVertexCount(t *testing.T) {
	g, err := vertexgroup.New([][]int{{1, 0, 2, 3}}, 4)
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())
}

// The 4-cycle (0 1 2 3) generates the cyclic rotation group of a
// square's vertices; {0} and {1} lie in the same orbit and so must
// share a canonical form.
func TestCanonicalUnderCyclicRotation(t *testing.T) {
	g, err := vertexgroup.New([][]int{{1, 2, 3, 0}}, 4)
	require.NoError(t, err)

	c0 := g.Canonical([]int{0})
	c1 := g.Canonical([]int{1})
	c2 := g.Canonical([]int{2})
	require.Equal(t, c0, c1)
	require.Equal(t, c0, c2)
	require.Equal(t, []int{0}, c0, "the minimum singleton orbit member is {0}")
}

func TestCanonicalDistinguishesDifferentOrbits(t *testing.T) {
	g, err := vertexgroup.New([][]int{{1, 2, 3, 0}}, 4)
	require.NoError(t, err)

	single := g.Canonical([]int{0})
	pair := g.Canonical([]int{0, 1})
	require.NotEqual(t, single, pair)
	require.Equal(t, []int{0, 1}, pair, "every adjacent pair is in the same orbit under rotation; {0,1} is its minimum")
}

func TestCanonicalWithIdentityOnlyIsNoOp(t *testing.T) {
	g, err := vertexgroup.New([][]int{{0, 1, 2}}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, g.Canonical([]int{2, 0}))
}
