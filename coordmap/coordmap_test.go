package coordmap_test

import (
	"math/big"
	"testing"

	"github.com/doubledesc/dd/coordmap"
	"github.com/doubledesc/dd/row"
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

func TestApplyVertexTagIsDirect(t *testing.T) {
	m := swapXY()
	got := coordmap.Apply(m, row.NewRow(2, 5, 1), row.VertexTag)
	require.True(t, got.Equal(row.NewRow(5, 2, 1)))
}

func TestApplyFacetTagTransposesInverse(t *testing.T) {
	m := swapXY()
	got := coordmap.Apply(m, row.NewRow(1, 0, 0), row.FacetTag)
	require.True(t, got.Equal(row.NewRow(0, 1, 0)))
}

func TestArePurePermutations(t *testing.T) {
	require.True(t, coordmap.ArePurePermutations([]coordmap.Map{swapXY()}))

	scaling := coordmap.Map{Images: []coordmap.Image{
		{{Index: 0, Factor: big.NewInt(2)}},
	}}
	require.False(t, coordmap.ArePurePermutations([]coordmap.Map{scaling}))
}

func TestClassRepresentativePicksOrbitMinimum(t *testing.T) {
	m := swapXY()
	got := coordmap.ClassRepresentative(row.NewRow(1, 0, 0), []coordmap.Map{m}, row.VertexTag)
	require.True(t, got.Equal(row.NewRow(0, 1, 0)))
}

func TestClassRepresentativeWithNoGeneratorsIsIdentity(t *testing.T) {
	got := coordmap.ClassRepresentative(row.NewRow(3, 0, 6), nil, row.VertexTag)
	require.True(t, got.Equal(row.NewRow(1, 0, 2)), "with no generators the orbit is the row itself, GCD-reduced")
}
