package format_test

import (
	"testing"

	"github.com/doubledesc/dd/format"
	"github.com/stretchr/testify/require"
)

func TestParseMapsBuildsTermsFromIndexFactorPairs(t *testing.T) {
	lines := []string{"1:1 2:0 | 2:1 1:0 | 0:0"}
	maps, err := format.ParseMaps(lines, 3)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	require.Len(t, maps[0].Images, 3)
	require.Equal(t, 1, maps[0].Images[0][0].Index)
	require.Equal(t, int64(1), maps[0].Images[0][0].Factor.Int64())
}

func TestParseMapsRejectsWrongImageCount(t *testing.T) {
	lines := []string{"1:1 | 2:1"}
	_, err := format.ParseMaps(lines, 3)
	require.ErrorIs(t, err, format.ErrInvalidMap)
}

func TestParseMapsRejectsMalformedTerm(t *testing.T) {
	lines := []string{"garbled | 2:1"}
	_, err := format.ParseMaps(lines, 2)
	require.ErrorIs(t, err, format.ErrInvalidMap)
}
