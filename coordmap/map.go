// Package coordmap implements coordinate maps: linear-with-translation
// transforms of a Row, applied under either a point or an inequality
// interpretation, plus orbit enumeration under a set of such maps.
package coordmap

import "math/big"

// Term is one (input-coordinate-index, integer factor) pair contributing
// to an output coordinate of a Map.
type Term struct {
	Index  int
	Factor *big.Int
}

// Image is the set of Terms defining one output coordinate: its value is
// the sum of factor*input[index] over its Terms.
type Image []Term

// Map is a linear-with-translation transform of a Row, one Image per
// output coordinate. A Map is square: len(Images) must equal the length
// of any Row it is applied to.
type Map struct {
	Images []Image
}

// ArePurePermutations reports whether every Image of every Map has
// exactly one Term with factor +-1 — the condition under which a
// coordinate map induces a genuine permutation of vertex indices rather
// than a general linear combination (spec §4.C, §4.D).
func ArePurePermutations(maps []Map) bool {
	one := big.NewInt(1)
	for _, m := range maps {
		for _, img := range m.Images {
			if len(img) != 1 {
				return false
			}
			if new(big.Int).Abs(img[0].Factor).Cmp(one) != 0 {
				return false
			}
		}
	}
	return true
}
