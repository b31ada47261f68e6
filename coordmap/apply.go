package coordmap

import (
	"math/big"

	"github.com/doubledesc/dd/row"
)

// Apply evaluates m against r and returns the transformed Row. Under
// row.VertexTag each output coordinate is the direct linear combination
// its Image describes. Under row.FacetTag the map is applied with the
// transpose-and-invert semantics that keep the pairing between an
// inequality and the points it is satisfied by invariant: if m maps
// vertex v to vertex m.v, Apply(m, f, row.FacetTag) maps the inequality
// satisfied by v to the inequality satisfied by m.v (spec §4.C).
func Apply(m Map, r row.Row, tag row.Tag) row.Row {
	n := len(m.Images)
	if tag == row.VertexTag {
		out := make(row.Row, n)
		for j, img := range m.Images {
			acc := new(big.Int)
			for _, t := range img {
				acc.Add(acc, new(big.Int).Mul(t.Factor, r[t.Index]))
			}
			out[j] = acc
		}
		return out
	}

	inv := invert(denseRat(m, n))
	out := make(row.Row, n)
	for k := 0; k < n; k++ {
		acc := new(big.Rat)
		for j := 0; j < n; j++ {
			acc.Add(acc, new(big.Rat).Mul(new(big.Rat).SetInt(r[j]), inv[j][k]))
		}
		out[k] = ratToInt(acc)
	}
	return out
}

// denseRat materializes m's n x n matrix, M[j][i] = the factor of term
// (index=i) in Images[j], 0 where absent.
func denseRat(m Map, n int) [][]*big.Rat {
	mat := make([][]*big.Rat, n)
	for j := range mat {
		mat[j] = make([]*big.Rat, n)
		for i := range mat[j] {
			mat[j][i] = new(big.Rat)
		}
	}
	for j, img := range m.Images {
		for _, t := range img {
			mat[j][t.Index] = new(big.Rat).SetInt(t.Factor)
		}
	}
	return mat
}

// invert computes the exact inverse of a square rational matrix by
// Gauss-Jordan elimination on [mat | I]. Maps are assumed to be
// invertible symmetries of the polytope (spec §3: "the set of maps ...
// forms a group by assumption of the input"); a singular map is a
// malformed input, not a condition this repository recovers from.
func invert(mat [][]*big.Rat) [][]*big.Rat {
	n := len(mat)
	aug := make([][]*big.Rat, n)
	for i := range aug {
		aug[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = new(big.Rat).Set(mat[i][j])
		}
		for j := 0; j < n; j++ {
			if i == j {
				aug[i][n+j] = big.NewRat(1, 1)
			} else {
				aug[i][n+j] = big.NewRat(0, 1)
			}
		}
	}

	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < n; r++ {
			if aug[r][col].Sign() != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			panic("coordmap: map is not invertible")
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		pivotInv := new(big.Rat).Inv(aug[col][col])
		for j := 0; j < 2*n; j++ {
			aug[col][j].Mul(aug[col][j], pivotInv)
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := new(big.Rat).Set(aug[r][col])
			if factor.Sign() == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[r][j].Sub(aug[r][j], new(big.Rat).Mul(factor, aug[col][j]))
			}
		}
	}

	out := make([][]*big.Rat, n)
	for i := range out {
		out[i] = aug[i][n:]
	}
	return out
}

func ratToInt(r *big.Rat) *big.Int {
	if !r.IsInt() {
		panic("coordmap: facet-tag application produced a non-integer coefficient; the map is not a lattice symmetry")
	}
	return new(big.Int).Set(r.Num())
}
