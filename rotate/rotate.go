// Package rotate implements the rotation step of Adjacency
// Decomposition: given a facet F and one of its ridges R, it finds the
// unique other facet of the polytope containing R (spec §4.F).
package rotate

import (
	"math/big"

	"github.com/doubledesc/dd/row"
)

// Rotate returns the facet adjacent to facet across ridge, given the
// full vertex set and the vertex maximizing Distance(facet, ·) (the one
// row.FurthestVertex picks)
// (identical across every ridge of facet, so callers compute it once
// per facet rather than once per ridge — see ad.RidgesOf's caller).
//
// Translated near-literally from the reference rotation loop: reduce
// the running pair of distances by their GCD, combine the ridge and
// facet rows to zero out the vertex's distance to the facet, reduce the
// combined row by its own GCD, and recenter on the new row's nearest
// vertex, until that vertex lies exactly on the running row.
func Rotate(vertices row.Matrix, vertex row.Row, facet row.Row, ridge row.Row) row.Row {
	current := ridge
	dF := row.Distance(facet, vertex)
	dR := row.Distance(current, vertex)
	for {
		if g := row.GCD(dF, dR); g.Sign() > 0 && g.Cmp(big.NewInt(1)) != 0 {
			dF = new(big.Int).Div(dF, g)
			dR = new(big.Int).Div(dR, g)
		}
		current = combine(dF, current, dR, facet)
		if current.GCD().Sign() == 0 {
			panic("rotate: combined row is identically zero")
		}
		current = current.ReduceGCD()

		vertex, _ = row.NearestVertex(vertices, current)
		dF = row.Distance(facet, vertex)
		dR = row.Distance(current, vertex)
		if dR.Sign() == 0 {
			return current
		}
	}
}

// combine returns a*r1 - b*r2.
func combine(a *big.Int, r1 row.Row, b *big.Int, r2 row.Row) row.Row {
	out := make(row.Row, len(r1))
	term := new(big.Int)
	for i := range out {
		out[i] = new(big.Int).Mul(a, r1[i])
		term.Mul(b, r2[i])
		out[i].Sub(out[i], term)
	}
	return out
}
