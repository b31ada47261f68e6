// Package fme implements Fourier-Motzkin elimination over the shared
// Row/Matrix types, used both to turn a set of generator rows into the
// facet-defining inequalities of the cone they positively span, and
// dually to turn a set of inequalities into the generators of the cone
// they cut out.
//
// The two directions share one algorithm: lift the problem into a
// tableau with one extra column per input row ("lambda" columns
// standing for the non-negative combination coefficients), eliminate
// the lambda columns one at a time the way the classical double
// description method processes one inequality at a time, and read the
// surviving rows' leading columns as the answer. Because row.Row makes
// no distinction in representation between a point and an inequality,
// the elimination code itself never inspects the tag it is called
// with — it only uses it to label what the caller should understand the
// result as.
package fme

import (
	"math/big"

	"github.com/doubledesc/dd/row"
)

// Eliminate computes, from rows interpreted under tag, the normalized
// rows of the dual kind: the facet-defining inequalities of the cone the
// input points/rays positively span, or dually the extreme
// rays/vertices of the cone the input inequalities cut out. Returns
// rows in no particular order (spec §4.B).
func Eliminate(rows row.Matrix, tag row.Tag) row.Matrix {
	_ = tag // the elimination itself is symmetric; tag only labels the result for the caller
	if len(rows) == 0 {
		return row.Matrix{}
	}
	n := rows[0].Len()
	m := len(rows)

	tab := buildTableau(rows, n, m)
	for i := 0; i < m; i++ {
		tab = eliminateColumn(tab, n+i)
		tab = prune(tab)
	}

	out := make(row.Matrix, 0, len(tab))
	for _, r := range tab {
		out = append(out, r[:n].Clone().Normalize())
	}
	return dedupe(out)
}

// EliminateHeuristic returns an under-approximating seed: those facets
// of the cone spanned by a small deterministic prefix of rows that every
// row satisfies, cheap enough to compute unconditionally and sufficient
// to seed the Adjacency Decomposition driver, which discovers the
// remaining facets by rotation (spec §4.B, §4.H).
func EliminateHeuristic(rows row.Matrix, tag row.Tag) row.Matrix {
	if len(rows) == 0 {
		return row.Matrix{}
	}
	limit := rows[0].Len() + 1
	if limit > len(rows) {
		limit = len(rows)
	}
	seeds := row.Matrix{}
	for _, c := range Eliminate(rows[:limit], tag) {
		valid := true
		for _, r := range rows {
			valid = valid && row.Distance(c, r).Sign() >= 0
		}
		if valid {
			seeds = append(seeds, c)
		}
	}
	return seeds
}

// buildTableau lays out, for each of the n coordinates, the pair of
// inequalities x_j - sum(lambda_i * rows[i][j]) >= 0 and its negation
// (so that eliminating all lambda columns leaves exactly the
// inequalities the x-columns must satisfy), followed by one row per
// input enforcing lambda_i >= 0.
func buildTableau(rows row.Matrix, n, m int) row.Matrix {
	tab := make(row.Matrix, 0, 2*n+m)
	for j := 0; j < n; j++ {
		pos := zeroRow(n + m)
		neg := zeroRow(n + m)
		pos[j] = big.NewInt(1)
		neg[j] = big.NewInt(-1)
		for i, r := range rows {
			pos[n+i] = new(big.Int).Neg(r[j])
			neg[n+i] = new(big.Int).Set(r[j])
		}
		tab = append(tab, pos, neg)
	}
	for i := 0; i < m; i++ {
		r := zeroRow(n + m)
		r[n+i] = big.NewInt(1)
		tab = append(tab, r)
	}
	return tab
}

func zeroRow(n int) row.Row {
	r := make(row.Row, n)
	for i := range r {
		r[i] = big.NewInt(0)
	}
	return r
}

// eliminateColumn removes column col by keeping every row that is
// already zero there and replacing the positive/negative rows at col
// with every combination that cancels it.
func eliminateColumn(rows row.Matrix, col int) row.Matrix {
	var zero, pos, neg row.Matrix
	for _, r := range rows {
		switch r[col].Sign() {
		case 0:
			zero = append(zero, r)
		case 1:
			pos = append(pos, r)
		default:
			neg = append(neg, r)
		}
	}
	out := make(row.Matrix, 0, len(zero)+len(pos)*len(neg))
	out = append(out, zero...)
	for _, p := range pos {
		for _, n := range neg {
			out = append(out, combine(p, n, col))
		}
	}
	return out
}

// combine returns the non-negative combination of p and n that zeroes
// their shared column col: |n[col]|*p + p[col]*n.
func combine(p, n row.Row, col int) row.Row {
	negMag := new(big.Int).Neg(n[col])
	out := make(row.Row, len(p))
	term := new(big.Int)
	for i := range out {
		out[i] = new(big.Int).Mul(negMag, p[i])
		term.Mul(p[col], n[i])
		out[i].Add(out[i], term)
	}
	return out.ReduceGCD()
}

// prune drops rows dominated by another: r dominates s when
// support(r) is a subset of support(s) with matching signs on the
// overlap, meaning r is at least as restrictive as s (spec §4.B).
func prune(rows row.Matrix) row.Matrix {
	keep := make([]bool, len(rows))
	for i := range keep {
		keep[i] = true
	}
	for i, ri := range rows {
		if !keep[i] || ri.IsZero() {
			continue
		}
		for j, rj := range rows {
			if i == j || !keep[j] {
				continue
			}
			if dominates(ri, rj) {
				keep[j] = false
			}
		}
	}
	out := make(row.Matrix, 0, len(rows))
	for i, r := range rows {
		if keep[i] {
			out = append(out, r)
		}
	}
	return out
}

func dominates(r, s row.Row) bool {
	if r.Equal(s) {
		return false
	}
	for i, v := range r {
		if v.Sign() == 0 {
			continue
		}
		if s[i].Sign() != v.Sign() {
			return false
		}
	}
	return true
}

// dedupe drops zero rows and rows equal (after normalization) to an
// earlier row, preserving first-seen order.
func dedupe(rows row.Matrix) row.Matrix {
	seen := make(map[string]bool, len(rows))
	out := make(row.Matrix, 0, len(rows))
	for _, r := range rows {
		if r.IsZero() {
			continue
		}
		k := r.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
