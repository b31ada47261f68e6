package row

import "math/big"

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// GCD returns the non-negative greatest common divisor of a and b, using
// the standard Euclidean algorithm. GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	return g
}

// GCD returns the non-negative GCD of the absolute values of r's
// entries. It is 0 only for the all-zero row.
func (r Row) GCD() *big.Int {
	g := new(big.Int)
	for _, v := range r {
		g.GCD(nil, nil, g, new(big.Int).Abs(v))
		if g.Sign() == 0 {
			g.Abs(v)
		}
	}
	return g
}

// IsZero reports whether every entry of r is zero.
func (r Row) IsZero() bool {
	for _, v := range r {
		if v.Sign() != 0 {
			return false
		}
	}
	return true
}

// ReduceGCD returns r divided by its GCD, leaving its sign untouched.
// This is what the rotation and elimination loops use for every
// intermediate row: dividing by a common factor never changes which
// points satisfy an inequality or which direction a ray points, so it
// is always safe mid-computation.
func (r Row) ReduceGCD() Row {
	if len(r) == 0 {
		return r
	}
	g := r.GCD()
	if g.Sign() == 0 || g.Cmp(bigOne) == 0 {
		return r.Clone()
	}
	out := r.Clone()
	for i := range out {
		out[i].Div(out[i], g)
	}
	return out
}

// Normalize returns r divided by its GCD. It is an alias for ReduceGCD:
// an earlier revision of this package also flipped the row's leading
// sign to a canonical positive, mirroring spec.md's "leading sign
// canonical" dedup invariant literally, but that would silently invert
// an inequality's meaning (a.x<=b becomes a.x>=b) or reverse a ray's
// direction whenever the leading coefficient happened to be negative —
// and original_source/src/list.cpp inserts rows into its dedup set
// exactly as rotate/FME produced them, with no sign-canonicalization
// step at all. Picking a canonical representative among genuinely
// equivalent rows is coordmap.ClassRepresentative's job (selecting a
// minimum over an orbit of rows related by an actual symmetry, never
// inverting a single row's sign unilaterally); Normalize here only
// clears the common integer factor.
func (r Row) Normalize() Row {
	return r.ReduceGCD()
}

// Distance computes the plain dot product of ineq and point under the
// layout documented on the row package: a point satisfies ineq when the
// result is >= 0 and lies on it when the result is 0 (spec §3, §8
// Invariant 2).
func Distance(ineq, point Row) *big.Int {
	n := len(ineq)
	acc := new(big.Int)
	term := new(big.Int)
	for i := 0; i < n; i++ {
		term.Mul(ineq[i], point[i])
		acc.Add(acc, term)
	}
	return acc
}

// FurthestVertex returns the vertex in vertices maximizing Distance(ineq, v)
// — i.e. the vertex lying deepest inside ineq's satisfied half-space,
// as far as possible from the hyperplane it bounds — along with its
// index. Ties are broken by lowest index. rotate.Rotate calls this once
// per facet, outside the per-ridge loop, to seed the walk with a vertex
// guaranteed off the facet whenever the polytope is not degenerate.
func FurthestVertex(vertices Matrix, ineq Row) (Row, int) {
	if len(vertices) == 0 {
		panic("row: FurthestVertex called with no vertices")
	}
	bestIdx := 0
	bestDist := Distance(ineq, vertices[0])
	for i := 1; i < len(vertices); i++ {
		d := Distance(ineq, vertices[i])
		if d.Cmp(bestDist) > 0 {
			bestDist = d
			bestIdx = i
		}
	}
	return vertices[bestIdx], bestIdx
}

// NearestVertex returns the vertex in vertices minimizing |Distance(ineq, v)|,
// along with its index. Among ties, a vertex that strictly satisfies
// ineq (distance > 0, under the sign convention used by Rotate — see
// rotate.Rotate) is preferred over one that violates it; remaining ties
// break by lowest index.
func NearestVertex(vertices Matrix, ineq Row) (Row, int) {
	if len(vertices) == 0 {
		panic("row: NearestVertex called with no vertices")
	}
	bestIdx := -1
	var bestAbs *big.Int
	bestPositive := false
	for i, v := range vertices {
		d := Distance(ineq, v)
		abs := new(big.Int).Abs(d)
		positive := d.Sign() > 0
		if bestIdx == -1 {
			bestIdx, bestAbs, bestPositive = i, abs, positive
			continue
		}
		c := abs.Cmp(bestAbs)
		switch {
		case c < 0:
			bestIdx, bestAbs, bestPositive = i, abs, positive
		case c == 0 && positive && !bestPositive:
			bestIdx, bestAbs, bestPositive = i, abs, positive
		}
	}
	return vertices[bestIdx], bestIdx
}

// VertexSupport returns the sorted indices of vertices lying on facet
// (Distance(facet, v) == 0). For a true facet this set has cardinality
// at least len(facet)-1 and affinely spans the facet (spec §3).
func VertexSupport(facet Row, vertices Matrix) []int {
	support := make([]int, 0, len(vertices))
	for i, v := range vertices {
		if Distance(facet, v).Sign() == 0 {
			support = append(support, i)
		}
	}
	return support
}

// VerticesOn returns the sub-matrix of vertices lying on facet, in
// input order, preserving the original indices is not needed by callers
// that only need the sub-polytope's rows (FME, recursive AD).
func VerticesOn(facet Row, vertices Matrix) Matrix {
	out := make(Matrix, 0, len(vertices))
	for _, v := range vertices {
		if Distance(facet, v).Sign() == 0 {
			out = append(out, v)
		}
	}
	return out
}
