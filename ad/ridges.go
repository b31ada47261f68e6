// Package ad implements Adjacency Decomposition: discovering every
// facet (or, dually, every vertex) adjacent to a starting one by
// rotating across its ridges, breadth-first, until no new facet is
// found. It is the driver that ties together fme, rotate, coordmap, and
// vertexgroup into the algorithm spec §4.G/§4.H describe.
package ad

import (
	"github.com/doubledesc/dd/fme"
	"github.com/doubledesc/dd/row"
)

// RidgesOf returns every ridge of facet: the facet-defining rows of the
// sub-polytope spanned by the vertices lying exactly on facet. tag is
// passed through to fme.Eliminate unchanged (the ridges of a facet are
// of the same kind — vertex or inequality — as facet itself, dual to
// the ambient vertices).
func RidgesOf(vertices row.Matrix, facet row.Row, tag row.Tag) row.Matrix {
	onFacet := row.VerticesOn(facet, vertices)
	if len(onFacet) == 0 {
		panic("ad: RidgesOf called on a facet touching no vertex")
	}
	return fme.Eliminate(onFacet, tag)
}

// RidgesOfRecursive returns the ridges of facet the same way RidgesOf
// does, except that when depth > 0 and the facet carries at least
// effectiveMinVertices (minVertices, floored at 2) vertices, it finds
// them by running SingleThreadedAD on the sub-polytope one level deeper
// rather than by a direct FME call — trading a more expensive
// elimination for a cheaper rotation-based one on large facets (spec
// §4.G, §4.H's recursion_depth/min_vertices parameters).
func RidgesOfRecursive(vertices row.Matrix, facet row.Row, tag row.Tag, depth, minVertices int, sampling bool) row.Matrix {
	onFacet := row.VerticesOn(facet, vertices)
	if len(onFacet) == 0 {
		panic("ad: RidgesOfRecursive called on a facet touching no vertex")
	}
	effectiveMin := minVertices
	if effectiveMin < 2 {
		effectiveMin = 2
	}
	if depth > 0 && len(onFacet) >= effectiveMin {
		return SingleThreadedAD(onFacet, tag, depth-1, minVertices, sampling)
	}
	return fme.Eliminate(onFacet, tag)
}
