// Package equiv reduces a set of rows to one representative per
// equivalence class, either by coordinate-map orbit (Classes) or by
// canonical vertex-support under a permutation group
// (ClassesVertexSupport) — spec §4.E.
package equiv

import (
	"strconv"
	"strings"

	"github.com/doubledesc/dd/coordmap"
	"github.com/doubledesc/dd/row"
	"github.com/doubledesc/dd/vertexgroup"
)

// Classes reduces rows to the distinct set of their map-orbit
// representatives, preserving the order in which each representative
// was first produced.
func Classes(rows row.Matrix, maps []coordmap.Map, tag row.Tag) row.Matrix {
	seen := make(map[string]bool, len(rows))
	out := make(row.Matrix, 0, len(rows))
	for _, r := range rows {
		rep := coordmap.ClassRepresentative(r, maps, tag)
		key := rep.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rep)
	}
	return out
}

// ClassesVertexSupport reduces rows to one representative per canonical
// vertex-support under group: for each row, compute its vertex support
// and the group's canonical image of that support; the first row whose
// support maps to a given canonical wins. The survivors are then passed
// through Classes's single-row form (coordmap.ClassRepresentative) as a
// secondary canonicalization, so the result does not depend on which
// orbit member happened to be seen first (spec §4.E).
func ClassesVertexSupport(rows row.Matrix, vertices row.Matrix, maps []coordmap.Map, group *vertexgroup.Group, tag row.Tag) row.Matrix {
	firstSeen := make(map[string]row.Row, len(rows))
	order := make([]string, 0, len(rows))
	for _, r := range rows {
		support := row.VertexSupport(r, vertices)
		canonical := group.Canonical(support)
		key := subsetKey(canonical)
		if _, ok := firstSeen[key]; ok {
			continue
		}
		firstSeen[key] = r
		order = append(order, key)
	}

	out := make(row.Matrix, 0, len(order))
	for _, key := range order {
		out = append(out, coordmap.ClassRepresentative(firstSeen[key], maps, tag))
	}
	return out
}

func subsetKey(s []int) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
