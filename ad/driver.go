package ad

import (
	"github.com/doubledesc/dd/coordmap"
	"github.com/doubledesc/dd/equiv"
	"github.com/doubledesc/dd/fme"
	"github.com/doubledesc/dd/rotate"
	"github.com/doubledesc/dd/row"
	"github.com/doubledesc/dd/vertexgroup"
)

// SingleThreadedAD returns every facet of the cone vertices positively
// spans, found by seeding with fme.EliminateHeuristic and then rotating
// across ridges breadth-first until the frontier is exhausted. When
// sampling is true only one seed facet is explored (and its newly found
// neighbors are never themselves enqueued), matching the original's
// "representative sample, not exhaustive enumeration" sampling mode
// (spec §4.H).
func SingleThreadedAD(vertices row.Matrix, tag row.Tag, depth, minVertices int, sampling bool) row.Matrix {
	seeds := fme.EliminateHeuristic(vertices, tag)
	if len(seeds) == 0 {
		return row.Matrix{}
	}

	seen := make(map[string]bool, len(seeds))
	all := make(row.Matrix, 0, len(seeds))
	var queue row.Matrix
	for _, s := range seeds {
		seen[s.Key()] = true
		all = append(all, s)
	}
	if sampling {
		queue = row.Matrix{seeds[0]}
	} else {
		queue = append(row.Matrix{}, seeds...)
	}

	effectiveMin := minVertices
	if effectiveMin < 2 {
		effectiveMin = 2
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		furthest, _ := row.FurthestVertex(vertices, current)

		var ridges row.Matrix
		if depth > 0 && len(vertices) >= effectiveMin {
			ridges = RidgesOfRecursive(vertices, current, tag, depth, minVertices, sampling)
		} else {
			ridges = RidgesOf(vertices, current, tag)
		}

		for _, ridge := range ridges {
			adjacent := rotate.Rotate(vertices, furthest, current, ridge)
			key := adjacent.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, adjacent)
			if !sampling {
				queue = append(queue, adjacent)
			}
		}
	}
	return all
}

// Rotation returns every facet adjacent to input, found by rotating it
// across each of its ridges once (spec §4.H, the single-facet-expansion
// primitive underlying SingleThreadedAD and worklist-driven parallel
// decomposition). When group is non-nil, equivalence reduction is
// skipped — the caller is expected to dedupe by canonical vertex
// support itself (worklist.List.Put does this at insertion time),
// matching the original's "skip equivalence reduction here; canonical
// support dedup happens at put() time" comment.
func Rotation(vertices row.Matrix, input row.Row, maps []coordmap.Map, group *vertexgroup.Group, tag row.Tag) row.Matrix {
	furthest, _ := row.FurthestVertex(vertices, input)
	ridges := RidgesOf(vertices, input, tag)

	seen := make(map[string]bool, len(ridges))
	out := make(row.Matrix, 0, len(ridges))
	for _, ridge := range ridges {
		adjacent := rotate.Rotate(vertices, furthest, input, ridge)
		key := adjacent.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, adjacent)
	}

	if group != nil {
		return out
	}
	return equiv.Classes(out, maps, tag)
}

// RotationRecursive is Rotation, but finds input's ridges via
// RidgesOfRecursive instead of RidgesOf (spec §4.H).
func RotationRecursive(vertices row.Matrix, input row.Row, maps []coordmap.Map, group *vertexgroup.Group, tag row.Tag, depth, minVertices int, sampling bool) row.Matrix {
	furthest, _ := row.FurthestVertex(vertices, input)
	ridges := RidgesOfRecursive(vertices, input, tag, depth, minVertices, sampling)

	seen := make(map[string]bool, len(ridges))
	out := make(row.Matrix, 0, len(ridges))
	for _, ridge := range ridges {
		adjacent := rotate.Rotate(vertices, furthest, input, ridge)
		key := adjacent.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, adjacent)
	}

	if group != nil {
		return out
	}
	return equiv.Classes(out, maps, tag)
}
