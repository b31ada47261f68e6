package coordmap

import "github.com/doubledesc/dd/row"

// orbitWalker enumerates the orbit of a Row under a set of generator
// Maps by breadth-first search: starting from the seed, repeatedly
// apply every generator to the current frontier, skipping rows already
// seen, until the frontier is exhausted (the orbit is finite because
// the maps form a group acting on a finite set of normalized rows).
type orbitWalker struct {
	maps  []Map
	tag   row.Tag
	seen  map[string]bool
	queue []row.Row
	best  row.Row
}

// ClassRepresentative returns the lexicographically minimum normalized
// row over the orbit {Apply(m, r, tag) : m in <maps>} (spec §4.C).
func ClassRepresentative(r row.Row, maps []Map, tag row.Tag) row.Row {
	seed := r.Normalize()
	w := &orbitWalker{
		maps:  maps,
		tag:   tag,
		seen:  map[string]bool{seed.Key(): true},
		queue: []row.Row{seed},
		best:  seed,
	}
	w.run()
	return w.best
}

func (w *orbitWalker) run() {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		for _, m := range w.maps {
			next := Apply(m, cur, w.tag).Normalize()
			key := next.Key()
			if w.seen[key] {
				continue
			}
			w.seen[key] = true
			w.queue = append(w.queue, next)
			if next.Less(w.best) {
				w.best = next
			}
		}
	}
}
