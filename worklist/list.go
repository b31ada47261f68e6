// Package worklist implements the concurrent deduplicating queue that
// coordinates the goroutines of ad.ParallelDecompose: every worker pulls
// a row to expand with Get, pushes the rows it discovers with Put or
// PutMatrix, and the queue itself decides when every worker has run out
// of work. Grounded line-for-line on original_source/src/list.h/.cpp.
package worklist

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/doubledesc/dd/format"
	"github.com/doubledesc/dd/row"
	"github.com/doubledesc/dd/vertexgroup"
)

// List is a blocking, self-draining work queue of distinct rows. Put and
// PutMatrix are safe to call from any goroutine; Get blocks until a row
// is available or every worker has reported it has none left to submit,
// in which case Get returns ok=false for every remaining and future
// caller.
//
// The zero value is not usable; construct with New.
type List struct {
	names    format.Names
	group    *vertexgroup.Group
	vertices row.Matrix
	tag      row.Tag
	out      io.Writer

	mu   sync.Mutex
	cond *sync.Cond

	workers int

	rows    map[string]row.Row
	queue   []string // FIFO of keys into rows; "" denotes the drain sentinel
	drained bool

	seenSupports map[string]bool
	counter      int
}

// New constructs a List. vertices and group, if group is non-nil, are
// used to compute each submitted row's canonical vertex support for
// orbit-aware deduplication (spec §4.E/§4.I); when group is nil every
// distinct row is kept. names and tag control how accepted rows are
// echoed to out, one line per row with no section header (PrintFacetLine
// for facets, PrintVertexLine otherwise); out may be io.Discard to
// suppress that output entirely.
//
// The worker count starts at 1, mirroring list.cpp's constructor
// comment: the caller that seeds the queue (the heuristic cut or the
// initial facet/vertex set) counts as the first worker and must call
// PutMatrix exactly once to report it is done seeding, same as every
// goroutine spawned afterwards.
func New(vertices row.Matrix, group *vertexgroup.Group, names format.Names, tag row.Tag, out io.Writer) *List {
	l := &List{
		names:        names,
		group:        group,
		vertices:     vertices,
		tag:          tag,
		out:          out,
		workers:      1,
		rows:         make(map[string]row.Row),
		seenSupports: make(map[string]bool),
	}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Put merges a single row into the list. If a vertex group was supplied
// to New, rows whose canonical vertex support has already been accepted
// are dropped silently (they are equivalent, under the group, to a row
// already in the list). The first copy of a genuinely new row is echoed
// to out and wakes one blocked Get.
func (l *List) Put(r row.Row) {
	var canonical string
	if l.group != nil {
		canonical = canonicalSupportKey(l.group, support(l.vertices, r))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.group != nil {
		if l.seenSupports[canonical] {
			return
		}
		l.seenSupports[canonical] = true
	}

	key := r.Key()
	if _, exists := l.rows[key]; exists {
		return
	}
	l.rows[key] = r
	l.echoLocked(r)
	l.queue = append(l.queue, key)
	l.cond.Signal()
}

// PutMatrix merges every row of m with Put, then reports that the
// calling worker is done submitting work it found.
func (l *List) PutMatrix(m row.Matrix) {
	for _, r := range m {
		l.Put(r)
	}
	l.mu.Lock()
	l.workers--
	l.mu.Unlock()
}

// Get blocks until a row distinct from every row previously returned is
// available, or every worker has finished submitting and the queue has
// run dry, in which case it returns ok=false (to this and to every
// other caller, including future ones).
func (l *List) Get() (row.Row, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isEmptyLocked() {
		l.drainLocked()
	}

	for len(l.queue) == 0 {
		l.cond.Wait()
	}

	key := l.queue[0]
	if key == "" {
		// Drain sentinel: leave it at the head forever so every other
		// blocked or future waiter also observes it.
		return nil, false
	}
	l.queue = l.queue[1:]
	l.workers++

	l.counter++
	return l.rows[key], true
}

// Rows returns every distinct row accepted so far, sorted by Row.Less.
// Safe to call once every worker has finished (e.g. after
// ad.ParallelDecompose's worker goroutines have all returned).
func (l *List) Rows() row.Matrix {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(row.Matrix, 0, len(l.rows))
	for key, r := range l.rows {
		if key == "" {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// isEmptyLocked reports whether every worker has finished and no row is
// queued. Must be called with mu held.
func (l *List) isEmptyLocked() bool {
	return l.workers == 0 && len(l.queue) == 0
}

// drainLocked installs the permanent drain sentinel and wakes every
// waiter. Must be called with mu held, and only when isEmptyLocked.
func (l *List) drainLocked() {
	if l.drained {
		return
	}
	l.drained = true
	l.queue = append(l.queue, "")
	l.cond.Broadcast()
}

func (l *List) echoLocked(r row.Row) {
	if l.out == nil {
		return
	}
	if l.tag == row.FacetTag {
		_ = format.PrintFacetLine(l.out, r, l.names)
	} else {
		_ = format.PrintVertexLine(l.out, r)
	}
}

// support returns the indices of vertices lying exactly on r.
func support(vertices row.Matrix, r row.Row) []int {
	out := make([]int, 0, len(vertices))
	for i, v := range vertices {
		if row.Distance(r, v).Sign() == 0 {
			out = append(out, i)
		}
	}
	return out
}

func canonicalSupportKey(group *vertexgroup.Group, support []int) string {
	canonical := group.Canonical(support)
	parts := make([]string, len(canonical))
	for i, idx := range canonical {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return strings.Join(parts, ",")
}
