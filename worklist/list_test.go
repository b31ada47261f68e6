package worklist_test

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/doubledesc/dd/format"
	"github.com/doubledesc/dd/row"
	"github.com/doubledesc/dd/worklist"
	"github.com/stretchr/testify/require"
)

// A single worker that seeds the list with two rows, consumes them, and
// submits nothing further must see Get return ok=false once drained.
func TestListDrainsAfterSoleWorkerFinishes(t *testing.T) {
	l := worklist.New(nil, nil, nil, row.VertexTag, io.Discard)

	l.PutMatrix(row.Matrix{
		row.NewRow(0, 0, 1),
		row.NewRow(1, 0, 1),
	})

	seen := row.Matrix{}
	for {
		r, ok := l.Get()
		if !ok {
			break
		}
		seen = append(seen, r)
		l.PutMatrix(nil)
	}
	require.Len(t, seen, 2)
}

// Duplicate rows submitted by different workers must be accepted only
// once.
func TestListDedupesIdenticalRows(t *testing.T) {
	l := worklist.New(nil, nil, nil, row.VertexTag, io.Discard)

	l.Put(row.NewRow(1, 0, 1))
	l.Put(row.NewRow(1, 0, 1))
	l.PutMatrix(nil)

	r, ok := l.Get()
	require.True(t, ok)
	require.True(t, r.Equal(row.NewRow(1, 0, 1)))
	l.PutMatrix(nil)

	_, ok = l.Get()
	require.False(t, ok)
}

// A handful of worker goroutines draining a shared queue must all
// observe the same total set of distinct rows and all terminate.
func TestListConcurrentWorkersTerminate(t *testing.T) {
	l := worklist.New(nil, nil, nil, row.VertexTag, io.Discard)
	l.PutMatrix(row.Matrix{
		row.NewRow(0, 0, 1),
		row.NewRow(1, 0, 1),
		row.NewRow(1, 1, 1),
		row.NewRow(0, 1, 1),
	})

	var (
		mu    sync.Mutex
		total int
		wg    sync.WaitGroup
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				_, ok := l.Get()
				if !ok {
					return
				}
				mu.Lock()
				total++
				mu.Unlock()
				l.PutMatrix(nil)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 4, total)
}

// The facet-tagged list echoes accepted rows through PrettyPrint rather
// than as raw coordinates.
func TestListEchoesFacetsThroughPrettyPrint(t *testing.T) {
	var buf bytes.Buffer
	names := format.Names{"x", "y"}
	l := worklist.New(nil, nil, names, row.FacetTag, &buf)

	l.Put(row.NewRow(-1, 0, 1)) // x <= 1
	l.PutMatrix(nil)

	require.Contains(t, buf.String(), "<=")
}

// Rows returns every distinct accepted row once every worker is done.
func TestListRowsReturnsAllDistinctRows(t *testing.T) {
	l := worklist.New(nil, nil, nil, row.VertexTag, io.Discard)
	l.PutMatrix(row.Matrix{
		row.NewRow(0, 0, 1),
		row.NewRow(1, 0, 1),
		row.NewRow(0, 0, 1), // duplicate
	})
	for {
		_, ok := l.Get()
		if !ok {
			break
		}
		l.PutMatrix(nil)
	}
	require.Len(t, l.Rows(), 2)
}
