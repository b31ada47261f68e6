package ad

import (
	"context"
	"io"
	"sync"

	"github.com/doubledesc/dd/coordmap"
	"github.com/doubledesc/dd/fme"
	"github.com/doubledesc/dd/format"
	"github.com/doubledesc/dd/obslog"
	"github.com/doubledesc/dd/row"
	"github.com/doubledesc/dd/vertexgroup"
	"github.com/doubledesc/dd/worklist"
)

// ParallelConfig configures ParallelDecompose. A zero value runs a
// single worker to depth 0 (plain RidgesOf/Rotation at every step, no
// recursive sub-decomposition, no sampling).
type ParallelConfig struct {
	// Workers is the number of goroutines rotating facets/vertices
	// concurrently. Fewer than 1 is treated as 1.
	Workers int
	// Depth bounds RidgesOfRecursive's recursion (spec §4.G).
	Depth int
	// MinVertices is RidgesOfRecursive's effective_min threshold.
	MinVertices int
	// Sampling, when true, asks Rotation's callers to explore only a
	// representative sample rather than the exhaustive adjacency
	// frontier (spec §4.H).
	Sampling bool
}

func (cfg ParallelConfig) workers() int {
	if cfg.Workers < 1 {
		return 1
	}
	return cfg.Workers
}

// ParallelDecompose runs Adjacency Decomposition over vertices with
// cfg.Workers goroutines coordinated through a worklist.List: the list
// is seeded with fme.EliminateHeuristic's cut, then every goroutine
// loops Get-Rotate-PutMatrix until the list reports no worker has
// anything left to submit. Accepted rows are echoed to out as they are
// found (spec §5's "results before completion" streaming guarantee);
// the full result is also returned once every goroutine has exited.
//
// If ctx is cancelled, every goroutine stops pulling new work at its
// next loop iteration and ParallelDecompose returns ctx.Err() once they
// have all exited; the rows accepted before cancellation are still
// returned alongside the error.
//
// Grounded on flow.Dinic's context-checked worker loop, generalized
// from a single blocking-flow pass to a fan-out of list.cpp's
// get/put protocol.
func ParallelDecompose(ctx context.Context, vertices row.Matrix, maps []coordmap.Map, group *vertexgroup.Group, tag row.Tag, names format.Names, out io.Writer, cfg ParallelConfig) (row.Matrix, error) {
	logger := obslog.Default()

	seeds := fme.EliminateHeuristic(vertices, tag)
	list := worklist.New(vertices, group, names, tag, out)
	list.PutMatrix(seeds)
	logger.Info("decomposition seeded", "seeds", len(seeds), "workers", cfg.workers())

	var wg sync.WaitGroup
	n := cfg.workers()
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(worker int) {
			defer wg.Done()
			workerLoop(ctx, list, vertices, maps, group, tag, cfg, logger.With("worker", worker))
		}(i)
	}
	wg.Wait()

	result := list.Rows()
	logger.Info("decomposition finished", "rows", len(result))
	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func workerLoop(ctx context.Context, list *worklist.List, vertices row.Matrix, maps []coordmap.Map, group *vertexgroup.Group, tag row.Tag, cfg ParallelConfig, logger *obslog.Logger) {
	for {
		if ctx.Err() != nil {
			return
		}

		// Get already counted this goroutine as an active worker; from
		// here on it must call PutMatrix exactly once to release that
		// slot, even if it submits nothing because of cancellation.
		current, ok := list.Get()
		if !ok {
			return
		}

		if ctx.Err() != nil {
			list.PutMatrix(nil)
			return
		}

		adjacent := RotationRecursive(vertices, current, maps, group, tag, cfg.Depth, cfg.MinVertices, cfg.Sampling)
		logger.Debug("expanded facet", "found", len(adjacent))
		list.PutMatrix(adjacent)
	}
}
