// Package cliapp implements the dd command-line tool: two subcommands
// (facets, vertices) over the shared double-description pipeline, with
// flags and an optional YAML config file following
// jinterlante1206-AleutianLocal/cmd/aleutian/main.go's cobra root
// command and config-load pattern.
package cliapp

import "runtime"

// Options holds the flags shared by both subcommands, after merging any
// --config file with the flags actually passed on the command line
// (flags win).
type Options struct {
	// Method selects the top-level algorithm: "ad" for Adjacency
	// Decomposition (ad.ParallelDecompose) or "dd" for a single
	// Fourier-Motzkin elimination pass (fme.Eliminate).
	Method string
	// Threads is the worker count passed to ad.ParallelConfig.Workers;
	// irrelevant for Method "dd".
	Threads int
	// RecursionDepth is ad.ParallelConfig.Depth.
	RecursionDepth int
	// RecursionMinVertices is ad.ParallelConfig.MinVertices.
	RecursionMinVertices int
	// Sampling is ad.ParallelConfig.Sampling.
	Sampling bool
}

// DefaultOptions returns the flag defaults spec §6 names: method "ad",
// threads equal to the host's CPU count, depth/min-vertices 0, sampling
// off.
func DefaultOptions() Options {
	return Options{
		Method:  "ad",
		Threads: runtime.NumCPU(),
	}
}
