package cliapp

import (
	"fmt"
	"os"

	"github.com/doubledesc/dd/row"
	"github.com/spf13/cobra"
)

var configFile string

// NewRootCommand builds the dd root command: "dd facets <file>" and
// "dd vertices <file>", sharing the -m/-t/-r/--recursion-min-vertices/
// --sampling/--config flags, grounded on
// jinterlante1206-AleutianLocal/cmd/aleutian/main.go's cobra root
// command and PersistentPreRun config-load pattern.
func NewRootCommand() *cobra.Command {
	opts := DefaultOptions()

	root := &cobra.Command{
		Use:   "dd",
		Short: "Convert between vertex and facet descriptions of a polyhedron",
		Long: `dd computes the double description of a polyhedron: given its
vertices/rays it finds the facet inequalities, and given its facet
inequalities it finds the vertices/rays, using either Adjacency
Decomposition or a single Fourier-Motzkin elimination pass.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			fc, err := loadFileConfig(configFile)
			if err != nil {
				return fmt.Errorf("cliapp: loading %s: %w", configFile, err)
			}
			applyConfig(fc, &opts, cmd.Flags())
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.Method, "method", "m", opts.Method, `algorithm to use: "ad" or "dd"`)
	root.PersistentFlags().IntVarP(&opts.Threads, "threads", "t", opts.Threads, "number of worker goroutines for method ad")
	root.PersistentFlags().IntVarP(&opts.RecursionDepth, "recursion-depth", "r", opts.RecursionDepth, "Adjacency Decomposition recursion depth")
	root.PersistentFlags().IntVar(&opts.RecursionMinVertices, "recursion-min-vertices", opts.RecursionMinVertices, "minimum vertex count to recurse into (effective max(2,N))")
	root.PersistentFlags().BoolVar(&opts.Sampling, "sampling", opts.Sampling, "explore only a representative sample of the adjacency frontier")
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML file of flag defaults; explicit flags still override it")

	root.AddCommand(newFacetsCommand(&opts))
	root.AddCommand(newVerticesCommand(&opts))
	return root
}

func newFacetsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "facets <input-file>",
		Short: "Compute the facet inequalities of the polyhedron spanned by the given vertices/rays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, *opts, args[0], row.VertexTag)
		},
	}
}

func newVerticesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "vertices <input-file>",
		Short: "Compute the vertices/rays of the polyhedron cut out by the given facet inequalities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, *opts, args[0], row.FacetTag)
		},
	}
}

func runFile(cmd *cobra.Command, opts Options, path string, inputTag row.Tag) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cliapp: opening %s: %w", path, err)
	}
	defer f.Close()

	return Run(cmd.Context(), opts, f, inputTag, cmd.OutOrStdout())
}
