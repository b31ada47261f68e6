package cliapp

import (
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Options with every field optional, so applyConfig
// can tell "the file set this" apart from "leave the flag default",
// following jinterlante1206-AleutianLocal/cmd/aleutian/main.go's
// yaml.Unmarshal config-load pattern.
type fileConfig struct {
	Method               *string `yaml:"method"`
	Threads              *int    `yaml:"threads"`
	RecursionDepth       *int    `yaml:"recursion-depth"`
	RecursionMinVertices *int    `yaml:"recursion-min-vertices"`
	Sampling             *bool   `yaml:"sampling"`
}

// loadFileConfig reads and parses a YAML config file into a fileConfig.
func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// applyConfig overlays fc onto opts, but only for flags the user did not
// pass explicitly on the command line (flags.Changed reports that) —
// spec §6's "CLI flags override config-file values".
func applyConfig(fc *fileConfig, opts *Options, flags *pflag.FlagSet) {
	if fc.Method != nil && !flags.Changed("method") {
		opts.Method = *fc.Method
	}
	if fc.Threads != nil && !flags.Changed("threads") {
		opts.Threads = *fc.Threads
	}
	if fc.RecursionDepth != nil && !flags.Changed("recursion-depth") {
		opts.RecursionDepth = *fc.RecursionDepth
	}
	if fc.RecursionMinVertices != nil && !flags.Changed("recursion-min-vertices") {
		opts.RecursionMinVertices = *fc.RecursionMinVertices
	}
	if fc.Sampling != nil && !flags.Changed("sampling") {
		opts.Sampling = *fc.Sampling
	}
}
