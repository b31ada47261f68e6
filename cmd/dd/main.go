// Command dd converts between vertex and facet descriptions of a
// polyhedron. See cliapp for the subcommands and flags.
package main

import (
	"fmt"
	"os"

	"github.com/doubledesc/dd/cliapp"
)

func main() {
	if err := cliapp.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
