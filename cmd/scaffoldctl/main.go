// Command scaffoldctl loads contigs and scaffold links, runs contraction to
// a fixpoint, and emits the resulting graph in whichever output formats the
// caller requested.
package main

import (
	"os"

	"github.com/katalvlaran/scaffoldgraph/cmd/scaffoldctl/internal/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
