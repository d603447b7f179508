// Command protograph converts molecular structure files into annotated
// proximity-graph JSON artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/turtacn/protograph/internal/interfaces/cli"
	"github.com/turtacn/protograph/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// Configuration faults exit 2, per-file failures exit 1.
		if errors.IsFatal(errors.GetCode(err)) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
