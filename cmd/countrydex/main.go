// Command countrydex is a terminal directory of the world's countries.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rshade/countrydex/internal/cli"
	"github.com/rshade/countrydex/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
// Errors are printed once, to stderr.
func run(args []string, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
