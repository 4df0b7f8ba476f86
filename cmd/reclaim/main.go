// Command reclaim deletes node_modules (or other named) directories below a path
// and reports the space freed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/reclaim/internal/cli"
)

// version is set at build time with -ldflags.
//
//nolint:gochecknoglobals // Build-time variable
var version = "unknown - unofficial & generated by unknown"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.New(version).Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "reclaim: %v\n", err)

		stop()
		os.Exit(1)
	}
}
