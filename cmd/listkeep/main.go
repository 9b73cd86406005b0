package main

import (
	"fmt"
	"os"

	"github.com/mthorne/listkeep/internal/cli"
	"github.com/mthorne/listkeep/internal/liststore"
	"github.com/mthorne/listkeep/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// One registry per process; closing it is the process-exit teardown
	// for every cached store handle.
	registry := liststore.NewRegistry()
	defer registry.Close()
	defer logging.Sync()

	cmd := cli.NewRootCommand(registry)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.GetExitCode(err)
	}
	return 0
}
