package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/bookexchange/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	root := cli.NewRootCommand(cli.BuildInfo{Version: Version, Commit: Commit})
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
