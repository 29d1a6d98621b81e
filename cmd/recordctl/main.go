package main

import (
	"fmt"
	"os"

	"github.com/ytget/user-form/internal/cli"
)

// Set during build via -ldflags "-X main.version=X.Y.Z"
var (
	version   = "dev"
	commit    = ""
	date      = ""
	builtBy   = ""
	treeState = ""
)

func main() {
	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		BuiltBy:   builtBy,
		TreeState: treeState,
	})

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
