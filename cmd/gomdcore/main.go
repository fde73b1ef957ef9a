// Package main is the entry point for the gomdcore CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gomdcore/internal/cli"
	"github.com/yaklabco/gomdcore/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrRenderFailed - it's just a signal for exit code.
		if !errors.Is(err, cli.ErrRenderFailed) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitRenderErrors
	}

	return cli.ExitSuccess
}
