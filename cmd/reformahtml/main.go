// Package main is the entry point for the reformahtml CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/zcorpan/reformahtml/internal/cli"
	"github.com/zcorpan/reformahtml/internal/logging"
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

	// Carry the default logger so the command and the packages under it
	// share one sink.
	ctx := logging.WithLogger(context.Background(), logging.Default())

	logging.Default().Debug("starting",
		logging.FieldVersion, info.Version,
		logging.FieldCommit, info.Commit,
		logging.FieldBuilt, info.Date,
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)

		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		}
		return cli.ExitCodeForError(err)
	}

	return cli.ExitSuccess
}
