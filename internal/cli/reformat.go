package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zcorpan/reformahtml/internal/logging"
	"github.com/zcorpan/reformahtml/pkg/markup"
	"github.com/zcorpan/reformahtml/pkg/reformat"
)

// sniffLimit bounds how much of the input the kind sniff reads.
const sniffLimit = 64 * 1024

func runReformat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	inPath := args[0]
	outPath := ""
	if len(args) == 2 {
		outPath = args[1]
	}

	sniffInput(logger, inPath)

	t := reformat.New()
	start := time.Now()

	var result *reformat.FileResult
	var err error
	if outPath != "" {
		result, err = t.ReformatFileTo(ctx, inPath, outPath)
	} else {
		result, err = t.ReformatFile(ctx, inPath)
	}
	if err != nil {
		return err
	}

	keyvals := []any{
		logging.FieldInput, result.Path,
		logging.FieldInBytes, result.InBytes,
		logging.FieldOutBytes, result.OutBytes,
		logging.FieldChanged, result.Changed,
		logging.FieldWritten, result.Written,
		logging.FieldElapsed, time.Since(start),
	}
	if outPath != "" {
		keyvals = append(keyvals, logging.FieldOutput, outPath)
	}
	logger.Debug(result.Summary(), keyvals...)

	return nil
}

// sniffInput logs advisory diagnostics about the input kind. Read failures
// are ignored here so the pipeline reports the authoritative error.
func sniffInput(logger *log.Logger, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, sniffLimit))
	if err != nil {
		return
	}

	if markup.IsBinary(head) {
		logger.Warn("input looks binary, reformatting anyway", logging.FieldPath, path)
	}
	logger.Debug("detected input kind",
		logging.FieldPath, path,
		logging.FieldKind, markup.Detect(path, head),
	)
}
