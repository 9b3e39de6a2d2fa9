// Package cli provides the Cobra command structure for reformahtml.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String formats the build info for cobra's --version flag.
func (info BuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.Date)
}

// NewRootCommand creates the reformahtml command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reformahtml <input> [output]",
		Short: "Normalize whitespace in HTML and Bikeshed spec sources",
		Long: `reformahtml rewrites a markup source file so that soft-wrapped prose
joins onto single lines while the document's structure stays put.

Line breaks inside paragraphs, list items, and table cells collapse to
spaces. Blank lines, indentation after structural tags, raw text inside
pre, script, style, and friends, and anything under a data-noreformat
attribute survive byte for byte. Running the tool twice never changes
the output of the first run.

With one argument the file is rewritten in place, and only when the
normalized text differs. With two arguments the result goes to the
second path and the input is left untouched.`,
		Example: `  reformahtml spec.bs
  reformahtml draft.html clean.html`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}
			return nil
		},
		RunE:          runReformat,
		Version:       info.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flag parse failures are usage errors too.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter("auto", os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
