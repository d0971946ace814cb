package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mgpai22/srtlint/internal/logging"
	"github.com/spf13/cobra"
)

const version = "0.2.0"

var (
	verbose bool
	logger  *logging.Logger
)

// errReported wraps an error that the pipeline already logged
type errReported struct {
	err error
}

func (e errReported) Error() string { return e.err.Error() }
func (e errReported) Unwrap() error { return e.err }

var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srtlint",
		Short: "Look for issues inside SubRip text (.srt) files",
		Long: `srtlint validates SubRip subtitle files.

It tokenizes the file, checks counters and timestamps, assembles the
subtitle records and, in strict mode, checks padding, timing and
<i>/<b>/<u> markup balance.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger(verbose)
		},
	}

	cmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Logs additional information about internal actions")

	cmd.AddCommand(newCheckCommand(), newTokensCommand(), newVersionCommand())
	return cmd
}

func Execute() error {
	defer func() {
		if logger != nil {
			logger.Sync()
		}
	}()

	err := rootCmd.Execute()
	if err != nil {
		var reported errReported
		if !errors.As(err, &reported) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}
