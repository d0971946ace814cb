package cli

import (
	"fmt"

	"github.com/mgpai22/srtlint/internal/config"
	"github.com/mgpai22/srtlint/internal/logging"
	"github.com/mgpai22/srtlint/internal/report"
	"github.com/mgpai22/srtlint/internal/source"
	"github.com/mgpai22/srtlint/internal/subtitle"
	"github.com/mgpai22/srtlint/internal/viewer"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [subtitle_file]",
		Short: "Validate a SubRip subtitle file",
		Long: `Validate a SubRip (.srt) file in two stages.

The first stage checks counters and timestamps line by line, the second
assembles the subtitle records. Fatal problems stop the run with a non-zero
exit code; everything else is reported as an issue and counted.

Examples:
  srtlint check movie.srt
  srtlint check movie.srt --strict --tui
  srtlint check movie.srt -s --encoding shift_jis --report out/movie.json`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().
		BoolP("strict", "s", false, "Enforces stricter rules for suspicious behavior")
	cmd.Flags().
		BoolP("tui", "t", false, "Shows a TUI at the end")
	cmd.Flags().
		StringP("encoding", "e", config.DefaultEncoding, "Character encoding of the input file (e.g., utf-8, shift_jis, windows-1252)")
	cmd.Flags().
		StringP("config", "c", "", "Path to a YAML config file")
	cmd.Flags().
		StringP("report", "r", "", "Write a JSON report to this path")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	configPath, _ := cmd.Flags().GetString("config")
	reportPath, _ := cmd.Flags().GetString("report")

	cfg, err := config.Load(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	log := logger
	if cfg.Verbose && !verbose {
		log = logging.NewLogger(true)
	}

	log.Debugw("Checking subtitle file",
		"input", subtitlePath,
		"strict", cfg.Strict,
		"encoding", cfg.Encoding,
	)

	lines, err := source.ReadLines(subtitlePath, cfg.Encoding)
	if err != nil {
		return err
	}

	result, err := subtitle.Check(lines, subtitle.Options{
		Verbose: cfg.Verbose,
		Strict:  cfg.Strict,
		Logger:  log,
	})
	if err != nil {
		return errReported{err: err}
	}

	log.Debugw("Parsed subtitle file",
		"tokens", len(result.Tokens),
		"records", len(result.Records),
	)

	if reportPath != "" {
		rep := report.New(subtitlePath, result)
		if err := rep.Write(reportPath); err != nil {
			return err
		}
		log.Debugw("Wrote report", "output", reportPath, "issues", rep.Issues())
	}

	if cfg.TUI {
		if err := viewer.Run(result.Records, result.TotalLines); err != nil {
			return fmt.Errorf("viewer failed: %w", err)
		}
	}

	return nil
}

// explicitly set flags win over the config file and environment
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("tui") {
		cfg.TUI, _ = flags.GetBool("tui")
	}
	if flags.Changed("encoding") {
		cfg.Encoding, _ = flags.GetString("encoding")
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}
	return nil
}
