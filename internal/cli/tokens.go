package cli

import (
	"fmt"

	"github.com/mgpai22/srtlint/internal/source"
	"github.com/mgpai22/srtlint/internal/subtitle"
	"github.com/spf13/cobra"
)

func newTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [subtitle_file]",
		Short: "Print the token stream of a SubRip file",
		Long: `Tokenize a SubRip file and print one token per line.

Examples:
  srtlint tokens movie.srt
  srtlint tokens movie.srt --strict --encoding windows-1252`,
		Args: cobra.ExactArgs(1),
		RunE: runTokens,
	}

	cmd.Flags().
		BoolP("strict", "s", false, "Enforces stricter rules for suspicious behavior")
	cmd.Flags().
		StringP("encoding", "e", "utf-8", "Character encoding of the input file")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	encoding, _ := cmd.Flags().GetString("encoding")

	lines, err := source.ReadLines(args[0], encoding)
	if err != nil {
		return err
	}

	opts := subtitle.Options{Verbose: verbose, Strict: strict, Logger: logger}

	lexer, err := subtitle.NewLexer(lines, opts)
	if err != nil {
		return errReported{err: err}
	}
	tokens, issues, err := lexer.Lex()
	if err != nil {
		return errReported{err: err}
	}

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintln(out, tok)
	}

	logger.Debugw("Tokenized subtitle file",
		"tokens", len(tokens),
		"issues", issues,
	)
	return nil
}
