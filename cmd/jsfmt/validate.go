package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsfmt/internal/diag"
	"jsfmt/internal/diagfmt"
	"jsfmt/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] <path> [path...]",
	Short: "Check JavaScript sources for structural problems",
	Long:  `Validate scans each file and reports unbalanced brackets, keywords missing their parenthesized condition, and malformed literals. Pass "-" to read from stdin.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().Bool("counts", false, "print function and variable counts per file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	showCounts, err := cmd.Flags().GetBool("counts")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	prettyOpts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}

	var failed int
	for _, path := range args {
		result, err := tokenizeTarget(path, maxDiagnostics)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}

		validate.Run(result.Tokens, diag.BagReporter{Bag: result.Bag})
		result.Bag.Sort()

		if result.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts)
		}
		if result.Bag.HasErrors() {
			failed++
		} else if !quiet {
			fmt.Fprintf(os.Stdout, "%s: ok\n", displayPath(path))
		}

		if showCounts {
			counts := validate.Count(result.Tokens)
			fmt.Fprintf(os.Stdout, "%s: %d function(s), %d variable(s)\n",
				displayPath(path), counts.Functions, counts.Variables)
		}
	}

	if failed > 0 {
		return fmt.Errorf("validate: %d file(s) with errors", failed)
	}
	return nil
}

func displayPath(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
