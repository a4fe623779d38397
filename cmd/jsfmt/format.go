package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsfmt/internal/driver"
	"jsfmt/internal/format"
)

var beautifyCmd = &cobra.Command{
	Use:   "beautify [flags] <path> [path...]",
	Short: "Rebuild JavaScript sources with consistent indentation",
	Long:  `Beautify reconstructs readable source text from the token stream. Pass "-" to read from stdin and write to stdout.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFormatMode(cmd, args, format.Beautify)
	},
}

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] <path> [path...]",
	Short: "Rebuild JavaScript sources as compactly as possible",
	Long:  `Minify strips every byte of whitespace the scanner can spare while keeping the token stream intact. Pass "-" to read from stdin and write to stdout.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFormatMode(cmd, args, format.Minify)
	},
}

func init() {
	for _, c := range []*cobra.Command{beautifyCmd, minifyCmd} {
		c.Flags().Bool("check", false, "check if files are properly formatted")
		c.Flags().String("format", "text", "output format (text|json)")
		c.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
		c.Flags().Bool("stats", false, "print processing statistics")
		c.Flags().Bool("no-cache", false, "skip the on-disk result cache")
		c.Flags().String("ui", "auto", "progress UI (auto|on|off)")

		c.Flags().Int("indent-size", 0, "spaces per indentation level")
		c.Flags().String("indent-type", "", "indentation unit (spaces|tabs)")
		c.Flags().String("quotes", "", "string quote style (preserve|single|double)")
		c.Flags().Bool("semicolons", false, "insert missing semicolons after blocks")
		c.Flags().Bool("no-comments", false, "drop comments from the output")
		c.Flags().Bool("no-validate", false, "skip structural validation")
	}
}

func runFormatMode(cmd *cobra.Command, args []string, mode format.Mode) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	opts, _, err := loadOptions(".")
	if err != nil {
		return err
	}
	opts.Mode = mode
	if err := applyFormatFlags(cmd, &opts); err != nil {
		return err
	}

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	showStats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return err
	}

	if len(args) == 1 && args[0] == "-" {
		return runFormatStdin(cmd, opts, outputFormat, showStats)
	}
	return runFormatFiles(cmd, args, opts, outputFormat, showStats)
}

func applyFormatFlags(cmd *cobra.Command, opts *format.Options) error {
	flags := cmd.Flags()

	if flags.Changed("indent-size") {
		size, _ := flags.GetInt("indent-size")
		if size < 1 {
			return fmt.Errorf("--indent-size must be at least 1")
		}
		opts.IndentSize = size
	}
	if flags.Changed("indent-type") {
		value, _ := flags.GetString("indent-type")
		it, err := parseIndentType(value)
		if err != nil {
			return err
		}
		opts.IndentType = it
	}
	if flags.Changed("quotes") {
		value, _ := flags.GetString("quotes")
		qs, err := parseQuoteStyle(value)
		if err != nil {
			return err
		}
		opts.QuoteStyle = qs
	}
	if flags.Changed("semicolons") {
		opts.AddSemicolons, _ = flags.GetBool("semicolons")
	}
	if noComments, _ := flags.GetBool("no-comments"); noComments {
		opts.PreserveComments = false
	}
	if noValidate, _ := flags.GetBool("no-validate"); noValidate {
		opts.ValidateSyntax = false
	}
	return nil
}

func runFormatStdin(cmd *cobra.Command, opts format.Options, outputFormat string, showStats bool) error {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	result, timings := driver.ProcessTimed(string(content), opts)

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	case "text":
		if !result.Success {
			return fmt.Errorf("%s", result.Error)
		}
		renderFindings(os.Stderr, "<stdin>", result.Stats)
		fmt.Fprintln(os.Stdout, result.Output)
		if showStats {
			renderStats(os.Stderr, result.Stats)
		}
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}

	if timingsOn(cmd) {
		printPhaseTimings(os.Stderr, timings)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	if len(result.Stats.Errors) > 0 {
		return fmt.Errorf("found %d structural error(s)", len(result.Stats.Errors))
	}
	return nil
}

func runFormatFiles(cmd *cobra.Command, args []string, opts format.Options, outputFormat string, showStats bool) error {
	flags := cmd.Flags()
	check, _ := flags.GetBool("check")
	writeToStdout, _ := flags.GetBool("stdout")
	noCache, _ := flags.GetBool("no-cache")
	uiFlag, _ := flags.GetString("ui")

	if writeToStdout && check {
		return fmt.Errorf("--stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("--stdout is only supported with text output")
	}

	uiMode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	batchOpts := driver.FormatOptions{
		Check:   check,
		Stdout:  writeToStdout,
		Options: opts,
	}
	if !noCache {
		cache, err := driver.OpenDiskCache("jsfmt")
		if err == nil {
			batchOpts.Cache = cache
		}
	}

	var results []driver.FormatResult
	useTUI := shouldUseTUI(uiMode) && !writeToStdout && !quiet && outputFormat == "text"
	if useTUI {
		files, err := driver.CollectSourceFiles(args)
		if err != nil {
			return err
		}
		modeTitle := fmt.Sprintf("%s %d file(s)", opts.Mode, len(files))
		results, err = runFormatWithUI(cmd.Context(), modeTitle, files, args, batchOpts)
		if err != nil {
			return err
		}
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, batchOpts)
		if err != nil {
			return err
		}
	}

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFormatStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("failed to format some files")
			}
			return nil
		}
		renderFormatText(results, check, quiet, showStats, &hasErrors, &hasChanges)
	case "json":
		if err := renderFormatJSON(results, check, showStats); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("formatting changes required")
	}
	return nil
}

func renderFormatStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFormatText(results []driver.FormatResult, check, quiet, showStats bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}

		renderFindings(os.Stderr, res.Path, res.Stats)

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
		if showStats {
			fmt.Fprintf(os.Stderr, "%s:\n", res.Path)
			renderStats(os.Stderr, res.Stats)
		}
	}
}

func renderFormatJSON(results []driver.FormatResult, check, showStats bool) error {
	type jsonResult struct {
		Path     string        `json:"path"`
		Changed  bool          `json:"changed"`
		Cached   bool          `json:"cached"`
		Error    string        `json:"error,omitempty"`
		CheckRun bool          `json:"check"`
		Stats    *driver.Stats `json:"stats,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.FromCache, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if showStats {
			stats := res.Stats
			jr.Stats = &stats
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// renderFindings prints validator and scanner findings carried in the stats.
func renderFindings(w io.Writer, path string, stats driver.Stats) {
	for _, e := range stats.Errors {
		fmt.Fprintf(w, "%s:%d:%d: error %s: %s\n", path, e.Line, e.Column, e.Code, e.Message)
	}
	for _, warn := range stats.Warnings {
		fmt.Fprintf(w, "%s:%d:%d: warning %s: %s\n", path, warn.Line, warn.Column, warn.Code, warn.Message)
	}
}

func renderStats(w io.Writer, stats driver.Stats) {
	fmt.Fprintf(w, "  original size:    %d bytes\n", stats.OriginalSize)
	fmt.Fprintf(w, "  processed size:   %d bytes\n", stats.ProcessedSize)
	fmt.Fprintf(w, "  compression:      %.2f\n", stats.CompressionRatio)
	fmt.Fprintf(w, "  lines:            %d\n", stats.LineCount)
	fmt.Fprintf(w, "  functions:        %d\n", stats.FunctionCount)
	fmt.Fprintf(w, "  variables:        %d\n", stats.VariableCount)
	fmt.Fprintf(w, "  errors:           %d\n", len(stats.Errors))
	fmt.Fprintf(w, "  warnings:         %d\n", len(stats.Warnings))
}

func timingsOn(cmd *cobra.Command) bool {
	on, _ := cmd.Root().PersistentFlags().GetBool("timings")
	return on
}
