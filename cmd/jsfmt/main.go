package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jsfmt",
	Short: "JavaScript beautifier, minifier and structural validator",
	Long:  `jsfmt tokenizes JavaScript sources and rebuilds them readable or compact, reporting structural problems along the way`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(beautifyCmd)
	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-phase timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
