package main

import (
	"fmt"
	"io"

	"jsfmt/internal/observ"
)

func printPhaseTimings(out io.Writer, report observ.Report) {
	if out == nil {
		return
	}
	if summary := report.Summary(); summary != "" {
		fmt.Fprint(out, summary)
	}
}
