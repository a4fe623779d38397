// Package driver orchestrates the pipeline: tokenize, optionally validate,
// then beautify or minify, and packages output plus statistics into a single
// Result. Each call is a pure function of its input; there is no shared
// state between invocations, so callers may run them concurrently.
package driver

import (
	"fmt"
	"strings"

	"jsfmt/internal/diag"
	"jsfmt/internal/format"
	"jsfmt/internal/lexer"
	"jsfmt/internal/observ"
	"jsfmt/internal/source"
	"jsfmt/internal/validate"
)

// ValidationError is one finding resolved to a human position.
type ValidationError struct {
	Line     uint32 `json:"line" msgpack:"line"`
	Column   uint32 `json:"column" msgpack:"column"`
	Message  string `json:"message" msgpack:"message"`
	Severity string `json:"severity" msgpack:"severity"`
	Code     string `json:"code" msgpack:"code"`
}

// Stats describes one processing run.
type Stats struct {
	OriginalSize     int               `json:"originalSize" msgpack:"originalSize"`
	ProcessedSize    int               `json:"processedSize" msgpack:"processedSize"`
	CompressionRatio float64           `json:"compressionRatio" msgpack:"compressionRatio"`
	LineCount        int               `json:"lineCount" msgpack:"lineCount"`
	FunctionCount    int               `json:"functionCount" msgpack:"functionCount"`
	VariableCount    int               `json:"variableCount" msgpack:"variableCount"`
	Errors           []ValidationError `json:"errors" msgpack:"errors"`
	Warnings         []ValidationError `json:"warnings" msgpack:"warnings"`
}

// Result is the single value the core hands back to its caller.
type Result struct {
	Success   bool   `json:"success" msgpack:"success"`
	Output    string `json:"output,omitempty" msgpack:"output"`
	Stats     Stats  `json:"stats,omitempty" msgpack:"stats"`
	Error     string `json:"error,omitempty" msgpack:"error"`
	ErrorCode string `json:"errorCode,omitempty" msgpack:"errorCode"`
}

const maxDiagnostics = 256

// Process runs the whole pipeline over source under opts. It never panics:
// unexpected internal failures are converted into a failed Result.
func Process(src string, opts format.Options) Result {
	res, _ := ProcessTimed(src, opts)
	return res
}

// ProcessTimed is Process plus a per-phase timing report.
func ProcessTimed(src string, opts format.Options) (res Result, timings observ.Report) {
	timer := observ.NewTimer()
	defer func() {
		timings = timer.Report()
		if r := recover(); r != nil {
			res = Result{
				Success:   false,
				Error:     fmt.Sprintf("internal error: %v", r),
				ErrorCode: diag.DrvInternal.ID(),
			}
		}
	}()

	if strings.TrimSpace(src) == "" {
		return Result{
			Success:   false,
			Error:     "provide content to process",
			ErrorCode: diag.DrvEmptyInput.ID(),
		}, timer.Report()
	}

	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual("input.js", []byte(src))
	file := fileSet.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	phase := timer.Begin("tokenize")
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	timer.End(phase, fmt.Sprintf("%d tokens", len(tokens)))

	if opts.ValidateSyntax {
		phase = timer.Begin("validate")
		validate.Run(tokens, reporter)
		timer.End(phase, "")
	}

	phase = timer.Begin(opts.Mode.String())
	var output string
	switch opts.Mode {
	case format.Minify:
		output = format.MinifyTokens(tokens, opts)
	default:
		output = format.BeautifyTokens(tokens, opts)
	}
	timer.End(phase, "")

	counts := validate.Count(tokens)
	bag.Sort()
	bag.Dedup()
	errs, warns := partition(bag, fileSet)

	stats := Stats{
		OriginalSize:  len(src),
		ProcessedSize: len(output),
		LineCount:     lineCount(output),
		FunctionCount: counts.Functions,
		VariableCount: counts.Variables,
		Errors:        errs,
		Warnings:      warns,
	}
	if len(src) > 0 {
		stats.CompressionRatio = float64(len(output)) / float64(len(src))
	}

	return Result{Success: true, Output: output, Stats: stats}, timer.Report()
}

func partition(bag *diag.Bag, fs *source.FileSet) (errs, warns []ValidationError) {
	errs = make([]ValidationError, 0, bag.Len())
	warns = make([]ValidationError, 0, bag.Len())
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		ve := ValidationError{
			Line:     start.Line,
			Column:   start.Col,
			Message:  d.Message,
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
		}
		if d.Severity >= diag.SevError {
			errs = append(errs, ve)
		} else {
			warns = append(warns, ve)
		}
	}
	return errs, warns
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
