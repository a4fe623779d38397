// Package format rebuilds source text from a token sequence under two
// objectives: Beautify produces indented, human-readable output, Minify the
// most compact output that re-scans to the same significant tokens. Both
// generators share one Options record and the same quote normalization.
package format
