// Package diag defines the diagnostic model shared by the scanner, the
// structural validator, and the driver: severities, stable codes, a bounded
// Bag accumulator, and the Reporter contract phases emit through.
//
// Diagnostics are never fatal here. The scanner and the generators keep
// producing output for malformed input; callers decide what to do with the
// collected findings.
package diag
