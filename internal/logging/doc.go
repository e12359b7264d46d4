// Package logging assembles structured slog loggers used across samerename.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code can tag log
// lines with the run identifier and target directory. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
