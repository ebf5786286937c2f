// Package logging assembles structured slog loggers and formatting helpers used
// across the iscc CLI.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code can tag log
// lines with the file, stage, and batch run being processed. Loggers write to
// stderr so identifier output on stdout stays machine-readable. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
