// Package logging assembles structured slog loggers and formatting helpers used
// across lshsim.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code can tag log
// lines with the run ID and stage. Logs go to stderr (and optionally a file)
// so report output on stdout stays machine readable. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
