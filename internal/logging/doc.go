// Package logging centralizes slog configuration for sceneline.
//
// Two output formats are supported: a compact single-line console format for
// interactive use and structured JSON for log collection. All diagnostics are
// written to stderr (optionally teed into a workspace log file) so that
// command output on stdout remains clean and pipeable.
//
// The package also provides typed attribute helpers and component loggers so
// call sites stay terse and field names stay consistent.
package logging
