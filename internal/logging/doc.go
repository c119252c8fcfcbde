// Package logging assembles the structured slog loggers used across
// versecut.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes typed attribute helpers so pipeline code tags log lines
// consistently. A no-op logger is provided for tests and wiring code that
// cannot fail. Prefer these constructors over hand-rolled slog setup.
package logging
