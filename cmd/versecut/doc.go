// Package main hosts the versecut CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into cutting
// plans and pipeline runs: grid, CSV, and workbook splitting, music
// bookending, and configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on flag
// surface instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
