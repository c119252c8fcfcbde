// Package config loads, normalizes, and validates versecut configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/versecut/config.toml or a
// project-local versecut.toml. The Config type centralizes every knob the CLI
// needs: output and encoding defaults, fade lengths, codec binaries, bookend
// clips, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
