// Package splitter drives the cutting pipeline: it walks a resolved cutting
// plan target by target, probes each distinct audio source once, clamps
// intervals against the real source duration, delegates slice/fade/encode to
// the codec, and assembles the outputs — optional per-directory zip archives
// and an optional global manifest CSV.
//
// A run holds an advisory lock on the output directory so two runs cannot
// interleave files in one target, and tags every log line with a run ID.
package splitter
