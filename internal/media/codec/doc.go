// Package codec wraps the ffmpeg command-line tools behind the Codec
// interface the cutting pipeline consumes: probe a source's duration, extract
// a faded and re-encoded sub-range, and concatenate complete files.
//
// The pipeline treats the codec as opaque; everything format-specific lives
// here. Tests swap in fakes to exercise workflow behaviour without the real
// binaries.
package codec
