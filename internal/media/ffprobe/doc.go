// Package ffprobe wraps the ffprobe CLI to report container metadata for
// audio sources, primarily the total duration the cutting pipeline needs for
// range clamping.
package ffprobe
