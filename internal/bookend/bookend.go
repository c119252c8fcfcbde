// Package bookend prepends and appends fixed music clips to every audio file
// in a directory, writing the combined results to an output directory. It is
// the post-processing companion to the splitter: run it over a folder of cut
// verses to give each one consistent intro/outro music.
package bookend

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"versecut/internal/fileutil"
	"versecut/internal/logging"
	"versecut/internal/media/codec"
)

// Options configures one bookend pass.
type Options struct {
	InputDir   string
	OutputDir  string // defaults to <InputDir>/bookended
	BeginMusic string
	EndMusic   string
	Prefix     string
	Extensions []string
	Bitrate    string
	// SkipExisting leaves files alone when their destination already exists.
	SkipExisting bool
}

// Report summarizes a bookend pass.
type Report struct {
	OutputDir string
	Written   []string
	Skipped   int
}

// Processor applies bookend music via the codec's concat operation.
type Processor struct {
	codec  codec.Codec
	logger *slog.Logger
}

// New constructs a processor. A nil logger is replaced with a no-op logger.
func New(c codec.Codec, logger *slog.Logger) *Processor {
	return &Processor{
		codec:  c,
		logger: logging.NewComponentLogger(logger, "bookend"),
	}
}

// Run processes every matching file in the input directory, in sorted order.
func (p *Processor) Run(ctx context.Context, opts Options) (*Report, error) {
	info, err := os.Stat(opts.InputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("input directory not found: %s", opts.InputDir)
	}
	for _, clip := range []string{opts.BeginMusic, opts.EndMusic} {
		if info, err := os.Stat(clip); err != nil || info.IsDir() {
			return nil, fmt.Errorf("music clip not found: %s", clip)
		}
	}

	extensions := normalizeExtensions(opts.Extensions)
	if len(extensions) == 0 {
		return nil, fmt.Errorf("no valid extensions provided")
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(opts.InputDir, "bookended")
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	files, err := matchingFiles(opts.InputDir, extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no audio files in %s matching %s", opts.InputDir, strings.Join(extensions, ", "))
	}

	report := &Report{OutputDir: outputDir}
	for _, source := range files {
		destination := filepath.Join(outputDir, opts.Prefix+filepath.Base(source))
		if opts.SkipExisting {
			if _, err := os.Stat(destination); err == nil {
				report.Skipped++
				p.logger.Debug("destination exists, skipping", logging.Args(logging.String("output", destination))...)
				continue
			}
		}

		err := p.codec.Concat(ctx, codec.ConcatRequest{
			Inputs:  []string{opts.BeginMusic, source, opts.EndMusic},
			Output:  destination,
			Bitrate: bitrateFor(destination, opts.Bitrate),
		})
		if err != nil {
			return nil, fmt.Errorf("bookend %s: %w", source, err)
		}
		report.Written = append(report.Written, destination)
		p.logger.Info("bookended", logging.Args(logging.String("output", destination))...)
	}
	return report, nil
}

// normalizeExtensions lowercases and dot-prefixes the extension filter,
// dropping blanks.
func normalizeExtensions(extensions []string) []string {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

func matchingFiles(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, allowed := range extensions {
			if ext == allowed {
				files = append(files, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// bitrateFor returns the bitrate only for mp3 destinations; other formats use
// the encoder's defaults.
func bitrateFor(destination, bitrate string) string {
	if strings.ToLower(filepath.Ext(destination)) == ".mp3" {
		return bitrate
	}
	return ""
}
