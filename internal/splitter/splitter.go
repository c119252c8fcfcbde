package splitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"versecut/internal/cutplan"
	"versecut/internal/fileutil"
	"versecut/internal/logging"
	"versecut/internal/media/codec"
	"versecut/internal/timecode"
)

// lockFileName is the advisory lock held in the output directory for the
// duration of a run.
const lockFileName = ".versecut.lock"

// Options configures one pipeline run.
type Options struct {
	OutputDir     string
	Bitrate       string
	FadeInMillis  int
	FadeOutMillis int
	Extension     string
	ZipOutputs    bool
	ManifestPath  string
	// ContinueOnError keeps cutting after a per-segment codec failure
	// instead of aborting the run.
	ContinueOnError bool
}

// Report summarizes what a run produced.
type Report struct {
	RunID    string
	Written  []string
	Rows     []ManifestRow
	ZipPaths []string
	Skipped  int
	Failed   int
}

// Pipeline cuts segments according to a plan. It is single-use: construct one
// per run.
type Pipeline struct {
	codec  codec.Codec
	logger *slog.Logger
	opts   Options

	// durations caches the probed total duration per source file so a source
	// shared by many intervals is decoded once.
	durations map[string]float64
}

// New constructs a pipeline. A nil logger is replaced with a no-op logger.
func New(c codec.Codec, logger *slog.Logger, opts Options) *Pipeline {
	if opts.Extension == "" {
		opts.Extension = ".mp3"
	}
	return &Pipeline{
		codec:     c,
		logger:    logging.NewComponentLogger(logger, "splitter"),
		opts:      opts,
		durations: make(map[string]float64),
	}
}

// Run cuts every interval in the plan and finalizes the outputs. The plan
// must already carry resolved sources (see cutplan.Plan.ApplySources).
func (p *Pipeline) Run(ctx context.Context, plan cutplan.Plan) (*Report, error) {
	if len(plan.Targets) == 0 {
		return nil, errors.New("run: empty plan")
	}
	for _, target := range plan.Targets {
		if target.Source == "" {
			return nil, &cutplan.UnresolvedSourceError{Sheet: target.Sheet, Detail: "plan target has no source"}
		}
	}

	if err := fileutil.EnsureDir(p.opts.OutputDir); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(p.opts.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock output dir: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("output dir %s is in use by another run", p.opts.OutputDir)
	}
	defer lock.Unlock()

	report := &Report{RunID: uuid.NewString()}
	logger := p.logger.With(logging.String("run_id", report.RunID))
	logger.Info("starting run",
		logging.Args(
			logging.Int("targets", len(plan.Targets)),
			logging.Int("intervals", plan.IntervalCount()),
			logging.String("output", p.opts.OutputDir),
		)...)

	// All files written per target directory, for zipping.
	written := make(map[string][]string, len(plan.Targets))
	var targetDirs []string

	for _, target := range plan.Targets {
		dir := p.opts.OutputDir
		if target.Subdir != "" {
			dir = filepath.Join(p.opts.OutputDir, target.Subdir)
		}
		if err := fileutil.EnsureDir(dir); err != nil {
			return nil, err
		}
		if _, seen := written[dir]; !seen {
			targetDirs = append(targetDirs, dir)
			written[dir] = nil
		}

		for _, interval := range target.Intervals {
			outputs, err := p.cutOne(ctx, logger, target, interval, dir, report)
			if err != nil {
				if p.opts.ContinueOnError {
					report.Failed++
					logger.Error("segment failed, continuing",
						logging.Args(
							logging.String("source", target.Source),
							logging.String("label", interval.Label),
							logging.Error(err),
						)...)
					continue
				}
				return nil, err
			}
			if outputs != "" {
				written[dir] = append(written[dir], outputs)
				report.Written = append(report.Written, outputs)
			}
		}
	}

	finalizeErr := p.finalize(logger, targetDirs, written, report)

	logger.Info("run complete",
		logging.Args(
			logging.Int("written", len(report.Written)),
			logging.Int("skipped", report.Skipped),
			logging.Int("failed", report.Failed),
		)...)
	return report, finalizeErr
}

// cutOne writes a single segment and returns its output path, or "" when the
// interval was skipped.
func (p *Pipeline) cutOne(ctx context.Context, logger *slog.Logger, target cutplan.Target, interval cutplan.Interval, dir string, report *Report) (string, error) {
	total, err := p.sourceDuration(ctx, target.Source)
	if err != nil {
		return "", fmt.Errorf("source %s (label %s): %w", target.Source, interval.Label, err)
	}

	if interval.Start >= total {
		report.Skipped++
		logger.Warn("segment starts beyond source end, skipping",
			logging.Args(
				logging.String("source", target.Source),
				logging.String("label", interval.Label),
				logging.String("start", timecode.MMSS(interval.Start)),
				logging.String("source_end", timecode.MMSS(total)),
			)...)
		return "", nil
	}

	end := interval.End
	if end > total {
		// Clamp rather than fail: the last segment shortens silently.
		logger.Info("clamping segment to source end",
			logging.Args(
				logging.String("label", interval.Label),
				logging.String("requested_end", timecode.MMSS(interval.End)),
				logging.String("source_end", timecode.MMSS(total)),
			)...)
		end = total
	}

	outputPath := fileutil.UniquePath(filepath.Join(dir, interval.Label+p.opts.Extension))
	err = p.codec.Cut(ctx, codec.CutRequest{
		Source:        target.Source,
		Output:        outputPath,
		StartSeconds:  interval.Start,
		EndSeconds:    end,
		FadeInMillis:  p.opts.FadeInMillis,
		FadeOutMillis: p.opts.FadeOutMillis,
		Bitrate:       p.opts.Bitrate,
	})
	if err != nil {
		return "", fmt.Errorf("cut %s [%s-%s] from %s: %w",
			interval.Label, timecode.MMSS(interval.Start), timecode.MMSS(end), target.Source, err)
	}

	report.Rows = append(report.Rows, ManifestRow{
		OutputPath: outputPath,
		Start:      interval.Start,
		End:        end,
	})
	logger.Debug("segment written",
		logging.Args(
			logging.String("output", outputPath),
			logging.String("start", timecode.MMSS(interval.Start)),
			logging.String("end", timecode.MMSS(end)),
		)...)
	return outputPath, nil
}

func (p *Pipeline) sourceDuration(ctx context.Context, source string) (float64, error) {
	if total, ok := p.durations[source]; ok {
		return total, nil
	}
	total, err := p.codec.Probe(ctx, source)
	if err != nil {
		return 0, err
	}
	p.durations[source] = total
	return total, nil
}

// finalize zips each target directory and writes the manifest. The two are
// independent: failure of one does not prevent the other.
func (p *Pipeline) finalize(logger *slog.Logger, targetDirs []string, written map[string][]string, report *Report) error {
	var errs []error

	if p.opts.ZipOutputs {
		for _, dir := range targetDirs {
			files := written[dir]
			if len(files) == 0 {
				continue
			}
			zipPath := filepath.Join(dir, "verses.zip")
			if err := writeArchive(zipPath, files); err != nil {
				errs = append(errs, err)
				logger.Error("archive failed", logging.Args(logging.String("zip", zipPath), logging.Error(err))...)
				continue
			}
			report.ZipPaths = append(report.ZipPaths, zipPath)
			logger.Info("archive written",
				logging.Args(logging.String("zip", zipPath), logging.Int("files", len(files)))...)
		}
	}

	if p.opts.ManifestPath != "" {
		if err := WriteManifest(p.opts.ManifestPath, report.Rows); err != nil {
			errs = append(errs, err)
			logger.Error("manifest failed", logging.Args(logging.String("path", p.opts.ManifestPath), logging.Error(err))...)
		} else {
			logger.Info("manifest written",
				logging.Args(logging.String("path", p.opts.ManifestPath), logging.Int("rows", len(report.Rows)))...)
		}
	}

	return errors.Join(errs...)
}
