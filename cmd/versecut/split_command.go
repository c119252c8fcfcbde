package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"versecut/internal/config"
	"versecut/internal/cutplan"
	"versecut/internal/deps"
	"versecut/internal/media/codec"
	"versecut/internal/splitter"
	"versecut/internal/timecode"
)

type splitFlags struct {
	input           string
	output          string
	start           string
	count           int
	length          string
	timestamps      string
	timestampsExcel string
	inputList       string
	prefix          string
	bitrate         string
	fadeIn          int
	fadeOut         int
	makeZip         bool
	csvOut          string
	onError         string
	preview         bool
}

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var flags splitFlags

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split audio into labeled verse segments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			applySplitDefaults(&flags, cfg)
			if err := validateSplitFlags(&flags); err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			builder, err := newPlanBuilder(&flags, logger)
			if err != nil {
				return err
			}
			plan, err := builder.Produce()
			if err != nil {
				return err
			}

			mapping, err := cutplan.ResolveSources(plan.SheetNames(), flags.input, flags.inputList)
			if err != nil {
				return err
			}
			plan.ApplySources(mapping)

			if flags.preview {
				fmt.Fprintln(cmd.OutOrStdout(), renderPlanPreview(plan))
				return nil
			}

			if err := deps.FirstMissing(deps.CheckBinaries(deps.FFmpegRequirements(cfg.FFmpegBinary(), cfg.FFprobeBinary()))); err != nil {
				return err
			}

			engine := codec.NewCLI(
				codec.WithBinary(cfg.FFmpegBinary()),
				codec.WithProbeBinary(cfg.FFprobeBinary()),
			)
			pipeline := splitter.New(engine, logger, splitter.Options{
				OutputDir:       flags.output,
				Bitrate:         flags.bitrate,
				FadeInMillis:    flags.fadeIn,
				FadeOutMillis:   flags.fadeOut,
				ZipOutputs:      flags.makeZip,
				ManifestPath:    flags.csvOut,
				ContinueOnError: flags.onError == "skip",
			})

			report, err := pipeline.Run(cmd.Context(), plan)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d file(s) to %s\n", len(report.Written), flags.output)
			for _, zipPath := range report.ZipPaths {
				fmt.Fprintf(out, "Archive: %s\n", zipPath)
			}
			if flags.csvOut != "" {
				fmt.Fprintf(out, "Manifest: %s\n", flags.csvOut)
			}
			if report.Skipped > 0 || report.Failed > 0 {
				fmt.Fprintf(out, "Skipped %d and failed %d segment(s); see log for details\n", report.Skipped, report.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input audio file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output directory")
	cmd.Flags().StringVar(&flags.start, "start", "0", "Grid mode start offset (seconds or mm:ss)")
	cmd.Flags().IntVar(&flags.count, "count", 20, "Grid mode segment count")
	cmd.Flags().StringVar(&flags.length, "length", "15", "Grid mode segment length (seconds or mm:ss)")
	cmd.Flags().StringVar(&flags.timestamps, "timestamps", "", "CSV file with start/end or start/duration columns")
	cmd.Flags().StringVar(&flags.timestampsExcel, "timestamps-excel", "", "Workbook with one sheet per chapter")
	cmd.Flags().StringVar(&flags.inputList, "input-list", "", "File mapping workbook sheets to audio sources")
	cmd.Flags().StringVar(&flags.prefix, "prefix", "", "Output filename prefix for grid and CSV modes")
	cmd.Flags().StringVar(&flags.bitrate, "bitrate", "", "Output audio bitrate (e.g. 192k)")
	cmd.Flags().IntVar(&flags.fadeIn, "fade-in", -1, "Fade-in duration in milliseconds")
	cmd.Flags().IntVar(&flags.fadeOut, "fade-out", -1, "Fade-out duration in milliseconds")
	cmd.Flags().BoolVar(&flags.makeZip, "zip", false, "Bundle each output directory into verses.zip")
	cmd.Flags().StringVar(&flags.csvOut, "csv", "", "Write a timings manifest CSV to this path")
	cmd.Flags().StringVar(&flags.onError, "on-error", "abort", "Segment failure policy (abort or skip)")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "Show the cutting plan without writing audio")

	return cmd
}

// applySplitDefaults fills flags the user left unset from configuration.
func applySplitDefaults(flags *splitFlags, cfg *config.Config) {
	if flags.output == "" {
		flags.output = cfg.Output.Dir
	}
	if flags.prefix == "" {
		flags.prefix = cfg.Output.Prefix
	}
	if flags.bitrate == "" {
		flags.bitrate = cfg.Output.Bitrate
	}
	if flags.fadeIn < 0 {
		flags.fadeIn = cfg.Fades.InMillis
	}
	if flags.fadeOut < 0 {
		flags.fadeOut = cfg.Fades.OutMillis
	}
}

func validateSplitFlags(flags *splitFlags) error {
	if flags.timestamps != "" && flags.timestampsExcel != "" {
		return errors.New("use either --timestamps or --timestamps-excel, not both")
	}
	if flags.inputList != "" && flags.timestampsExcel == "" {
		return errors.New("--input-list requires --timestamps-excel")
	}
	if flags.input == "" && flags.inputList == "" {
		return errors.New("--input is required")
	}
	switch flags.onError {
	case "abort", "skip":
	default:
		return fmt.Errorf("--on-error must be abort or skip, got %q", flags.onError)
	}
	return nil
}

// newPlanBuilder selects the interval strategy from the mutually exclusive
// mode flags. Grid mode is the fallback when no timestamp file is given.
func newPlanBuilder(flags *splitFlags, logger *slog.Logger) (cutplan.Builder, error) {
	switch {
	case flags.timestampsExcel != "":
		return cutplan.Workbook{Path: flags.timestampsExcel, Prefix: flags.prefix, Logger: logger}, nil
	case flags.timestamps != "":
		return cutplan.CSVFile{Path: flags.timestamps, Prefix: flags.prefix}, nil
	default:
		start, err := timecode.ParseClock(flags.start)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		length, err := timecode.ParseClock(flags.length)
		if err != nil {
			return nil, fmt.Errorf("--length: %w", err)
		}
		return cutplan.Grid{Start: start, Count: flags.count, Length: length, Prefix: flags.prefix}, nil
	}
}

func renderPlanPreview(plan cutplan.Plan) string {
	rows := make([][]string, 0, plan.IntervalCount())
	for _, target := range plan.Targets {
		dir := target.Subdir
		if dir == "" {
			dir = "."
		}
		source := ""
		if target.Source != "" {
			source = filepath.Base(target.Source)
		}
		for _, interval := range target.Intervals {
			rows = append(rows, []string{
				dir,
				interval.Label,
				timecode.MMSS(interval.Start),
				timecode.MMSS(interval.End),
				timecode.FormatSeconds(interval.Duration()),
				source,
			})
		}
	}
	headers := []string{"Dir", "Label", "Start", "End", "Duration", "Source"}
	return renderGrid(headers, rows, 2, 3, 4)
}
