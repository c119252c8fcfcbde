package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"versecut/internal/bookend"
	"versecut/internal/deps"
	"versecut/internal/media/codec"
)

func newBookendCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var beginMusic string
	var endMusic string
	var prefix string
	var extensions []string
	var bitrate string
	var skipExisting bool

	cmd := &cobra.Command{
		Use:   "bookend DIRECTORY",
		Short: "Prepend and append music clips to every audio file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if beginMusic == "" {
				beginMusic = cfg.Bookend.BeginMusic
			}
			if endMusic == "" {
				endMusic = cfg.Bookend.EndMusic
			}
			if prefix == "" {
				prefix = cfg.Bookend.Prefix
			}
			if len(extensions) == 0 {
				extensions = cfg.Bookend.Extensions
			}
			if bitrate == "" {
				bitrate = cfg.Output.Bitrate
			}

			if err := deps.FirstMissing(deps.CheckBinaries(deps.FFmpegRequirements(cfg.FFmpegBinary(), cfg.FFprobeBinary()))); err != nil {
				return err
			}

			engine := codec.NewCLI(
				codec.WithBinary(cfg.FFmpegBinary()),
				codec.WithProbeBinary(cfg.FFprobeBinary()),
			)
			processor := bookend.New(engine, logger)
			report, err := processor.Run(cmd.Context(), bookend.Options{
				InputDir:     args[0],
				OutputDir:    outputDir,
				BeginMusic:   beginMusic,
				EndMusic:     endMusic,
				Prefix:       prefix,
				Extensions:   extensions,
				Bitrate:      bitrate,
				SkipExisting: skipExisting,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d file(s) to %s\n", len(report.Written), report.OutputDir)
			if report.Skipped > 0 {
				fmt.Fprintf(out, "Skipped %d existing file(s)\n", report.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (defaults to DIRECTORY/bookended)")
	cmd.Flags().StringVar(&beginMusic, "begin", "", "Music clip to prepend")
	cmd.Flags().StringVar(&endMusic, "end", "", "Music clip to append")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Output filename prefix")
	cmd.Flags().StringSliceVar(&extensions, "extensions", nil, "Audio extensions to process (e.g. .mp3,.wav)")
	cmd.Flags().StringVar(&bitrate, "bitrate", "", "Output audio bitrate for mp3 targets")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Skip files whose bookended output already exists")

	return cmd
}
