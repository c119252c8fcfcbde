package codec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"versecut/internal/media/ffprobe"
)

var commandContext = exec.CommandContext

// CutRequest describes one segment extraction.
type CutRequest struct {
	Source        string
	Output        string
	StartSeconds  float64
	EndSeconds    float64
	FadeInMillis  int
	FadeOutMillis int
	Bitrate       string
}

// ConcatRequest describes a concatenation of complete audio files.
type ConcatRequest struct {
	Inputs  []string
	Output  string
	Bitrate string
}

// Codec is the audio engine the pipeline delegates decode, slice, fade, and
// encode work to. Tests swap in fakes to avoid invoking the real binaries.
type Codec interface {
	Probe(ctx context.Context, path string) (float64, error)
	Cut(ctx context.Context, req CutRequest) error
	Concat(ctx context.Context, req ConcatRequest) error
}

// Option configures the CLI codec.
type Option func(*CLI)

// WithBinary overrides the default ffmpeg binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithProbeBinary overrides the default ffprobe binary name.
func WithProbeBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.probeBinary = binary
		}
	}
}

// CLI implements Codec on top of the ffmpeg and ffprobe command-line tools.
type CLI struct {
	binary      string
	probeBinary string
}

// NewCLI constructs a CLI codec using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg", probeBinary: "ffprobe"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Probe returns the total duration of the audio source in seconds. Sources
// without an audio stream are rejected.
func (c *CLI) Probe(ctx context.Context, path string) (float64, error) {
	result, err := ffprobe.Inspect(ctx, c.probeBinary, path)
	if err != nil {
		return 0, err
	}
	if result.AudioStreamCount() == 0 {
		return 0, fmt.Errorf("probe %s: no audio stream", path)
	}
	return result.DurationSeconds()
}

// Cut extracts [StartSeconds, EndSeconds) from the source, applies linear
// fades, and encodes the segment to the output path. Fades longer than the
// segment are clamped to its length.
func (c *CLI) Cut(ctx context.Context, req CutRequest) error {
	if strings.TrimSpace(req.Source) == "" {
		return errors.New("cut: source path required")
	}
	if strings.TrimSpace(req.Output) == "" {
		return errors.New("cut: output path required")
	}
	duration := req.EndSeconds - req.StartSeconds
	if duration <= 0 {
		return fmt.Errorf("cut: segment end %.3f not after start %.3f", req.EndSeconds, req.StartSeconds)
	}

	args := []string{
		"-v", "error", "-hide_banner", "-y",
		"-ss", formatSeconds(req.StartSeconds),
		"-t", formatSeconds(duration),
		"-i", req.Source,
	}
	if filter := fadeFilter(duration, req.FadeInMillis, req.FadeOutMillis); filter != "" {
		args = append(args, "-af", filter)
	}
	if req.Bitrate != "" {
		args = append(args, "-b:a", req.Bitrate)
	}
	args = append(args, req.Output)

	cmd := commandContext(ctx, c.binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("encode %s: %w: %s", req.Output, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Concat joins the inputs end to end and encodes the result to the output
// path using the concat demuxer.
func (c *CLI) Concat(ctx context.Context, req ConcatRequest) error {
	if len(req.Inputs) == 0 {
		return errors.New("concat: at least one input required")
	}
	if strings.TrimSpace(req.Output) == "" {
		return errors.New("concat: output path required")
	}

	listFile, err := writeConcatList(req.Inputs)
	if err != nil {
		return err
	}
	defer os.Remove(listFile)

	args := []string{
		"-v", "error", "-hide_banner", "-y",
		"-f", "concat", "-safe", "0",
		"-i", listFile,
	}
	if req.Bitrate != "" {
		args = append(args, "-b:a", req.Bitrate)
	}
	args = append(args, req.Output)

	cmd := commandContext(ctx, c.binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("concat %s: %w: %s", req.Output, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// fadeFilter builds the afade chain for a segment of the given duration in
// seconds. Returns "" when no fade applies.
func fadeFilter(duration float64, fadeInMillis, fadeOutMillis int) string {
	fadeIn := clampFade(float64(fadeInMillis)/1000, duration)
	fadeOut := clampFade(float64(fadeOutMillis)/1000, duration)

	var parts []string
	if fadeIn > 0 {
		parts = append(parts, fmt.Sprintf("afade=t=in:st=0:d=%.6f", fadeIn))
	}
	if fadeOut > 0 {
		start := duration - fadeOut
		if start < 0 {
			start = 0
		}
		parts = append(parts, fmt.Sprintf("afade=t=out:st=%.6f:d=%.6f", start, fadeOut))
	}
	return strings.Join(parts, ",")
}

func clampFade(fade, duration float64) float64 {
	if fade <= 0 {
		return 0
	}
	if fade > duration {
		return duration
	}
	return fade
}

func formatSeconds(seconds float64) string {
	return fmt.Sprintf("%.3f", seconds)
}

func writeConcatList(inputs []string) (string, error) {
	file, err := os.CreateTemp("", "versecut-concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("concat list: %w", err)
	}
	defer file.Close()

	for _, input := range inputs {
		absolute, err := filepath.Abs(input)
		if err != nil {
			os.Remove(file.Name())
			return "", fmt.Errorf("concat list: %w", err)
		}
		escaped := strings.ReplaceAll(absolute, "'", `'\''`)
		if _, err := fmt.Fprintf(file, "file '%s'\n", escaped); err != nil {
			os.Remove(file.Name())
			return "", fmt.Errorf("concat list: %w", err)
		}
	}
	return file.Name(), nil
}

var _ Codec = (*CLI)(nil)
