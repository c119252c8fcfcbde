package bookend

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"versecut/internal/media/codec"
)

type fakeCodec struct {
	concats []codec.ConcatRequest
}

func (f *fakeCodec) Probe(context.Context, string) (float64, error) { return 0, nil }

func (f *fakeCodec) Cut(context.Context, codec.CutRequest) error { return nil }

func (f *fakeCodec) Concat(_ context.Context, req codec.ConcatRequest) error {
	f.concats = append(f.concats, req)
	return os.WriteFile(req.Output, []byte("audio"), 0o644)
}

func fixture(t *testing.T) (string, Options) {
	t.Helper()
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "verses")
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Verse_2.mp3", "Verse_1.mp3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(inputDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	begin := filepath.Join(dir, "begin.mp3")
	end := filepath.Join(dir, "end.mp3")
	for _, clip := range []string{begin, end} {
		if err := os.WriteFile(clip, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return inputDir, Options{
		InputDir:   inputDir,
		BeginMusic: begin,
		EndMusic:   end,
		Prefix:     "bookended_",
		Extensions: []string{".mp3"},
		Bitrate:    "192k",
	}
}

func TestRunBookendsEveryMatchingFileInOrder(t *testing.T) {
	inputDir, opts := fixture(t)
	fake := &fakeCodec{}

	report, err := New(fake, nil).Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.OutputDir != filepath.Join(inputDir, "bookended") {
		t.Fatalf("output dir = %s", report.OutputDir)
	}
	if len(report.Written) != 2 {
		t.Fatalf("written = %v", report.Written)
	}
	// Sorted order, non-audio files excluded.
	if filepath.Base(report.Written[0]) != "bookended_Verse_1.mp3" {
		t.Fatalf("first output = %s", report.Written[0])
	}

	first := fake.concats[0]
	if len(first.Inputs) != 3 {
		t.Fatalf("concat inputs = %v", first.Inputs)
	}
	if filepath.Base(first.Inputs[0]) != "begin.mp3" ||
		filepath.Base(first.Inputs[1]) != "Verse_1.mp3" ||
		filepath.Base(first.Inputs[2]) != "end.mp3" {
		t.Fatalf("concat order = %v", first.Inputs)
	}
	if first.Bitrate != "192k" {
		t.Fatalf("bitrate = %q", first.Bitrate)
	}
}

func TestRunSkipsExistingDestinations(t *testing.T) {
	inputDir, opts := fixture(t)
	opts.SkipExisting = true

	outputDir := filepath.Join(inputDir, "bookended")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(outputDir, "bookended_Verse_1.mp3")
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	fake := &fakeCodec{}
	report, err := New(fake, nil).Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Written) != 1 || report.Skipped != 1 {
		t.Fatalf("written=%d skipped=%d", len(report.Written), report.Skipped)
	}

	body, _ := os.ReadFile(existing)
	if string(body) != "old" {
		t.Fatal("existing file was overwritten")
	}
}

func TestRunRejectsMissingInputs(t *testing.T) {
	_, opts := fixture(t)

	missing := opts
	missing.InputDir = filepath.Join(t.TempDir(), "nope")
	if _, err := New(&fakeCodec{}, nil).Run(context.Background(), missing); err == nil {
		t.Fatal("expected error for missing input dir")
	}

	badClip := opts
	badClip.BeginMusic = filepath.Join(t.TempDir(), "nope.mp3")
	if _, err := New(&fakeCodec{}, nil).Run(context.Background(), badClip); err == nil {
		t.Fatal("expected error for missing begin clip")
	}

	noExt := opts
	noExt.Extensions = []string{" ", ""}
	if _, err := New(&fakeCodec{}, nil).Run(context.Background(), noExt); err == nil {
		t.Fatal("expected error for empty extension list")
	}
}

func TestNormalizeExtensions(t *testing.T) {
	got := normalizeExtensions([]string{"mp3", ".WAV", " ", "ogg "})
	if len(got) != 3 || got[0] != ".mp3" || got[1] != ".wav" || got[2] != ".ogg" {
		t.Fatalf("normalizeExtensions = %v", got)
	}
}
