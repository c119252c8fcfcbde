package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplitRejectsConflictingTimestampModes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, _, err := runCLI(t, "split", "-i", "album.mp3", "--timestamps", "cuts.csv", "--timestamps-excel", "book.xlsx")
	if err == nil {
		t.Fatal("expected error for both timestamp modes")
	}
	requireContains(t, err.Error(), "not both")
}

func TestSplitInputListRequiresWorkbook(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, _, err := runCLI(t, "split", "-i", "album.mp3", "--input-list", "sources.txt")
	if err == nil {
		t.Fatal("expected error for --input-list without --timestamps-excel")
	}
	requireContains(t, err.Error(), "--timestamps-excel")
}

func TestSplitRequiresInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, _, err := runCLI(t, "split")
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	requireContains(t, err.Error(), "--input is required")
}

func TestSplitRejectsUnknownFailurePolicy(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, _, err := runCLI(t, "split", "-i", "album.mp3", "--on-error", "retry")
	if err == nil {
		t.Fatal("expected error for unknown --on-error value")
	}
	requireContains(t, err.Error(), "abort or skip")
}

func TestSplitPreviewGrid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out, _, err := runCLI(t,
		"split", "-i", "album.mp3", "-o", t.TempDir(),
		"--start", "1:00", "--count", "3", "--length", "0:30",
		"--preview",
	)
	if err != nil {
		t.Fatalf("split --preview: %v", err)
	}
	requireContains(t, out, "Verse_1")
	requireContains(t, out, "Verse_3")
	requireContains(t, out, "02:00")
	requireContains(t, out, "02:30")
	requireContains(t, out, "album.mp3")
	if _, statErr := os.Stat("verses_out"); statErr == nil {
		t.Fatal("preview must not create output directories")
	}
}

func TestSplitPreviewCSV(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "cuts.csv")
	content := "start,end\n0:10,0:40\n1:00,1:25\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	out, _, err := runCLI(t,
		"split", "-i", "album.mp3", "-o", t.TempDir(),
		"--timestamps", csvPath, "--prefix", "Track_",
		"--preview",
	)
	if err != nil {
		t.Fatalf("split --preview: %v", err)
	}
	requireContains(t, out, "Track_1")
	requireContains(t, out, "Track_2")
	requireContains(t, out, "00:40")
	requireContains(t, out, "25.000")
}

func TestSplitSurfacesPlanErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "cuts.csv")
	if err := os.WriteFile(csvPath, []byte("start,end\n0:40,0:10\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	_, _, err := runCLI(t, "split", "-i", "album.mp3", "--timestamps", csvPath, "--preview")
	if err == nil {
		t.Fatal("expected error for end before start")
	}
}
