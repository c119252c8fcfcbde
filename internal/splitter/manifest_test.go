package splitter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "timings.csv")
	rows := []ManifestRow{
		{OutputPath: "out/Verse_1.mp3", Start: 30, End: 45},
		{OutputPath: "out/Verse_2.mp3", Start: 45, End: 60.5},
	}
	if err := WriteManifest(path, rows); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "output_path,start,end,duration\n" +
		"out/Verse_1.mp3,30.000,45.000,15.000\n" +
		"out/Verse_2.mp3,45.000,60.500,15.500\n"
	if string(body) != want {
		t.Fatalf("manifest = %q, want %q", body, want)
	}
}

func TestWriteManifestIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	rows := []ManifestRow{{OutputPath: "a.mp3", Start: 0, End: 1}}

	first := filepath.Join(dir, "one.csv")
	second := filepath.Join(dir, "two.csv")
	if err := WriteManifest(first, rows); err != nil {
		t.Fatal(err)
	}
	if err := WriteManifest(second, rows); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if string(a) != string(b) {
		t.Fatalf("manifests differ: %q vs %q", a, b)
	}
}
