package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirCreatesNestedDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, err=%v", dir, err)
	}
}

func TestEnsureDirRejectsEmptyPath(t *testing.T) {
	if err := EnsureDir("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Verse_1.mp3")

	if got := UniquePath(path); got != path {
		t.Fatalf("UniquePath on free path = %q, want %q", got, path)
	}

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	second := UniquePath(path)
	if want := filepath.Join(dir, "Verse_1_2.mp3"); second != want {
		t.Fatalf("UniquePath = %q, want %q", second, want)
	}

	if err := os.WriteFile(second, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if got, want := UniquePath(path), filepath.Join(dir, "Verse_1_3.mp3"); got != want {
		t.Fatalf("UniquePath = %q, want %q", got, want)
	}
}

func TestUniqueName(t *testing.T) {
	taken := map[string]struct{}{}
	if got := UniqueName("Chapter_1", taken); got != "Chapter_1" {
		t.Fatalf("first UniqueName = %q", got)
	}
	if got := UniqueName("Chapter_1", taken); got != "Chapter_1_2" {
		t.Fatalf("second UniqueName = %q", got)
	}
	if got := UniqueName("Chapter_1", taken); got != "Chapter_1_3" {
		t.Fatalf("third UniqueName = %q", got)
	}
}
