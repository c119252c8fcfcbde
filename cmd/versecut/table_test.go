package main

import (
	"strings"
	"testing"
)

func TestRenderGridTabSeparatedWithoutTerminal(t *testing.T) {
	// Test binaries run without a terminal on stdout, so the plain form is
	// what pipelines and these assertions see.
	out := renderGrid(
		[]string{"Label", "Start", "End"},
		[][]string{
			{"Verse_1", "01:00", "01:30"},
			{"Verse_2", "01:30"},
		},
	)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), out)
	}
	if lines[0] != "Label\tStart\tEnd" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "Verse_1\t01:00\t01:30" {
		t.Fatalf("row = %q", lines[1])
	}
	if lines[2] != "Verse_2\t01:30" {
		t.Fatalf("short row = %q", lines[2])
	}
}

func TestRenderGridEmptyHeaders(t *testing.T) {
	if out := renderGrid(nil, [][]string{{"x"}}); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
