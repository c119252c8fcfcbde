package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewConsoleFormatsHeaderAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger = NewComponentLogger(logger, "splitter")
	logger.Info("segment written", Args(String("label", "Verse_1"), Float64("start", 30))...)

	out := buf.String()
	if !strings.Contains(out, "INFO [splitter] segment written") {
		t.Fatalf("missing header line: %q", out)
	}
	if !strings.Contains(out, "- label: Verse_1") {
		t.Fatalf("missing label field: %q", out)
	}
	if !strings.Contains(out, "- start: 30") {
		t.Fatalf("missing start field: %q", out)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info should be suppressed at warn level: %q", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "WARN") {
		t.Fatalf("warn line missing: %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
}
