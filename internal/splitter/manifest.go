package splitter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"versecut/internal/timecode"
)

// ManifestRow records one written segment: the output path and the cut range
// actually used after clamping.
type ManifestRow struct {
	OutputPath string
	Start      float64
	End        float64
}

// Duration returns the segment length in seconds.
func (r ManifestRow) Duration() float64 {
	return r.End - r.Start
}

// WriteManifest writes the manifest CSV: header output_path,start,end,duration
// and one row per written segment, in cutting order, times at fixed 3-decimal
// precision.
func WriteManifest(path string, rows []ManifestRow) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("manifest dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"output_path", "start", "end", "duration"}); err != nil {
		return fmt.Errorf("write manifest header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.OutputPath,
			timecode.FormatSeconds(row.Start),
			timecode.FormatSeconds(row.End),
			timecode.FormatSeconds(row.Duration()),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write manifest row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush manifest: %w", err)
	}
	return file.Close()
}
