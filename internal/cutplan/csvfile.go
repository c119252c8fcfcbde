package cutplan

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"versecut/internal/textutil"
	"versecut/internal/timecode"
)

// CSVFile produces intervals from a timestamps CSV with a required header row
// of either {start, end} or {start, duration} columns. Row order is
// authoritative; overlapping or out-of-order rows pass through untouched.
type CSVFile struct {
	Path   string
	Prefix string
}

var (
	csvStartKeywords    = []string{"start", "begin"}
	csvEndKeywords      = []string{"end", "stop", "finish"}
	csvDurationKeywords = []string{"duration", "length", "dur"}
)

// Produce implements Builder.
func (c CSVFile) Produce() (Plan, error) {
	file, err := os.Open(c.Path)
	if err != nil {
		return Plan{}, fmt.Errorf("open timestamps csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Plan{}, specErrorf("csv", "%s: %v", c.Path, err)
	}
	if len(rows) == 0 {
		return Plan{}, specErrorf("csv", "%s is empty", c.Path)
	}

	header := rows[0]
	if len(header) > 0 {
		// Tolerate a UTF-8 BOM on the first cell.
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	normalized := make([]string, len(header))
	for i, cell := range header {
		normalized[i] = textutil.NormalizeHeader(cell)
	}

	idxStart := findColumn(normalized, csvStartKeywords)
	idxEnd := findColumn(normalized, csvEndKeywords)
	idxDuration := findColumn(normalized, csvDurationKeywords)

	if idxStart < 0 {
		return Plan{}, specErrorf("csv", "%s: header must name a start column", c.Path)
	}
	if idxEnd < 0 && idxDuration < 0 {
		return Plan{}, specErrorf("csv", "%s: header must name an end or duration column", c.Path)
	}

	var intervals []Interval
	for rowIdx, row := range rows[1:] {
		if rowIsBlank(row) {
			continue
		}
		line := rowIdx + 2 // 1-based, counting the header

		start, err := parseCSVCell(row, idxStart)
		if err != nil {
			return Plan{}, specErrorf("csv", "%s line %d: start: %v", c.Path, line, err)
		}

		var end float64
		if idxEnd >= 0 {
			end, err = parseCSVCell(row, idxEnd)
			if err != nil {
				return Plan{}, specErrorf("csv", "%s line %d: end: %v", c.Path, line, err)
			}
		} else {
			duration, err := parseCSVCell(row, idxDuration)
			if err != nil {
				return Plan{}, specErrorf("csv", "%s line %d: duration: %v", c.Path, line, err)
			}
			end = start + duration
		}

		if end <= start {
			return Plan{}, specErrorf("csv", "%s line %d: end %s not after start %s",
				c.Path, line, timecode.FormatSeconds(end), timecode.FormatSeconds(start))
		}

		intervals = append(intervals, Interval{
			Start: start,
			End:   end,
			Label: c.Prefix + strconv.Itoa(len(intervals)+1),
		})
	}

	if len(intervals) == 0 {
		return Plan{}, specErrorf("csv", "%s contains no data rows", c.Path)
	}
	return Plan{Targets: []Target{{Intervals: intervals}}}, nil
}

// findColumn returns the index of the first header cell equal to or prefixed
// by one of the keywords, or -1.
func findColumn(normalized []string, keywords []string) int {
	for idx, cell := range normalized {
		if cell == "" {
			continue
		}
		for _, keyword := range keywords {
			if cell == keyword || strings.HasPrefix(cell, keyword) {
				return idx
			}
		}
	}
	return -1
}

func parseCSVCell(row []string, idx int) (float64, error) {
	if idx >= len(row) || strings.TrimSpace(row[idx]) == "" {
		return 0, fmt.Errorf("missing value")
	}
	return timecode.ParseClock(row[idx])
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

var _ Builder = CSVFile{}
