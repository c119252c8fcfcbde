package cutplan

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"versecut/internal/fileutil"
	"versecut/internal/logging"
	"versecut/internal/textutil"
	"versecut/internal/timecode"
)

// Workbook produces one target per spreadsheet sheet, in workbook order. Each
// data row supplies a verse label and beginning/ending cells in the
// minutes-dot convention. Unusable rows are skipped with a warning rather
// than failing the run, since real workbooks mix annotations with data.
type Workbook struct {
	Path   string
	Prefix string
	Logger *slog.Logger
}

var (
	workbookLabelKeywords = map[string]struct{}{
		"chaptersloka": {}, "verse": {}, "sloka": {}, "name": {}, "label": {},
	}
	workbookBeginKeywords = map[string]struct{}{
		"beginning": {}, "begin": {}, "start": {},
	}
	workbookEndKeywords = map[string]struct{}{
		"ending": {}, "end": {}, "finish": {},
	}
)

// Produce implements Builder.
func (w Workbook) Produce() (Plan, error) {
	logger := w.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	book, err := excelize.OpenFile(w.Path)
	if err != nil {
		return Plan{}, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	var plan Plan
	usedDirNames := map[string]struct{}{}

	for _, sheet := range book.GetSheetList() {
		rows, err := book.GetRows(sheet)
		if err != nil {
			return Plan{}, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		target, err := w.produceSheet(sheet, rows, logger)
		if err != nil {
			return Plan{}, err
		}
		if len(target.Intervals) == 0 {
			continue
		}

		base := textutil.SanitizeFileName(sheet, "chapter")
		target.Subdir = fileutil.UniqueName(base, usedDirNames)
		plan.Targets = append(plan.Targets, target)
	}

	if len(plan.Targets) == 0 {
		return Plan{}, specErrorf("workbook", "%s contains no usable data rows", w.Path)
	}
	return plan, nil
}

func (w Workbook) produceSheet(sheet string, rows [][]string, logger *slog.Logger) (Target, error) {
	headerIdx := -1
	for idx, row := range rows {
		if !rowIsBlank(row) {
			headerIdx = idx
			break
		}
	}
	if headerIdx < 0 {
		return Target{Sheet: sheet}, nil
	}

	idxLabel, idxBegin, idxEnd := -1, -1, -1
	for idx, cell := range rows[headerIdx] {
		normalized := textutil.NormalizeHeader(cell)
		if idxLabel < 0 {
			if _, ok := workbookLabelKeywords[normalized]; ok {
				idxLabel = idx
			}
		}
		if idxBegin < 0 {
			if _, ok := workbookBeginKeywords[normalized]; ok {
				idxBegin = idx
			}
		}
		if idxEnd < 0 {
			if _, ok := workbookEndKeywords[normalized]; ok {
				idxEnd = idx
			}
		}
	}
	if idxLabel < 0 || idxBegin < 0 || idxEnd < 0 {
		return Target{}, specErrorf("workbook",
			"sheet %q must contain Chapter Sloka, Beginning, and Ending columns", sheet)
	}

	target := Target{Sheet: sheet}
	for rowIdx, row := range rows[headerIdx+1:] {
		if rowIsBlank(row) {
			continue
		}

		label := cellAt(row, idxLabel)
		if label == "" {
			continue
		}

		beginText := cellAt(row, idxBegin)
		endText := cellAt(row, idxEnd)
		if beginText == "" || endText == "" {
			logger.Warn("skipping row without timestamps",
				logging.Args(logging.String("sheet", sheet), logging.String("label", label))...)
			continue
		}

		begin, err := timecode.ParseMinutesDot(beginText)
		if err != nil {
			logger.Warn("skipping row with unparsable beginning",
				logging.Args(logging.String("sheet", sheet), logging.String("label", label), logging.Error(err))...)
			continue
		}
		end, err := timecode.ParseMinutesDot(endText)
		if err != nil {
			logger.Warn("skipping row with unparsable ending",
				logging.Args(logging.String("sheet", sheet), logging.String("label", label), logging.Error(err))...)
			continue
		}
		if end <= begin {
			logger.Warn("skipping row whose ending does not follow its beginning",
				logging.Args(
					logging.String("sheet", sheet),
					logging.String("label", label),
					logging.String("beginning", timecode.MMSS(begin)),
					logging.String("ending", timecode.MMSS(end)),
				)...)
			continue
		}

		fallback := fmt.Sprintf("%s%02d", w.Prefix, rowIdx+1)
		target.Intervals = append(target.Intervals, Interval{
			Start: begin,
			End:   end,
			Label: textutil.SanitizeFileName(label, fallback),
		})
	}
	return target, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

var _ Builder = Workbook{}
