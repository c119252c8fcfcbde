// Package timecode parses and formats the time notations accepted by the
// cutting pipeline.
//
// Two parsing conventions coexist and must never be conflated: ParseClock
// handles clock-style values ("1:02:03", "00:30") and plain decimal seconds,
// while ParseMinutesDot handles the workbook convention where "12.01" means
// twelve minutes and one second. Callers choose the function that matches
// their data source.
package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat reports text that matches no recognized time shape.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ParseClock converts "ss", "mm:ss", or "h:mm:ss" into seconds. The rightmost
// field may be fractional; every preceding field is one unit more significant
// (x60 per level). Leading/trailing whitespace is ignored.
func ParseClock(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidTimeFormat)
	}

	if !strings.Contains(trimmed, ":") {
		seconds, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
		if seconds < 0 {
			return 0, fmt.Errorf("%w: negative value %q", ErrInvalidTimeFormat, text)
		}
		return seconds, nil
	}

	fields := strings.Split(trimmed, ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	total := 0.0
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
		var value float64
		if i == len(fields)-1 {
			parsed, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
			}
			value = parsed
		} else {
			parsed, err := strconv.Atoi(field)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
			}
			value = float64(parsed)
		}
		if value < 0 {
			return 0, fmt.Errorf("%w: negative field in %q", ErrInvalidTimeFormat, text)
		}
		total = total*60 + value
	}
	return total, nil
}

// ParseMinutesDot converts a workbook time cell into seconds. "M.SS" is M
// whole minutes plus a two-digit seconds component, so "0.30" is 30 seconds
// and "12.01" is 721 seconds. A single fractional digit counts as tens of
// seconds and the seconds component clamps to [0, 59]. Values containing a
// colon fall back to ParseClock; a bare integer is whole minutes.
func ParseMinutesDot(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidTimeFormat)
	}

	if strings.Contains(trimmed, ":") {
		return ParseClock(trimmed)
	}

	if !strings.Contains(trimmed, ".") {
		minutes, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
		if minutes < 0 {
			return 0, fmt.Errorf("%w: negative value %q", ErrInvalidTimeFormat, text)
		}
		return minutes * 60, nil
	}

	minutesPart, secondsPart, _ := strings.Cut(trimmed, ".")
	minutes := 0
	if minutesPart != "" {
		parsed, err := strconv.Atoi(minutesPart)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
		minutes = parsed
	}
	if minutes < 0 {
		return 0, fmt.Errorf("%w: negative value %q", ErrInvalidTimeFormat, text)
	}

	digits := make([]rune, 0, len(secondsPart))
	for _, r := range secondsPart {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}

	seconds := 0
	switch {
	case len(digits) == 0:
		if secondsPart != "" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
	case len(digits) == 1:
		seconds = int(digits[0]-'0') * 10
	default:
		seconds = int(digits[0]-'0')*10 + int(digits[1]-'0')
	}
	if seconds > 59 {
		seconds = 59
	}

	return float64(minutes*60 + seconds), nil
}

// FormatSeconds renders a seconds value with fixed 3-decimal precision, the
// form used throughout manifest output.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

// MMSS renders a seconds value as zero-padded "mm:ss", rounding to the
// nearest whole second. Used for previews and log lines, never for manifests.
func MMSS(seconds float64) string {
	total := int(seconds + 0.5)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
