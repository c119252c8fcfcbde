package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// SanitizeFileName converts free-form label text into a filesystem-safe file
// stem. Letters, digits, underscores, hyphens, and dots are kept, runs of
// whitespace become underscores, and everything else is dropped. When nothing
// survives, fallback is returned instead.
func SanitizeFileName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '_' || r == '-' || r == '.':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}

// NormalizeHeader reduces a header cell to its lowercase alphanumeric core so
// that "Chapter Sloka", "chapter_sloka", and " CHAPTER  SLOKA " all compare
// equal.
func NormalizeHeader(cell string) string {
	var b strings.Builder
	b.Grow(len(cell))
	for _, r := range lowerCaser.String(cell) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
