package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name     string
		fallback string
		want     string
	}{
		{"Chapter 1 Sloka 4", "x", "Chapter_1_Sloka_4"},
		{"  1.4  ", "x", "1.4"},
		{"../../etc/passwd", "x", "etcpasswd"},
		{"***", "fallback", "fallback"},
		{"", "Verse_01", "Verse_01"},
		{"._hidden_.", "x", "hidden"},
	}
	for _, tc := range cases {
		if got := SanitizeFileName(tc.name, tc.fallback); got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chapter Sloka", "chaptersloka"},
		{" BEGINNING ", "beginning"},
		{"End-Time", "endtime"},
		{"duration (s)", "durations"},
	}
	for _, tc := range cases {
		if got := NormalizeHeader(tc.in); got != tc.want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
