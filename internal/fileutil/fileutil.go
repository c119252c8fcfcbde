// Package fileutil contains small filesystem helpers used by the cutting
// pipeline and the bookend processor.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir (and any missing parents) with default permissions.
func EnsureDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("ensure dir: empty path")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure dir %s: %w", dir, err)
	}
	return nil
}

// UniquePath returns path if nothing exists there, otherwise the first
// "stem_2.ext", "stem_3.ext", ... variant that is free. Used to keep
// duplicate workbook labels from overwriting each other.
func UniquePath(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for suffix := 2; ; suffix++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, suffix, ext)
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

// UniqueName disambiguates name against taken, returning "name" or the first
// free "name_2", "name_3", ... variant and recording the result in taken.
// Used for per-sheet output directories whose sanitized names collide.
func UniqueName(name string, taken map[string]struct{}) string {
	candidate := name
	for suffix := 2; ; suffix++ {
		if _, exists := taken[candidate]; !exists {
			taken[candidate] = struct{}{}
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", name, suffix)
	}
}
