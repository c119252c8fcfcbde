package cutplan

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sourceSeparators are the accepted name/path separators in an input-list
// file; the earliest occurrence in a line wins.
const sourceSeparators = ",\t|"

// ResolveSources maps every sheet to the audio file that feeds it.
//
// Without a list file every sheet maps to defaultInput. With one, explicit
// name entries win (last entry for a repeated name wins), bare-path entries
// fill the remaining sheets positionally in the order given, and defaultInput
// is deliberately not used as a fallback: a sheet the list leaves unmapped is
// an UnresolvedSourceError, as is an explicit name the workbook lacks.
// Relative paths in the list resolve against the list file's directory.
func ResolveSources(sheets []string, defaultInput, listPath string) (map[string]string, error) {
	if listPath == "" {
		if strings.TrimSpace(defaultInput) == "" {
			return nil, &UnresolvedSourceError{Detail: "no input audio and no input list given"}
		}
		mapping := make(map[string]string, len(sheets))
		for _, sheet := range sheets {
			mapping[sheet] = defaultInput
		}
		return mapping, nil
	}

	explicit, positional, err := parseSourceList(listPath)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(sheets))
	for _, sheet := range sheets {
		known[sheet] = struct{}{}
	}
	for name := range explicit {
		if _, ok := known[name]; !ok {
			return nil, &UnresolvedSourceError{Sheet: name, Detail: "input list names a sheet the workbook does not contain"}
		}
	}

	mapping := make(map[string]string, len(sheets))
	next := 0
	for _, sheet := range sheets {
		if path, ok := explicit[sheet]; ok {
			mapping[sheet] = path
			continue
		}
		if next < len(positional) {
			mapping[sheet] = positional[next]
			next++
			continue
		}
		return nil, &UnresolvedSourceError{Sheet: sheet, Detail: "no entry left in the input list"}
	}
	return mapping, nil
}

// parseSourceList reads an input-list file: blank lines and full-line #
// comments are ignored, every other line is either a bare audio path or a
// "sheet name<sep>path" pair.
func parseSourceList(path string) (map[string]string, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input list: %w", err)
	}
	defer file.Close()

	baseDir := filepath.Dir(path)
	explicit := map[string]string{}
	var positional []string

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sep := strings.IndexAny(line, sourceSeparators)
		if sep < 0 {
			positional = append(positional, resolveListPath(baseDir, line))
			continue
		}

		name := strings.TrimSpace(line[:sep])
		audioPath := strings.TrimSpace(line[sep+1:])
		if name == "" || audioPath == "" {
			return nil, nil, specErrorf("sources", "%s line %d: expected name and path around %q", path, lineNo, line[sep:sep+1])
		}
		explicit[name] = resolveListPath(baseDir, audioPath)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read input list: %w", err)
	}
	return explicit, positional, nil
}

func resolveListPath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
