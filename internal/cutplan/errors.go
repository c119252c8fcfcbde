package cutplan

import "fmt"

// SpecError reports a malformed cut specification: bad grid parameters, an
// unusable CSV header or row, or a workbook sheet missing required columns.
// Spec errors are fatal before any audio is written.
type SpecError struct {
	Mode   string
	Detail string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid %s spec: %s", e.Mode, e.Detail)
}

func specErrorf(mode, format string, args ...any) *SpecError {
	return &SpecError{Mode: mode, Detail: fmt.Sprintf(format, args...)}
}

// UnresolvedSourceError reports a workbook sheet that has data rows but no
// mapped audio source, or an input-list entry naming a sheet the workbook
// does not contain.
type UnresolvedSourceError struct {
	Sheet  string
	Detail string
}

func (e *UnresolvedSourceError) Error() string {
	return fmt.Sprintf("unresolved source for sheet %q: %s", e.Sheet, e.Detail)
}
