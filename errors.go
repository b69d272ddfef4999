package anxiety

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal error kinds. Scanning stops at the first of them. Use errors.Is to
// test for a kind and errors.As with *LineError for the location.
var (
	ErrDuplicateOpen  = errors.New("region is already open")
	ErrAmbiguousClose = errors.New("ambiguous close without region name")
	ErrUnknownRegion  = errors.New("unknown region")
	ErrNotOpen        = errors.New("region is not open")
	ErrEmptyFile      = errors.New("empty file")
	ErrInvalidUTF8    = errors.New("invalid UTF-8 text")
)

// LineError locates a fatal scanning error in the input.
type LineError struct {
	File string
	Line int
	// Region name, if any
	Name string
	// Regions open when the error occurred; only set for ErrAmbiguousClose.
	Open []string
	err  error
}

func (e *LineError) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "%s:%d: ", e.File, e.Line)
	} else {
		fmt.Fprintf(&sb, "%s: ", e.File)
	}
	if e.Name != "" {
		fmt.Fprintf(&sb, "'%s': ", e.Name)
	}
	sb.WriteString(e.err.Error())
	if len(e.Open) > 0 {
		fmt.Fprintf(&sb, " (open: %s)", strings.Join(e.Open, ", "))
	}
	return sb.String()
}

func (e *LineError) Unwrap() error { return e.err }
