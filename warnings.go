package voxpdf

import (
	"fmt"
	"strings"
)

// WarningCode classifies a non-fatal extraction issue
type WarningCode int

const (
	// WarnNoText marks a page that produced no words, typically a scanned
	// or image-only page
	WarnNoText WarningCode = iota + 1

	// WarnOutlineUnreadable marks a document whose outline could not be
	// read; the table of contents is empty
	WarnOutlineUnreadable
)

// String returns a string representation of the warning code
func (c WarningCode) String() string {
	switch c {
	case WarnNoText:
		return "no-text"
	case WarnOutlineUnreadable:
		return "outline-unreadable"
	default:
		return "unknown"
	}
}

// Warning describes an issue that did not stop extraction but may affect
// the result. Page is -1 for document-level warnings.
type Warning struct {
	Code    WarningCode
	Page    int
	Message string
}

// String returns the warning as a single line
func (w Warning) String() string {
	if w.Page < 0 {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("page %d: %s: %s", w.Page, w.Code, w.Message)
}

// FormatWarnings joins warnings into a single semicolon-separated string
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
