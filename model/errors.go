package model

import (
	"errors"
	"fmt"
)

// Document-level, content-level and structural error conditions.
// Callers match them with errors.Is; the producing packages wrap them with
// context via fmt.Errorf("...: %w", err).
var (
	// ErrInvalidDocument indicates the file is missing, corrupted or cannot
	// be parsed as a PDF. Fatal for that open attempt.
	ErrInvalidDocument = errors.New("invalid PDF document")

	// ErrIO indicates an operating system level read failure.
	ErrIO = errors.New("i/o error")

	// ErrOutOfMemory indicates an allocation failure reported by the engine.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrInvalidText indicates text that cannot cross the boundary API
	// (for example, text containing NUL bytes).
	ErrInvalidText = errors.New("invalid text")

	// ErrContentDecode indicates every decode strategy failed for a page.
	ErrContentDecode = errors.New("content stream could not be decoded")

	// ErrOutlineCorrupt indicates a malformed outline tree. It never fails
	// a document open; callers degrade to an empty table of contents.
	ErrOutlineCorrupt = errors.New("corrupt document outline")
)

// PageNotFoundError reports a page index outside [0, PageCount).
// It does not invalidate the open document.
type PageNotFoundError struct {
	Page      int
	PageCount int
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("page %d not found (document has %d pages)", e.Page, e.PageCount)
}

// CheckPage returns a *PageNotFoundError if page is outside [0, pageCount)
func CheckPage(page, pageCount int) error {
	if page < 0 || page >= pageCount {
		return &PageNotFoundError{Page: page, PageCount: pageCount}
	}
	return nil
}

// IsPageNotFound reports whether err is or wraps a *PageNotFoundError
func IsPageNotFound(err error) bool {
	var pnf *PageNotFoundError
	return errors.As(err, &pnf)
}
