package bridge

import (
	"errors"

	"github.com/tsawler/voxpdf/model"
)

// Status is the integer result code reported across the boundary
type Status int

const (
	StatusOK              Status = 0
	StatusInvalidDocument Status = 1
	StatusPageNotFound    Status = 2
	StatusIOError         Status = 3
	StatusOutOfMemory     Status = 4
	StatusInvalidText     Status = 5
)

// String returns a string representation of the status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidDocument:
		return "invalid document"
	case StatusPageNotFound:
		return "page not found"
	case StatusIOError:
		return "i/o error"
	case StatusOutOfMemory:
		return "out of memory"
	case StatusInvalidText:
		return "invalid text"
	default:
		return "unknown"
	}
}

// StatusOf maps an error from the extraction packages onto a Status.
// Errors outside the model taxonomy report StatusInvalidDocument.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case model.IsPageNotFound(err):
		return StatusPageNotFound
	case errors.Is(err, model.ErrInvalidText):
		return StatusInvalidText
	case errors.Is(err, model.ErrOutOfMemory):
		return StatusOutOfMemory
	case errors.Is(err, model.ErrInvalidDocument), errors.Is(err, model.ErrContentDecode):
		return StatusInvalidDocument
	case errors.Is(err, model.ErrIO):
		return StatusIOError
	default:
		return StatusInvalidDocument
	}
}
