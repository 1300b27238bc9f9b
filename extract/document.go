package extract

import (
	"github.com/tsawler/voxpdf/reader"
	"github.com/tsawler/voxpdf/text"
)

// Document is an open document the pipeline can pull glyphs from.
// Implementations need not be safe for concurrent use; the coordinators
// never share one between goroutines.
type Document interface {
	PageCount() int
	Chars(page int) ([]text.Char, error)
	Close() error
}

// Opener opens a Document by path. Parallel calls it once per chunk, so it
// must be safe to call from several goroutines.
type Opener func(path string) (Document, error)

// ReaderOpener opens documents with reader.Open
func ReaderOpener(path string) (Document, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

var _ Document = (*reader.Reader)(nil)
