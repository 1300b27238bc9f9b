// Package format identifies a file's type from its leading bytes so that
// non-PDF input can be rejected with a useful message before parsing.
package format

import (
	"bytes"
	"io"
)

// HeaderWindow is how far into a file the PDF header is searched for.
// Readers accept a header preceded by junk within the first kilobyte.
const HeaderWindow = 1024

// Format represents a recognised file type.
type Format int

const (
	// Unknown indicates an unrecognised format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// ZIP indicates a ZIP container (DOCX, ODT, EPUB and similar).
	ZIP
	// HTML indicates an HTML or XHTML document.
	HTML
	// Empty indicates a zero-length file.
	Empty
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case ZIP:
		return "ZIP archive"
	case HTML:
		return "HTML"
	case Empty:
		return "empty file"
	default:
		return "Unknown"
	}
}

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
)

// DetectFromMagic determines the format from a file's first bytes.
func DetectFromMagic(data []byte) Format {
	if len(data) == 0 {
		return Empty
	}

	window := data[:min(len(data), HeaderWindow)]
	if bytes.Contains(window, pdfMagic) {
		return PDF
	}
	if bytes.HasPrefix(data, zipMagic) {
		return ZIP
	}
	if isHTML(data) {
		return HTML
	}
	return Unknown
}

// DetectFromReader reads the header window of r and detects its format.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	header := make([]byte, HeaderWindow)
	n, err := r.ReadAt(header, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(header[:n]), nil
}

func isHTML(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	head := bytes.ToUpper(data[:min(len(data), 512)])

	switch {
	case bytes.HasPrefix(head, []byte("<!DOCTYPE HTML")):
		return true
	case bytes.HasPrefix(head, []byte("<HTML")):
		return true
	case bytes.HasPrefix(head, []byte("<?XML")):
		return bytes.Contains(head, []byte("<HTML"))
	}
	return false
}
