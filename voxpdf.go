// Package voxpdf provides a fluent API for turning PDF files into
// speech-ready text: words with positions, paragraphs in reading order with
// end-of-line hyphenation undone, and a flattened table of contents.
//
// Basic usage:
//
//	paragraphs, warnings, err := voxpdf.Open("book.pdf").Paragraphs()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", voxpdf.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := voxpdf.Open("book.pdf").
//	    PageRange(0, 199).
//	    Parallel(0).
//	    SyncHyphenatedWords().
//	    Document()
//
// Page numbers are 0-indexed throughout. For incremental playback use
// Stream, which delivers pages one at a time as they are extracted.
//
// The lower-level packages (text, layout, outline, extract, bridge) are
// usable on their own.
package voxpdf

import (
	"github.com/tsawler/voxpdf/reader"
)

// Open returns an Extractor for the PDF at filename. Nothing is read until
// a terminal operation runs; terminal operations close the file when they
// finish.
//
// Example:
//
//	text, warnings, err := voxpdf.Open("book.pdf").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("book.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	words, warnings, err := voxpdf.FromReader(r).Pages(3).Words()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		filename:     r.Path(),
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := voxpdf.Must(voxpdf.Open("book.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. Warnings are
// discarded.
//
// Example:
//
//	text := voxpdf.MustText(voxpdf.Open("book.pdf").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
