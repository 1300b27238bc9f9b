package voxpdf

import (
	"strings"

	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/speech"
)

// Document is the combined result of extracting a document: per-page
// results, the document-wide paragraph list and the table of contents
// linked into it.
type Document struct {
	// Path is the source file
	Path string

	// PageCount is the number of pages in the source file, not just the
	// pages extracted
	PageCount int

	// Pages holds the extracted pages in page order. Paragraph indices
	// inside each page start at 0.
	Pages []model.PageResult

	// Paragraphs holds every paragraph with indices contiguous across
	// the whole document
	Paragraphs []model.Paragraph

	// TOC is the flattened outline. Each entry's ParagraphIndex points
	// into Paragraphs.
	TOC []model.TocEntry
}

// Text returns the paragraph texts separated by blank lines
func (d *Document) Text() string {
	return joinParagraphs(d.Paragraphs)
}

// WordCount returns the number of words across all extracted pages
func (d *Document) WordCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Words)
	}
	return n
}

// Chapters returns the top-level TOC entries
func (d *Document) Chapters() []model.TocEntry {
	var chapters []model.TocEntry
	for _, e := range d.TOC {
		if e.IsChapter() {
			chapters = append(chapters, e)
		}
	}
	return chapters
}

// Section returns the paragraphs from TOC entry i up to the next entry at
// the same or a shallower level.
func (d *Document) Section(i int) []model.Paragraph {
	if i < 0 || i >= len(d.TOC) || len(d.Paragraphs) == 0 {
		return nil
	}

	start := d.TOC[i].ParagraphIndex
	end := len(d.Paragraphs)
	for _, e := range d.TOC[i+1:] {
		if e.Level <= d.TOC[i].Level && e.HasDestination {
			end = e.ParagraphIndex
			break
		}
	}

	if start >= end || start >= len(d.Paragraphs) {
		return nil
	}
	return d.Paragraphs[start:end]
}

// Segments splits the paragraphs into pieces of at most maxChars
// characters for a speech engine, breaking at sentence ends where
// possible. A maxChars below 1 uses speech.DefaultMaxChars.
func (d *Document) Segments(maxChars int) []speech.Segment {
	return speech.NewSegmenter(maxChars).Split(d.Paragraphs)
}

func joinParagraphs(paragraphs []model.Paragraph) string {
	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n\n")
}
