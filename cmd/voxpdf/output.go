package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/voxpdf"
	"github.com/tsawler/voxpdf/extract"
	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/speech"
)

type jsonDocument struct {
	Path      string         `json:"path"`
	PageCount int            `json:"page_count"`
	Pages     []jsonPage     `json:"pages"`
	TOC       []jsonTOCEntry `json:"toc,omitempty"`
	Warnings  []string       `json:"warnings,omitempty"`
}

type jsonPage struct {
	Page       int             `json:"page"`
	WordCount  int             `json:"word_count"`
	Paragraphs []jsonParagraph `json:"paragraphs"`
}

type jsonParagraph struct {
	Index     int      `json:"index"`
	Page      int      `json:"page"`
	Text      string   `json:"text"`
	WordCount int      `json:"word_count"`
	Segments  []string `json:"segments,omitempty"`
}

type jsonTOCEntry struct {
	Title          string `json:"title"`
	Level          int    `json:"level"`
	Page           int    `json:"page"`
	ParagraphIndex int    `json:"paragraph_index"`
	HasDestination bool   `json:"has_destination"`
}

// jsonEvent is one line of stream output
type jsonEvent struct {
	Event      string          `json:"event"`
	Page       *int            `json:"page,omitempty"`
	Paragraphs []jsonParagraph `json:"paragraphs,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// newJSONDocument converts an extracted document. Paragraph indices are
// document-wide so they match the TOC's paragraph indices.
func newJSONDocument(doc *voxpdf.Document, warnings []voxpdf.Warning, config *Config) jsonDocument {
	out := jsonDocument{
		Path:      doc.Path,
		PageCount: doc.PageCount,
		Pages:     make([]jsonPage, 0, len(doc.Pages)),
	}

	next := 0
	for _, page := range doc.Pages {
		jp := jsonPage{Page: page.PageNum, WordCount: len(page.Words)}
		jp.Paragraphs = make([]jsonParagraph, 0, len(page.Paragraphs))
		for range page.Paragraphs {
			jp.Paragraphs = append(jp.Paragraphs, newJSONParagraph(doc.Paragraphs[next], config.MaxChars))
			next++
		}
		out.Pages = append(out.Pages, jp)
	}

	if config.TOC {
		out.TOC = make([]jsonTOCEntry, 0, len(doc.TOC))
		for _, e := range doc.TOC {
			out.TOC = append(out.TOC, jsonTOCEntry{
				Title:          e.Title,
				Level:          e.Level,
				Page:           e.PageNumber,
				ParagraphIndex: e.ParagraphIndex,
				HasDestination: e.HasDestination,
			})
		}
	}

	for _, w := range warnings {
		out.Warnings = append(out.Warnings, w.String())
	}
	return out
}

func newJSONParagraph(p model.Paragraph, maxChars int) jsonParagraph {
	jp := jsonParagraph{
		Index:     p.Index,
		Page:      p.PageNumber,
		Text:      p.Text,
		WordCount: p.WordCount(),
	}
	if maxChars > 0 {
		jp.Segments = speech.NewSegmenter(maxChars).SplitText(p.Text)
	}
	return jp
}

func newJSONEvent(ev extract.Event, maxChars int) jsonEvent {
	out := jsonEvent{Event: ev.Kind.String()}
	if ev.Kind == extract.EventComplete {
		return out
	}

	page := ev.Page
	out.Page = &page
	if ev.Err != nil {
		out.Error = ev.Err.Error()
	}
	for _, p := range ev.Paragraphs {
		out.Paragraphs = append(out.Paragraphs, newJSONParagraph(p, maxChars))
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTOC prints one indented line per entry
func writeTOC(w io.Writer, toc []model.TocEntry) {
	if len(toc) == 0 {
		return
	}
	for _, e := range toc {
		indent := strings.Repeat("  ", e.Level)
		if e.HasDestination {
			fmt.Fprintf(w, "%s%s ... %d\n", indent, e.Title, e.PageNumber)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, e.Title)
		}
	}
	fmt.Fprintln(w)
}

// writeParagraphs prints paragraphs separated by blank lines. A positive
// maxChars prints each paragraph as speech segments, one per line.
func writeParagraphs(w io.Writer, paragraphs []model.Paragraph, maxChars int) {
	var segmenter *speech.Segmenter
	if maxChars > 0 {
		segmenter = speech.NewSegmenter(maxChars)
	}

	for i, p := range paragraphs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if segmenter == nil {
			fmt.Fprintln(w, p.Text)
			continue
		}
		for _, segment := range segmenter.SplitText(p.Text) {
			fmt.Fprintln(w, segment)
		}
	}
}
