package speech

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/voxpdf/model"
)

// DefaultMaxChars is the segment length used when none is given. Most
// speech synthesis engines accept at least this many characters per
// request.
const DefaultMaxChars = 500

// Segment is one piece of a paragraph small enough to hand to a speech
// engine in a single request.
type Segment struct {
	// Text is the segment content, trimmed
	Text string

	// ParagraphIndex is the Index of the paragraph the segment came from
	ParagraphIndex int

	// PageNumber is the paragraph's 0-indexed page
	PageNumber int

	// Part is the segment's position within its paragraph, from 0
	Part int
}

// Segmenter splits paragraphs into segments of at most MaxChars
// characters, breaking at sentence ends where possible, then at spaces,
// and only as a last resort inside a word.
type Segmenter struct {
	MaxChars int
}

// NewSegmenter creates a Segmenter. A maxChars below 1 uses DefaultMaxChars.
func NewSegmenter(maxChars int) *Segmenter {
	if maxChars < 1 {
		maxChars = DefaultMaxChars
	}
	return &Segmenter{MaxChars: maxChars}
}

// Split segments every paragraph in order. Paragraphs with no text
// produce no segments.
func (s *Segmenter) Split(paragraphs []model.Paragraph) []Segment {
	var segments []Segment
	for _, p := range paragraphs {
		for i, text := range s.SplitText(p.Text) {
			segments = append(segments, Segment{
				Text:           text,
				ParagraphIndex: p.Index,
				PageNumber:     p.PageNumber,
				Part:           i,
			})
		}
	}
	return segments
}

// SplitText splits one paragraph's text. Sentences are packed greedily,
// joined by single spaces, so no segment exceeds MaxChars characters.
func (s *Segmenter) SplitText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if runeLen(text) <= s.MaxChars {
		return []string{text}
	}

	var pieces []string
	for _, sentence := range Sentences(text) {
		if runeLen(sentence) <= s.MaxChars {
			pieces = append(pieces, sentence)
			continue
		}
		for _, word := range strings.Fields(sentence) {
			pieces = append(pieces, s.cut(word)...)
		}
	}

	return s.pack(pieces)
}

// pack joins consecutive pieces while they fit
func (s *Segmenter) pack(pieces []string) []string {
	var out []string
	var current strings.Builder
	size := 0

	for _, piece := range pieces {
		n := runeLen(piece)
		if size > 0 && size+1+n > s.MaxChars {
			out = append(out, current.String())
			current.Reset()
			size = 0
		}
		if size > 0 {
			current.WriteByte(' ')
			size++
		}
		current.WriteString(piece)
		size += n
	}

	if size > 0 {
		out = append(out, current.String())
	}
	return out
}

// cut hard-splits a word longer than MaxChars
func (s *Segmenter) cut(word string) []string {
	if runeLen(word) <= s.MaxChars {
		return []string{word}
	}

	runes := []rune(word)
	var out []string
	for len(runes) > s.MaxChars {
		out = append(out, string(runes[:s.MaxChars]))
		runes = runes[s.MaxChars:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
