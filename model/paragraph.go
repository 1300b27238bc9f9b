package model

// Paragraph is a run of lines merged by the paragraph heuristics.
//
// Text is the space-joined text of its lines. After hyphenation
// reassembly Text may no longer match the concatenated Words; see
// layout.ResyncHyphenatedWords for the opt-in fix.
type Paragraph struct {
	// Index is the 0-based position in the extraction call that produced it
	Index int

	// Text is the reading-order text with single spaces between words and lines
	Text string

	// PageNumber is the 0-indexed page of the first word
	PageNumber int

	// Words are the paragraph's words in reading order (never empty)
	Words []Word
}

// NewParagraph creates a paragraph
func NewParagraph(index int, text string, pageNumber int, words []Word) Paragraph {
	return Paragraph{
		Index:      index,
		Text:       text,
		PageNumber: pageNumber,
		Words:      words,
	}
}

// WordCount returns the number of words in the paragraph
func (p Paragraph) WordCount() int {
	return len(p.Words)
}

// Bounds returns the union of all word bounds
func (p Paragraph) Bounds() Rect {
	if len(p.Words) == 0 {
		return Rect{}
	}
	r := p.Words[0].Bounds
	for _, w := range p.Words[1:] {
		r = r.Union(w.Bounds)
	}
	return r
}
