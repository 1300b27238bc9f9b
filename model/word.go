package model

// Word is a run of non-whitespace glyphs with its bounding box.
// Words are immutable once assembled; each belongs to exactly one paragraph.
type Word struct {
	Text       string  // trimmed, never empty
	Bounds     Rect    // page coordinates
	PageNumber int     // 0-indexed page
	FontSize   float64 // mean of the constituent glyph sizes
}

// NewWord creates a word
func NewWord(text string, bounds Rect, pageNumber int, fontSize float64) Word {
	return Word{
		Text:       text,
		Bounds:     bounds,
		PageNumber: pageNumber,
		FontSize:   fontSize,
	}
}
