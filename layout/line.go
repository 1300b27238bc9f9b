package layout

import (
	"math"
	"strings"

	"github.com/tsawler/voxpdf/model"
)

// LineYThreshold is the vertical distance (points) under which a word joins
// the current line.
const LineYThreshold = 5.0

// Line is a run of words sharing a baseline, in input order.
//
// Position and size metrics come from the line's first word.
type Line struct {
	Words []model.Word
}

// Y returns the Y coordinate of the first word
func (l Line) Y() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[0].Bounds.Y
}

// X returns the left edge of the first word
func (l Line) X() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[0].Bounds.X
}

// Height returns the height of the first word
func (l Line) Height() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[0].Bounds.Height
}

// FontSize returns the font size of the first word
func (l Line) FontSize() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[0].FontSize
}

// Width returns the summed width of the line's words. Inter-word gaps are
// not counted.
func (l Line) Width() float64 {
	total := 0.0
	for _, w := range l.Words {
		total += w.Bounds.Width
	}
	return total
}

// Text returns the words joined with single spaces
func (l Line) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// IsEmpty reports whether the line has no words
func (l Line) IsEmpty() bool {
	return len(l.Words) == 0
}

// LineDetector groups a page's words into lines
type LineDetector struct{}

// NewLineDetector creates a new line detector
func NewLineDetector() *LineDetector {
	return &LineDetector{}
}

// Detect groups words into lines in a single forward pass.
//
// A word joins the current line while |word.Y - currentY| < LineYThreshold,
// where currentY is the Y of the line's first word. Words are not re-sorted:
// input must already be in reading order, and multi-column pages that
// interleave their columns will group incorrectly.
func (d *LineDetector) Detect(words []model.Word) []Line {
	if len(words) == 0 {
		return nil
	}

	var lines []Line
	current := []model.Word{words[0]}
	currentY := words[0].Bounds.Y

	for _, w := range words[1:] {
		if math.Abs(w.Bounds.Y-currentY) < LineYThreshold {
			current = append(current, w)
			continue
		}
		lines = append(lines, Line{Words: current})
		current = []model.Word{w}
		currentY = w.Bounds.Y
	}

	return append(lines, Line{Words: current})
}
