package layout

import (
	"math"
	"strings"

	"github.com/tsawler/voxpdf/model"
)

// Paragraph break thresholds. They are tuned for body text around 12pt;
// very large or very small type will misclassify.
const (
	// SpacingFactor: break when the line gap exceeds this multiple of the
	// previous line's height
	SpacingFactor = 2.0

	// FontChangeFactor: break when either line's font size exceeds the
	// other's by this ratio
	FontChangeFactor = 1.15

	// IndentThreshold is the horizontal shift (points) that counts as an
	// indentation change
	IndentThreshold = 10.0

	// IndentSpacingFactor is the line gap, in previous-line heights, that
	// must accompany an indentation change
	IndentSpacingFactor = 1.3

	// ShortLineRatio: a previous line narrower than this fraction of the
	// two lines' mean width is considered short
	ShortLineRatio = 0.6

	// ShortLineSpacingFactor is the line gap, in previous-line heights, that
	// must follow a short line
	ShortLineSpacingFactor = 1.2
)

// BreakReason identifies which heuristic started a new paragraph
type BreakReason int

const (
	BreakNone BreakReason = iota
	BreakSpacing
	BreakFontIncrease
	BreakFontDecrease
	BreakIndent
	BreakShortLine
)

// String returns a string representation of the break reason
func (r BreakReason) String() string {
	switch r {
	case BreakSpacing:
		return "spacing"
	case BreakFontIncrease:
		return "font-increase"
	case BreakFontDecrease:
		return "font-decrease"
	case BreakIndent:
		return "indent"
	case BreakShortLine:
		return "short-line"
	default:
		return "none"
	}
}

// ParagraphDetector merges lines into paragraphs
type ParagraphDetector struct {
	lines *LineDetector
}

// NewParagraphDetector creates a new paragraph detector
func NewParagraphDetector() *ParagraphDetector {
	return &ParagraphDetector{lines: NewLineDetector()}
}

// ShouldBreak reports whether cur starts a new paragraph after prev, and
// which rule fired. Rules are checked in priority order and the first
// match wins:
//
//  1. Spacing: |Δy| > SpacingFactor × prev height
//  2. FontIncrease: cur size > prev size × FontChangeFactor
//  3. FontDecrease: prev size > cur size × FontChangeFactor
//  4. Indent: |Δx| > IndentThreshold and |Δy| > IndentSpacingFactor × prev height
//  5. ShortLine: prev width < ShortLineRatio × mean(prev, cur width) and
//     |Δy| > ShortLineSpacingFactor × prev height
//
// Empty lines never break.
func (d *ParagraphDetector) ShouldBreak(prev, cur Line) BreakReason {
	if prev.IsEmpty() || cur.IsEmpty() {
		return BreakNone
	}

	spacing := math.Abs(cur.Y() - prev.Y())
	height := prev.Height()

	if spacing > height*SpacingFactor {
		return BreakSpacing
	}

	if cur.FontSize() > prev.FontSize()*FontChangeFactor {
		return BreakFontIncrease
	}
	if prev.FontSize() > cur.FontSize()*FontChangeFactor {
		return BreakFontDecrease
	}

	if math.Abs(cur.X()-prev.X()) > IndentThreshold && spacing > height*IndentSpacingFactor {
		return BreakIndent
	}

	prevWidth := prev.Width()
	avgWidth := (prevWidth + cur.Width()) / 2
	if prevWidth < avgWidth*ShortLineRatio && spacing > height*ShortLineSpacingFactor {
		return BreakShortLine
	}

	return BreakNone
}

// Detect groups a page's words into lines, then lines into paragraphs.
func (d *ParagraphDetector) Detect(words []model.Word) []model.Paragraph {
	if len(words) == 0 {
		return nil
	}
	return d.DetectLines(d.lines.Detect(words))
}

// DetectLines merges consecutive lines into paragraphs. Paragraph indices
// start at 0 and follow emission order.
func (d *ParagraphDetector) DetectLines(lines []Line) []model.Paragraph {
	var paragraphs []model.Paragraph
	var current []Line
	var prev Line
	havePrev := false

	for _, line := range lines {
		if line.IsEmpty() {
			continue
		}

		if havePrev && d.ShouldBreak(prev, line) != BreakNone {
			paragraphs = append(paragraphs, buildParagraph(len(paragraphs), current))
			current = nil
		}

		current = append(current, line)
		prev = line
		havePrev = true
	}

	if len(current) > 0 {
		paragraphs = append(paragraphs, buildParagraph(len(paragraphs), current))
	}

	return paragraphs
}

// DetectParagraphs groups words into paragraphs with a default detector
func DetectParagraphs(words []model.Word) []model.Paragraph {
	return NewParagraphDetector().Detect(words)
}

func buildParagraph(index int, lines []Line) model.Paragraph {
	var words []model.Word
	texts := make([]string, len(lines))

	for i, line := range lines {
		texts[i] = line.Text()
		words = append(words, line.Words...)
	}

	page := 0
	if len(words) > 0 {
		page = words[0].PageNumber
	}

	return model.NewParagraph(index, strings.Join(texts, " "), page, words)
}
