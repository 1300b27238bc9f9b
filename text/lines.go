package text

import "math"

const (
	// LineBreakYFactor is the baseline shift, as a fraction of the previous
	// glyph's font size, that starts a new rendering line.
	LineBreakYFactor = 0.5

	// LineBreakBackstep is how far X may move backwards (points) before the
	// glyph is treated as the start of a new rendering line.
	LineBreakBackstep = 3 * WordGapThreshold

	// minLineFontSize keeps zero-size glyphs from collapsing the Y tolerance
	minLineFontSize = 1.0
)

// SplitLines splits a page's glyph stream into rendering lines.
//
// Glyphs are kept in stream order. A line ends when the baseline moves by
// more than LineBreakYFactor times the previous glyph's font size, or when
// the pen jumps backwards by more than LineBreakBackstep. Superscripts and
// subscripts smaller than that shift stay on their line.
func SplitLines(chars []Char) [][]Char {
	if len(chars) == 0 {
		return nil
	}

	var lines [][]Char
	start := 0

	for i := 1; i < len(chars); i++ {
		prev, cur := chars[i-1], chars[i]

		tolerance := math.Max(prev.FontSize, minLineFontSize) * LineBreakYFactor
		if math.Abs(cur.Y-prev.Y) > tolerance || cur.X < prev.X-LineBreakBackstep {
			lines = append(lines, chars[start:i])
			start = i
		}
	}

	return append(lines, chars[start:])
}
