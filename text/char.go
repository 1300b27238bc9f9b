package text

import "unicode"

// Char is a single positioned glyph as reported by the PDF engine.
type Char struct {
	Rune     rune    // decoded Unicode scalar
	X, Y     float64 // baseline origin in page coordinates
	FontSize float64 // nominal font size in points
	Width    float64 // rendered advance width in points
}

// Right returns the X coordinate of the glyph's right edge
func (c Char) Right() float64 {
	return c.X + c.Width
}

// IsSpace returns true if the glyph is whitespace
func (c Char) IsSpace() bool {
	return unicode.IsSpace(c.Rune)
}
