package text

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/voxpdf/model"
)

const (
	// WordGapThreshold is the horizontal gap (points) between a glyph's
	// origin and the previous glyph's right edge that ends a word.
	WordGapThreshold = 3.0

	// GlyphWidthFactor approximates a glyph's width as a fraction of its
	// font size when computing word bounds. It is tuned for proportional
	// Latin text and will be inaccurate for CJK or condensed faces.
	GlyphWidthFactor = 0.6
)

// AssembleWords groups the glyphs of one rendering line into words.
//
// A word ends at a whitespace glyph or when the gap between a glyph's
// origin and the previous glyph's right edge exceeds WordGapThreshold.
// The result is in input order; an empty line yields no words.
func AssembleWords(chars []Char, page int) []model.Word {
	if len(chars) == 0 {
		return nil
	}

	var words []model.Word
	current := make([]Char, 0, 16)
	prevRight := 0.0
	havePrev := false

	for _, c := range chars {
		space := c.IsSpace()
		gap := havePrev && c.X-prevRight > WordGapThreshold

		if space || gap {
			if w, ok := buildWord(current, page); ok {
				words = append(words, w)
			}
			current = current[:0]
		}

		if !space {
			current = append(current, c)
		}

		prevRight = c.Right()
		havePrev = true
	}

	// End of line
	if w, ok := buildWord(current, page); ok {
		words = append(words, w)
	}

	return words
}

// AssemblePage splits a page's glyph stream into rendering lines and
// assembles the words of each line, in stream order.
func AssemblePage(chars []Char, page int) []model.Word {
	var words []model.Word
	for _, line := range SplitLines(chars) {
		words = append(words, AssembleWords(line, page)...)
	}
	return words
}

// buildWord computes text, bounds and mean font size in a single pass.
func buildWord(chars []Char, page int) (model.Word, bool) {
	if len(chars) == 0 {
		return model.Word{}, false
	}

	var sb strings.Builder
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	sizeSum := 0.0

	for _, c := range chars {
		sb.WriteRune(c.Rune)
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X+c.FontSize*GlyphWidthFactor)
		maxY = math.Max(maxY, c.Y+c.FontSize)
		sizeSum += c.FontSize
	}

	// NFKC folds ligature glyphs (U+FB01 and friends) into plain letters.
	// Some compatibility forms decompose to a space plus a combining mark;
	// that space is dropped so a word never holds whitespace.
	txt := strings.Join(strings.Fields(norm.NFKC.String(sb.String())), "")
	if txt == "" {
		return model.Word{}, false
	}

	return model.Word{
		Text:       txt,
		Bounds:     model.NewRectFromBounds(minX, minY, maxX, maxY),
		PageNumber: page,
		FontSize:   sizeSum / float64(len(chars)),
	}, true
}
