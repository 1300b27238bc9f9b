// Package text turns positioned glyphs into words.
//
// The PDF engine reports each decoded glyph as a [Char]: its Unicode
// scalar, baseline origin, nominal font size and rendered width. This
// package groups those glyphs into rendering lines and words:
//
//	words := text.AssemblePage(chars, pageIndex)
//
// # Rendering Lines
//
// [SplitLines] breaks a page's glyph stream wherever the baseline shifts or
// the pen jumps backwards. Glyphs are never re-sorted.
//
// # Word Assembly
//
// [AssembleWords] ends a word at whitespace or at a horizontal gap wider
// than [WordGapThreshold]. Word bounds use the glyph origins for the lower
// left corner and approximate the right edge as
// origin + font size × [GlyphWidthFactor]; the word's font size is the
// arithmetic mean over its glyphs. Word text is NFKC-normalized so
// typographic ligatures read as plain letters.
package text
