// Package layout groups a page's words into lines and paragraphs and undoes
// end-of-line hyphenation.
//
// Words are expected in reading order, as produced by text.AssemblePage.
// Nothing here re-sorts input, so interleaved multi-column content will
// group incorrectly.
//
// # Lines
//
// [LineDetector] walks the words once and starts a new line whenever a
// word's Y differs from the current line's first word by [LineYThreshold]
// or more.
//
// # Paragraphs
//
// [ParagraphDetector] compares consecutive lines and breaks on the first
// of five rules that fires (see [ParagraphDetector.ShouldBreak]): a large
// vertical gap, a font size jump or drop, an indentation change with
// moderate spacing, or a short line followed by moderate spacing.
//
//	paragraphs := layout.DetectParagraphs(words)
//	paragraphs = layout.ReassembleHyphenation(paragraphs)
//
// # Hyphenation
//
// [ReassembleHyphenation] rewrites paragraph text only. [ResyncHyphenatedWords]
// optionally merges the matching word fragments as well.
package layout
