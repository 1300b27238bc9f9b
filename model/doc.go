// Package model defines the data structures produced by text structuring.
//
// All extraction operations ultimately produce these types, making them the
// primary API for consuming extracted content.
//
// # Text Structure
//
//   - [Word] - a run of glyphs with its bounding box, page and mean font size
//   - [Paragraph] - words merged by the paragraph heuristics, with
//     reading-order text
//   - [PageResult] - the words and paragraphs of one page
//
// # Table of Contents
//
// [TocEntry] is one flattened outline entry. The outline tree is reduced to
// a pre-order list in which [TocEntry.Level] encodes depth.
//
// # Geometry
//
// [Rect] is an axis-aligned box in PDF user space: origin bottom-left,
// Y increasing upward.
//
// # Errors
//
// Errors are classified by sentinel ([ErrInvalidDocument], [ErrIO],
// [ErrContentDecode], [ErrOutlineCorrupt], ...) and by the typed
// [PageNotFoundError], which carries the requested index and the page count.
package model
