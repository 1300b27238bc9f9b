// Package extract drives the text pipeline over the pages of a document.
//
// Every page goes through the same steps: glyphs are assembled into words
// (text), words into paragraphs (layout), and end-of-line hyphenation is
// undone. Three entry points share that pipeline:
//
//   - [ExtractPage] runs one page on a Document the caller owns.
//   - [Parallel] splits a page list into chunks and runs them on a bounded
//     errgroup. Each chunk opens its own Document, results come back in
//     request order, and the first error fails the whole call.
//   - [Stream] walks a page range on one background goroutine and queues
//     an event per page. Page failures are events, not errors.
//
// Documents are opened through an [Opener]; [ReaderOpener] uses the reader
// package. An optional cache.ExtractionCache short-circuits pages that
// were extracted before.
package extract
