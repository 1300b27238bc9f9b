// Package reader adapts the external PDF engines to the extraction
// pipeline.
//
// Glyph positions, plain text and outline titles come from
// github.com/ledongthuc/pdf; outline target pages are resolved with
// github.com/pdfcpu/pdfcpu.
//
//	r, err := reader.Open("book.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	chars, err := r.Chars(0) // 0-indexed pages
//
// # Decoding
//
// [Reader.Chars] tries the engine's glyph decoder first and falls back to
// its row decoder; only when both fail does it return an error wrapping
// model.ErrContentDecode. Engine panics on malformed input are recovered
// and reported as errors.
//
// A Reader holds one open file and must not be shared between goroutines.
package reader
