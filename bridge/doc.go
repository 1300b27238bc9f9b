// Package bridge exposes extraction through opaque document handles and
// integer status codes, for callers on the far side of a language or
// process boundary.
//
//	reg := bridge.NewRegistry()
//	h, status := reg.Open("book.pdf")
//	if status != bridge.StatusOK {
//	    return status
//	}
//	defer reg.Close(h)
//
//	n, _ := reg.ParagraphCount(h, 0)
//	for i := 0; i < n; i++ {
//	    p, _ := reg.Paragraph(h, 0, i)
//	    speak(p.Text)
//	}
//
// Every indexed accessor is bounds checked and reports
// [StatusPageNotFound] for an out-of-range page or item. Strings are
// rejected with [StatusInvalidText] when they contain NUL bytes. Returned
// values are Go-owned copies; [Registry.Close] is the only release call.
package bridge
