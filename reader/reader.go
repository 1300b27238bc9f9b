package reader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/phuslu/log"

	"github.com/tsawler/voxpdf/format"
	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/text"
)

// FallbackFontSize is the glyph size assumed for glyphs that carry no size
// of their own, as the row-based decoder's never do.
const FallbackFontSize = 12.0

// Reader is an open PDF document.
//
// A Reader owns one file handle and is not safe for concurrent use;
// concurrent extraction opens one Reader per worker.
type Reader struct {
	file   *os.File
	doc    *pdf.Reader
	path   string
	pages  int
	logger *log.Logger
}

// Open opens a PDF file and returns a Reader.
//
// A missing or unparsable file returns an error wrapping
// model.ErrInvalidDocument; other operating system failures wrap
// model.ErrIO.
func Open(filename string) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidDocument, err)
		}
		return nil, fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	reader, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	return reader, nil
}

// NewReader creates a Reader for an already open file. The Reader takes
// ownership of file and closes it on Close.
func NewReader(file *os.File) (r *Reader, err error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get file info: %w", model.ErrIO, err)
	}

	kind, err := format.DetectFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", model.ErrIO, err)
	}
	if kind != format.PDF {
		return nil, fmt.Errorf("%w: %s: detected %s, not a PDF", model.ErrInvalidDocument, file.Name(), kind)
	}

	// The engine panics on some malformed trailers
	defer func() {
		if rec := recover(); rec != nil {
			r, err = nil, fmt.Errorf("%w: %v", model.ErrInvalidDocument, rec)
		}
	}()

	doc, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidDocument, err)
	}

	return &Reader{
		file:   file,
		doc:    doc,
		path:   file.Name(),
		pages:  doc.NumPage(),
		logger: &log.Logger{Level: log.InfoLevel, Writer: &log.IOWriter{Writer: io.Discard}},
	}, nil
}

// SetLogger sets the logger used to report decode fallbacks
func (r *Reader) SetLogger(logger *log.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Close closes the PDF file
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// Path returns the file path the Reader was opened from
func (r *Reader) Path() string {
	return r.path
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	return r.pages
}

// Chars returns the positioned glyphs of a 0-indexed page in content
// stream order.
//
// The engine's glyph-level decoder is tried first. If it fails, the
// row-based decoder is used instead, with glyph sizes and advances
// estimated from FallbackFontSize. If both fail the error wraps
// model.ErrContentDecode; a page that decodes to no glyphs is not an error.
func (r *Reader) Chars(page int) ([]text.Char, error) {
	p, err := r.page(page)
	if err != nil {
		return nil, err
	}

	chars, primaryErr := contentChars(p)
	if primaryErr == nil {
		return chars, nil
	}

	r.logger.Debug().Int("page", page).Err(primaryErr).Msg("glyph decode failed, trying row decode")

	chars, fallbackErr := rowChars(p)
	if fallbackErr == nil {
		return chars, nil
	}

	return nil, fmt.Errorf("page %d: %w (glyphs: %v; rows: %v)", page, model.ErrContentDecode, primaryErr, fallbackErr)
}

// PageText returns the engine's plain text for a 0-indexed page. When the
// plain text path fails or yields nothing, the page's assembled words are
// joined with spaces instead.
func (r *Reader) PageText(page int) (string, error) {
	p, err := r.page(page)
	if err != nil {
		return "", err
	}

	if s, err := plainText(p); err == nil && strings.TrimSpace(s) != "" {
		return s, nil
	}

	chars, err := r.Chars(page)
	if err != nil {
		return "", err
	}

	words := text.AssemblePage(chars, page)
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " "), nil
}

func (r *Reader) page(page int) (pdf.Page, error) {
	if err := model.CheckPage(page, r.pages); err != nil {
		return pdf.Page{}, err
	}

	p := r.doc.Page(page + 1)
	if p.V.IsNull() {
		return pdf.Page{}, fmt.Errorf("page %d: %w: missing page object", page, model.ErrContentDecode)
	}
	return p, nil
}

func contentChars(p pdf.Page) (chars []text.Char, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			chars, err = nil, fmt.Errorf("content stream: %v", rec)
		}
	}()

	for _, t := range p.Content().Text {
		size, width := runMetrics(t.S, t.FontSize, t.W)
		chars = appendGlyphs(chars, t.S, t.X, t.Y, size, width)
	}
	return chars, nil
}

func rowChars(p pdf.Page) (chars []text.Char, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			chars, err = nil, fmt.Errorf("text rows: %v", rec)
		}
	}()

	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		for _, t := range row.Content {
			size, width := runMetrics(t.S, t.FontSize, 0)
			chars = appendGlyphs(chars, t.S, t.X, t.Y, size, width)
		}
	}
	return chars, nil
}

func plainText(p pdf.Page) (s string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s, err = "", fmt.Errorf("plain text: %v", rec)
		}
	}()
	return p.GetPlainText(nil)
}

// runMetrics substitutes FallbackFontSize for a missing font size and
// estimates a missing run width from the size.
func runMetrics(s string, size, width float64) (float64, float64) {
	if size <= 0 {
		size = FallbackFontSize
	}
	if width <= 0 {
		width = size * text.GlyphWidthFactor * float64(utf8.RuneCountInString(s))
	}
	return size, width
}

// appendGlyphs splits a decoded run into one Char per rune, sharing the
// run's width evenly.
func appendGlyphs(chars []text.Char, s string, x, y, size, width float64) []text.Char {
	runes := []rune(s)
	if len(runes) == 0 {
		return chars
	}

	advance := width / float64(len(runes))
	for _, r := range runes {
		chars = append(chars, text.Char{Rune: r, X: x, Y: y, FontSize: size, Width: advance})
		x += advance
	}
	return chars
}
