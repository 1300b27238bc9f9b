package bridge

import (
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/tsawler/voxpdf/cache"
	"github.com/tsawler/voxpdf/extract"
	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/outline"
	"github.com/tsawler/voxpdf/reader"
)

// Handle is an opaque reference to an open document
type Handle string

// Document is what the registry needs from an open document
type Document interface {
	extract.Document
	outline.Source
	PageText(page int) (string, error)
}

// Opener opens a Document by path
type Opener func(path string) (Document, error)

// ReaderOpener opens documents with reader.Open
func ReaderOpener(path string) (Document, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Option configures a Registry
type Option func(*Registry)

// WithOpener replaces the document opener
func WithOpener(open Opener) Option {
	return func(r *Registry) {
		if open != nil {
			r.open = open
		}
	}
}

// WithCache shares an existing extraction cache
func WithCache(c *cache.ExtractionCache) Option {
	return func(r *Registry) {
		if c != nil {
			r.cache = c
		}
	}
}

// WithLogger sets the registry logger
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry tracks open documents behind opaque handles and answers
// page-level queries with status codes instead of errors.
//
// A Registry is safe for concurrent use. Calls on the same handle are
// serialized because the underlying document is not thread safe. Page
// results are memoized in the registry's cache; Close is the only call
// that releases anything.
type Registry struct {
	mu     sync.RWMutex
	docs   map[Handle]*entry
	open   Opener
	cache  *cache.ExtractionCache
	logger *log.Logger
}

type entry struct {
	mu   sync.Mutex
	doc  Document
	path string
	toc  []model.TocEntry
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		docs:   make(map[Handle]*entry),
		open:   ReaderOpener,
		cache:  cache.New(),
		logger: &log.Logger{Level: log.InfoLevel, Writer: &log.IOWriter{Writer: io.Discard}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open opens the document at path and returns its handle
func (r *Registry) Open(path string) (Handle, Status) {
	doc, err := r.open(path)
	if err != nil {
		r.logger.Warn().Str("path", path).Err(err).Msg("open failed")
		return "", StatusOf(err)
	}

	h := Handle(uuid.NewString())

	r.mu.Lock()
	r.docs[h] = &entry{doc: doc, path: path}
	r.mu.Unlock()

	r.logger.Debug().Str("path", path).Str("handle", string(h)).Int("pages", doc.PageCount()).Msg("document opened")
	return h, StatusOK
}

// Close releases the document behind h. The handle is invalid afterwards.
func (r *Registry) Close(h Handle) Status {
	r.mu.Lock()
	e, ok := r.docs[h]
	delete(r.docs, h)
	r.mu.Unlock()

	if !ok {
		return StatusInvalidDocument
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.doc.Close(); err != nil {
		return StatusIOError
	}
	return StatusOK
}

// CloseAll releases every open document
func (r *Registry) CloseAll() {
	r.mu.RLock()
	handles := make([]Handle, 0, len(r.docs))
	for h := range r.docs {
		handles = append(handles, h)
	}
	r.mu.RUnlock()

	for _, h := range handles {
		r.Close(h)
	}
}

// Len returns the number of open documents
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

// PageCount returns the number of pages of the document behind h
func (r *Registry) PageCount(h Handle) (int, Status) {
	e, ok := r.lookup(h)
	if !ok {
		return 0, StatusInvalidDocument
	}
	return e.doc.PageCount(), StatusOK
}

// PageText returns the plain text of a 0-indexed page
func (r *Registry) PageText(h Handle, page int) (string, Status) {
	e, ok := r.lookup(h)
	if !ok {
		return "", StatusInvalidDocument
	}

	e.mu.Lock()
	s, err := e.doc.PageText(page)
	e.mu.Unlock()

	if err != nil {
		return "", StatusOf(err)
	}
	return checkText(s)
}

// WordCount returns the number of words on a page
func (r *Registry) WordCount(h Handle, page int) (int, Status) {
	result, status := r.page(h, page)
	if status != StatusOK {
		return 0, status
	}
	return len(result.Words), StatusOK
}

// Word returns word i of a page
func (r *Registry) Word(h Handle, page, i int) (WordRecord, Status) {
	result, status := r.page(h, page)
	if status != StatusOK {
		return WordRecord{}, status
	}
	if i < 0 || i >= len(result.Words) {
		return WordRecord{}, StatusPageNotFound
	}

	w := wordRecord(result.Words[i])
	if _, status := checkText(w.Text); status != StatusOK {
		return WordRecord{}, status
	}
	return w, StatusOK
}

// ParagraphCount returns the number of paragraphs on a page
func (r *Registry) ParagraphCount(h Handle, page int) (int, Status) {
	result, status := r.page(h, page)
	if status != StatusOK {
		return 0, status
	}
	return len(result.Paragraphs), StatusOK
}

// Paragraph returns paragraph i of a page
func (r *Registry) Paragraph(h Handle, page, i int) (ParagraphRecord, Status) {
	result, status := r.page(h, page)
	if status != StatusOK {
		return ParagraphRecord{}, status
	}
	if i < 0 || i >= len(result.Paragraphs) {
		return ParagraphRecord{}, StatusPageNotFound
	}

	p := paragraphRecord(result.Paragraphs[i])
	if _, status := checkText(p.Text); status != StatusOK {
		return ParagraphRecord{}, status
	}
	return p, StatusOK
}

// TOCCount returns the number of table of contents entries. A corrupt
// outline counts as empty.
func (r *Registry) TOCCount(h Handle) (int, Status) {
	e, ok := r.lookup(h)
	if !ok {
		return 0, StatusInvalidDocument
	}
	return len(r.toc(e)), StatusOK
}

// TOCEntry returns entry i of the table of contents. Finding the entry's
// first paragraph may extract pages.
func (r *Registry) TOCEntry(h Handle, i int) (TOCRecord, Status) {
	e, ok := r.lookup(h)
	if !ok {
		return TOCRecord{}, StatusInvalidDocument
	}

	toc := r.toc(e)
	if i < 0 || i >= len(toc) {
		return TOCRecord{}, StatusPageNotFound
	}

	rec := tocRecord(toc[i])
	if _, status := checkText(rec.Title); status != StatusOK {
		return TOCRecord{}, status
	}
	if rec.HasDestination {
		rec.ParagraphPage = r.firstParagraphPage(h, e, rec.PageNumber)
	}
	return rec, StatusOK
}

// firstParagraphPage extracts pages from page onwards until one has a
// paragraph. Pages that fail to extract are skipped.
func (r *Registry) firstParagraphPage(h Handle, e *entry, page int) int {
	e.mu.Lock()
	n := e.doc.PageCount()
	e.mu.Unlock()

	for p := max(page, 0); p < n; p++ {
		result, status := r.page(h, p)
		if status == StatusOK && len(result.Paragraphs) > 0 {
			return p
		}
	}
	return -1
}

func (r *Registry) lookup(h Handle) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.docs[h]
	return e, ok
}

func (r *Registry) page(h Handle, page int) (model.PageResult, Status) {
	e, ok := r.lookup(h)
	if !ok {
		return model.PageResult{}, StatusInvalidDocument
	}

	if result, ok := r.cache.Result(e.path, page); ok {
		return result, StatusOK
	}

	e.mu.Lock()
	result, err := extract.ExtractPage(e.doc, page, extract.WithLogger(r.logger))
	e.mu.Unlock()

	if err != nil {
		r.logger.Debug().Str("path", e.path).Int("page", page).Err(err).Msg("page extraction failed")
		return model.PageResult{}, StatusOf(err)
	}

	r.cache.SetResult(e.path, result)
	return result, StatusOK
}

// toc loads the outline once per handle
func (r *Registry) toc(e *entry) []model.TocEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.toc == nil {
		toc, err := outline.Load(e.doc)
		if err != nil {
			r.logger.Warn().Str("path", e.path).Err(err).Msg("outline unreadable, using empty table of contents")
		}
		e.toc = toc
	}
	return e.toc
}

// checkText rejects strings that cannot cross a NUL-terminated boundary
func checkText(s string) (string, Status) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", StatusInvalidText
	}
	return s, StatusOK
}
