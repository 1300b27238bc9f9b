package voxpdf

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/phuslu/log"

	"github.com/tsawler/voxpdf/cache"
	"github.com/tsawler/voxpdf/extract"
	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/outline"
	"github.com/tsawler/voxpdf/reader"
)

// Extractor provides a fluent interface for extracting speech-ready text
// from a PDF. Each configuration method returns a new Extractor instance,
// so a configured Extractor can be reused as a template.
type Extractor struct {
	// Source
	filename string

	// Reader
	reader *reader.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	r.SetLogger(e.options.logger)

	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract (0-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	paragraphs, _, err := voxpdf.Open("book.pdf").Pages(0, 2, 4).Paragraphs()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (0-indexed, inclusive).
//
// Example:
//
//	text, _, err := voxpdf.Open("book.pdf").PageRange(10, 19).Text()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	if start > end {
		newExt.err = fmt.Errorf("invalid page range %d-%d", start, end)
		return newExt
	}
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// Parallel extracts pages on a pool of workers, each with its own file
// handle. A worker count of 0 uses runtime.NumCPU(). Parallel mode is
// all-or-nothing: one failing page fails the whole call. It pays off for
// long documents; short ones are faster sequentially.
//
// Example:
//
//	results, _, err := voxpdf.Open("book.pdf").Parallel(8).Results()
func (e *Extractor) Parallel(workers int) *Extractor {
	newExt := e.clone()
	if workers < 0 {
		newExt.err = fmt.Errorf("invalid worker count %d", workers)
		return newExt
	}
	newExt.options.parallel = true
	newExt.options.workers = workers
	return newExt
}

// SyncHyphenatedWords merges words split by end-of-line hyphens, so each
// paragraph's Words read the same as its Text. Without it, Text says
// "example" while Words still hold "exam-" and "ple".
//
// Example:
//
//	paragraphs, _, err := voxpdf.Open("book.pdf").SyncHyphenatedWords().Paragraphs()
func (e *Extractor) SyncHyphenatedWords() *Extractor {
	newExt := e.clone()
	newExt.options.syncWords = true
	return newExt
}

// WithCache serves pages from c when present and stores fresh results in it.
//
// Example:
//
//	c := cache.New()
//	ext := voxpdf.Open("book.pdf").WithCache(c)
//	first, _, _ := ext.Pages(0).Text()
//	again, _, _ := ext.Pages(0).Text() // served from c
func (e *Extractor) WithCache(c *cache.ExtractionCache) *Extractor {
	newExt := e.clone()
	newExt.options.cache = c
	return newExt
}

// WithLogger sets the logger used for progress and decode fallbacks.
// By default nothing is logged.
func (e *Extractor) WithLogger(logger *log.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Results extracts the selected pages and returns one result per page in
// page order. Paragraph indices restart at 0 on every page.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	results, warnings, err := voxpdf.Open("book.pdf").Results()
//	for _, page := range results {
//	    fmt.Printf("page %d: %d paragraphs\n", page.PageNum, len(page.Paragraphs))
//	}
func (e *Extractor) Results() ([]model.PageResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	results, err := e.extractPages()
	if err != nil {
		return nil, e.warnings, err
	}
	return results, e.warnings, nil
}

// Words returns the words of the selected pages in reading order.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	words, _, err := voxpdf.Open("book.pdf").Pages(0).Words()
//	for _, w := range words {
//	    fmt.Printf("%s at (%.1f, %.1f)\n", w.Text, w.Bounds.X, w.Bounds.Y)
//	}
func (e *Extractor) Words() ([]model.Word, []Warning, error) {
	results, warnings, err := e.Results()
	if err != nil {
		return nil, warnings, err
	}

	var words []model.Word
	for _, r := range results {
		words = append(words, r.Words...)
	}
	return words, warnings, nil
}

// Paragraphs returns the paragraphs of the selected pages with indices
// contiguous from 0 across all of them.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	paragraphs, _, err := voxpdf.Open("book.pdf").Paragraphs()
//	for _, p := range paragraphs {
//	    speak(p.Text)
//	}
func (e *Extractor) Paragraphs() ([]model.Paragraph, []Warning, error) {
	results, warnings, err := e.Results()
	if err != nil {
		return nil, warnings, err
	}
	return renumber(results), warnings, nil
}

// Text returns the paragraph texts of the selected pages separated by
// blank lines.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	text, warnings, err := voxpdf.Open("book.pdf").Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", voxpdf.FormatWarnings(warnings))
//	}
func (e *Extractor) Text() (string, []Warning, error) {
	paragraphs, warnings, err := e.Paragraphs()
	if err != nil {
		return "", warnings, err
	}
	return joinParagraphs(paragraphs), warnings, nil
}

// TOC returns the flattened outline. An unreadable outline yields an
// empty table of contents and a warning, never an error. ParagraphIndex
// is left at 0; use Document for linked entries.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	toc, _, err := voxpdf.Open("book.pdf").TOC()
//	for _, entry := range toc {
//	    fmt.Printf("%*s%s (page %d)\n", entry.Level*2, "", entry.Title, entry.PageNumber)
//	}
func (e *Extractor) TOC() ([]model.TocEntry, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	return e.loadTOC(), e.warnings, nil
}

// Document extracts the selected pages and the outline, and links each
// TOC entry to the first paragraph on or after its page.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	doc, _, err := voxpdf.Open("book.pdf").Document()
//	for i, chapter := range doc.TOC {
//	    fmt.Println(chapter.Title, len(doc.Section(i)))
//	}
func (e *Extractor) Document() (*Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	results, err := e.extractPages()
	if err != nil {
		return nil, e.warnings, err
	}

	doc := &Document{
		Path:       e.filename,
		PageCount:  e.reader.PageCount(),
		Pages:      results,
		Paragraphs: renumber(results),
		TOC:        e.loadTOC(),
	}
	outline.LinkParagraphs(doc.TOC, doc.Paragraphs)

	return doc, e.warnings, nil
}

// Stream starts extracting pages start through end (0-indexed, inclusive)
// on a background goroutine and returns immediately. Page failures arrive
// as events; the stream always ends with extract.EventComplete. Page
// selection and Parallel do not apply.
//
// Example:
//
//	s := voxpdf.Open("book.pdf").Stream(0, 99)
//	for ev, ok := s.Receive(); ok; ev, ok = s.Receive() {
//	    if ev.Kind == extract.EventPageComplete {
//	        queueForSpeech(ev.Paragraphs)
//	    }
//	}
func (e *Extractor) Stream(start, end int) *extract.Stream {
	open := extract.ReaderOpener
	if e.err != nil {
		err := e.err
		open = func(string) (extract.Document, error) { return nil, err }
	}
	return extract.NewStream(open, e.filename, start, end, e.extractOptions()...)
}

// PageCount returns the number of pages in the document.
// This does NOT close the reader, allowing further operations.
//
// Example:
//
//	ext := voxpdf.Open("book.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureReader(); err != nil {
		return 0, err
	}

	return e.reader.PageCount(), nil
}

// ============================================================================
// Helpers
// ============================================================================

// resolvePages returns the selected pages, deduplicated and sorted.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.reader.PageCount()

	if len(e.options.pages) == 0 {
		pageIndices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageIndices[i] = i
		}
		return pageIndices, nil
	}

	seen := make(map[int]bool)
	var pageIndices []int
	for _, p := range e.options.pages {
		if err := model.CheckPage(p, pageCount); err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			pageIndices = append(pageIndices, p)
		}
	}

	sort.Ints(pageIndices)
	return pageIndices, nil
}

func (e *Extractor) extractOptions() []extract.Option {
	opts := []extract.Option{
		extract.WithWorkers(e.options.workers),
		extract.WithCache(e.options.cache),
		extract.WithLogger(e.options.logger),
	}
	if e.options.syncWords {
		opts = append(opts, extract.WithSyncedWords())
	}
	return opts
}

// extractPages runs the pipeline over the selected pages, sequentially on
// the open reader or in parallel with one reader per worker.
func (e *Extractor) extractPages() ([]model.PageResult, error) {
	pages, err := e.resolvePages()
	if err != nil {
		return nil, err
	}

	var results []model.PageResult
	if e.options.parallel {
		results, err = extract.Parallel(context.Background(), extract.ReaderOpener, e.reader.Path(), pages, e.extractOptions()...)
		if err != nil {
			return nil, err
		}
	} else {
		results, err = e.extractSequential(pages)
		if err != nil {
			return nil, err
		}
	}

	for _, r := range results {
		if len(r.Words) == 0 {
			e.warnings = append(e.warnings, Warning{
				Code:    WarnNoText,
				Page:    r.PageNum,
				Message: "no text found; the page may be scanned or image-only",
			})
		}
	}

	return results, nil
}

func (e *Extractor) extractSequential(pages []int) ([]model.PageResult, error) {
	opts := e.extractOptions()
	results := make([]model.PageResult, 0, len(pages))

	for _, page := range pages {
		if e.options.cache != nil {
			if r, ok := e.options.cache.Result(e.reader.Path(), page); ok {
				results = append(results, r)
				continue
			}
		}

		r, err := extract.ExtractPage(e.reader, page, opts...)
		if err != nil {
			return nil, err
		}

		if e.options.cache != nil {
			e.options.cache.SetResult(e.reader.Path(), r)
		}
		results = append(results, r)
	}

	return results, nil
}

// loadTOC reads the outline, degrading to an empty TOC with a warning.
func (e *Extractor) loadTOC() []model.TocEntry {
	toc, err := outline.Load(e.reader)
	if err != nil {
		e.logger().Warn().Str("path", e.filename).Err(err).Msg("outline unreadable")
		e.warnings = append(e.warnings, Warning{
			Code:    WarnOutlineUnreadable,
			Page:    -1,
			Message: err.Error(),
		})
	}
	return toc
}

func (e *Extractor) logger() *log.Logger {
	if e.options.logger != nil {
		return e.options.logger
	}
	return &log.Logger{Level: log.InfoLevel, Writer: &log.IOWriter{Writer: io.Discard}}
}

// renumber flattens per-page paragraphs and assigns document-wide indices.
func renumber(results []model.PageResult) []model.Paragraph {
	var paragraphs []model.Paragraph
	for _, r := range results {
		for _, p := range r.Paragraphs {
			p.Index = len(paragraphs)
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
