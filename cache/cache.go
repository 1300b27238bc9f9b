package cache

import (
	"sync"

	"github.com/tsawler/voxpdf/model"
)

// Key identifies one page of one document
type Key struct {
	Path string
	Page int
}

// ExtractionCache memoizes per-page extraction results.
//
// A cache is created and owned by the caller and is safe for concurrent
// use. It is unbounded; callers that process many documents should Clear
// it or drop it between sessions. Values are copied on the way in and on
// the way out.
type ExtractionCache struct {
	mu         sync.RWMutex
	words      map[Key][]model.Word
	paragraphs map[Key][]model.Paragraph
}

// New creates an empty cache
func New() *ExtractionCache {
	return &ExtractionCache{
		words:      make(map[Key][]model.Word),
		paragraphs: make(map[Key][]model.Paragraph),
	}
}

// Words returns the cached words for a page
func (c *ExtractionCache) Words(path string, page int) ([]model.Word, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	words, ok := c.words[Key{Path: path, Page: page}]
	if !ok {
		return nil, false
	}
	return copyWords(words), true
}

// SetWords stores the words for a page
func (c *ExtractionCache) SetWords(path string, page int, words []model.Word) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.words[Key{Path: path, Page: page}] = copyWords(words)
}

// Paragraphs returns the cached paragraphs for a page
func (c *ExtractionCache) Paragraphs(path string, page int) ([]model.Paragraph, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paragraphs, ok := c.paragraphs[Key{Path: path, Page: page}]
	if !ok {
		return nil, false
	}
	return copyParagraphs(paragraphs), true
}

// SetParagraphs stores the paragraphs for a page
func (c *ExtractionCache) SetParagraphs(path string, page int, paragraphs []model.Paragraph) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paragraphs[Key{Path: path, Page: page}] = copyParagraphs(paragraphs)
}

// Result returns the cached words and paragraphs of a page. Both must be
// present for a hit.
func (c *ExtractionCache) Result(path string, page int) (model.PageResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := Key{Path: path, Page: page}
	words, ok := c.words[key]
	if !ok {
		return model.PageResult{}, false
	}
	paragraphs, ok := c.paragraphs[key]
	if !ok {
		return model.PageResult{}, false
	}

	return model.PageResult{
		PageNum:    page,
		Words:      copyWords(words),
		Paragraphs: copyParagraphs(paragraphs),
	}, true
}

// SetResult stores the words and paragraphs of a page together
func (c *ExtractionCache) SetResult(path string, result model.PageResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key{Path: path, Page: result.PageNum}
	c.words[key] = copyWords(result.Words)
	c.paragraphs[key] = copyParagraphs(result.Paragraphs)
}

// Clear removes every entry
func (c *ExtractionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.words)
	clear(c.paragraphs)
}

// Len returns the number of cached pages
func (c *ExtractionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := len(c.words)
	for key := range c.paragraphs {
		if _, ok := c.words[key]; !ok {
			n++
		}
	}
	return n
}

func copyWords(words []model.Word) []model.Word {
	if words == nil {
		return nil
	}
	out := make([]model.Word, len(words))
	copy(out, words)
	return out
}

func copyParagraphs(paragraphs []model.Paragraph) []model.Paragraph {
	if paragraphs == nil {
		return nil
	}
	out := make([]model.Paragraph, len(paragraphs))
	for i, p := range paragraphs {
		p.Words = copyWords(p.Words)
		out[i] = p
	}
	return out
}
