package bridge

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/voxpdf/cache"
	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/outline"
	"github.com/tsawler/voxpdf/text"
)

type fakeDoc struct {
	pages      []string
	outline    []outline.Node
	outlineErr error
	closed     bool
	charCalls  int
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) Chars(page int) ([]text.Char, error) {
	if err := model.CheckPage(page, len(d.pages)); err != nil {
		return nil, err
	}
	d.charCalls++

	var chars []text.Char
	x, y := 72.0, 700.0
	for _, r := range d.pages[page] {
		if r == '\n' {
			x, y = 72, y-40
			continue
		}
		chars = append(chars, text.Char{Rune: r, X: x, Y: y, FontSize: 12, Width: 6})
		x += 6
	}
	return chars, nil
}

func (d *fakeDoc) PageText(page int) (string, error) {
	if err := model.CheckPage(page, len(d.pages)); err != nil {
		return "", err
	}
	return d.pages[page], nil
}

func (d *fakeDoc) Outline() ([]outline.Node, error) {
	return d.outline, d.outlineErr
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

func registryWith(doc *fakeDoc) *Registry {
	return NewRegistry(WithOpener(func(path string) (Document, error) {
		if path == "missing.pdf" {
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidDocument, fs.ErrNotExist)
		}
		return doc, nil
	}))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, StatusOK},
		{"page not found", &model.PageNotFoundError{Page: 3, PageCount: 1}, StatusPageNotFound},
		{"wrapped page not found", fmt.Errorf("extract: %w", &model.PageNotFoundError{}), StatusPageNotFound},
		{"invalid document", model.ErrInvalidDocument, StatusInvalidDocument},
		{"decode failure", fmt.Errorf("page 1: %w", model.ErrContentDecode), StatusInvalidDocument},
		{"io", fmt.Errorf("%w: permission denied", model.ErrIO), StatusIOError},
		{"oom", model.ErrOutOfMemory, StatusOutOfMemory},
		{"invalid text", model.ErrInvalidText, StatusInvalidText},
		{"unknown", errors.New("something else"), StatusInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestStatus_Values(t *testing.T) {
	assert.Equal(t, 0, int(StatusOK))
	assert.Equal(t, 1, int(StatusInvalidDocument))
	assert.Equal(t, 2, int(StatusPageNotFound))
	assert.Equal(t, 3, int(StatusIOError))
	assert.Equal(t, 4, int(StatusOutOfMemory))
	assert.Equal(t, 5, int(StatusInvalidText))

	assert.Equal(t, "page not found", StatusPageNotFound.String())
	assert.Equal(t, "unknown", Status(99).String())
}

func TestRegistry_Lifecycle(t *testing.T) {
	doc := &fakeDoc{pages: []string{"Hello world", "Second page"}}
	r := registryWith(doc)

	h, status := r.Open("doc.pdf")
	require.Equal(t, StatusOK, status)
	require.NotEmpty(t, h)
	assert.Equal(t, 1, r.Len())

	count, status := r.PageCount(h)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, 2, count)

	assert.Equal(t, StatusOK, r.Close(h))
	assert.True(t, doc.closed)
	assert.Equal(t, 0, r.Len())

	_, status = r.PageCount(h)
	assert.Equal(t, StatusInvalidDocument, status, "closed handle")
	assert.Equal(t, StatusInvalidDocument, r.Close(h), "double close")
}

func TestRegistry_OpenMissing(t *testing.T) {
	r := registryWith(&fakeDoc{})

	h, status := r.Open("missing.pdf")
	assert.Equal(t, StatusInvalidDocument, status)
	assert.Empty(t, h)
}

func TestRegistry_OpenWithReader(t *testing.T) {
	r := NewRegistry()

	_, status := r.Open(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Equal(t, StatusInvalidDocument, status)
}

func TestRegistry_UniqueHandles(t *testing.T) {
	r := registryWith(&fakeDoc{pages: []string{"x"}})

	h1, _ := r.Open("a.pdf")
	h2, _ := r.Open("a.pdf")
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, r.Len())

	r.CloseAll()
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_PageText(t *testing.T) {
	r := registryWith(&fakeDoc{pages: []string{"Hello world"}})
	h, _ := r.Open("doc.pdf")

	s, status := r.PageText(h, 0)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "Hello world", s)

	_, status = r.PageText(h, 1)
	assert.Equal(t, StatusPageNotFound, status)

	_, status = r.PageText(Handle("nope"), 0)
	assert.Equal(t, StatusInvalidDocument, status)
}

func TestRegistry_InvalidText(t *testing.T) {
	r := registryWith(&fakeDoc{pages: []string{"bad\x00text"}})
	h, _ := r.Open("doc.pdf")

	_, status := r.PageText(h, 0)
	assert.Equal(t, StatusInvalidText, status)

	_, status = r.Word(h, 0, 0)
	assert.Equal(t, StatusInvalidText, status)
}

func TestRegistry_Words(t *testing.T) {
	r := registryWith(&fakeDoc{pages: []string{"Hello world"}})
	h, _ := r.Open("doc.pdf")

	count, status := r.WordCount(h, 0)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, 2, count)

	w, status := r.Word(h, 0, 1)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "world", w.Text)
	assert.Equal(t, 0, w.Page)
	assert.Greater(t, w.Width, 0.0)
	assert.Equal(t, 12.0, w.FontSize)

	_, status = r.Word(h, 0, 2)
	assert.Equal(t, StatusPageNotFound, status)
	_, status = r.Word(h, 0, -1)
	assert.Equal(t, StatusPageNotFound, status)
	_, status = r.WordCount(h, 5)
	assert.Equal(t, StatusPageNotFound, status)
}

func TestRegistry_Paragraphs(t *testing.T) {
	r := registryWith(&fakeDoc{pages: []string{"First para- graph\nSecond one"}})
	h, _ := r.Open("doc.pdf")

	count, status := r.ParagraphCount(h, 0)
	require.Equal(t, StatusOK, status)
	require.Equal(t, 2, count)

	p, status := r.Paragraph(h, 0, 0)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "First paragraph", p.Text)
	assert.Equal(t, 3, p.WordCount)
	assert.Equal(t, 0, p.Index)

	p, status = r.Paragraph(h, 0, 1)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "Second one", p.Text)
	assert.Equal(t, 1, p.Index)

	_, status = r.Paragraph(h, 0, 2)
	assert.Equal(t, StatusPageNotFound, status)
}

func TestRegistry_MemoizesPages(t *testing.T) {
	doc := &fakeDoc{pages: []string{"Hello world"}}
	c := cache.New()
	r := NewRegistry(WithCache(c), WithOpener(func(string) (Document, error) { return doc, nil }))
	h, _ := r.Open("doc.pdf")

	r.WordCount(h, 0)
	r.Word(h, 0, 0)
	r.ParagraphCount(h, 0)

	assert.Equal(t, 1, doc.charCalls)
	assert.Equal(t, 1, c.Len())
}

func TestRegistry_TOC(t *testing.T) {
	doc := &fakeDoc{
		pages: []string{"a", "b", "c"},
		outline: []outline.Node{
			{Title: "Part One", Page: 0, Children: []outline.Node{
				{Title: "Chapter 1", Page: 1},
			}},
			{Title: "Appendix", Page: outline.NoPage},
		},
	}
	r := registryWith(doc)
	h, _ := r.Open("doc.pdf")

	count, status := r.TOCCount(h)
	require.Equal(t, StatusOK, status)
	require.Equal(t, 3, count)

	e, status := r.TOCEntry(h, 1)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "Chapter 1", e.Title)
	assert.Equal(t, 1, e.Level)
	assert.Equal(t, 1, e.PageNumber)
	assert.True(t, e.HasDestination)

	e, status = r.TOCEntry(h, 2)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, 0, e.PageNumber)
	assert.False(t, e.HasDestination)

	_, status = r.TOCEntry(h, 3)
	assert.Equal(t, StatusPageNotFound, status)
}

func TestRegistry_TOCParagraphLink(t *testing.T) {
	doc := &fakeDoc{
		pages: []string{"", "intro text", ""},
		outline: []outline.Node{
			{Title: "Prologue", Page: 0},
			{Title: "Intro", Page: 1},
			{Title: "Blank", Page: 2},
			{Title: "Notes", Page: outline.NoPage},
		},
	}
	r := registryWith(doc)
	h, _ := r.Open("doc.pdf")

	tests := []struct {
		entry    int
		wantPage int
	}{
		{0, 1},
		{1, 1},
		{2, -1},
		{3, -1},
	}
	for _, tt := range tests {
		e, status := r.TOCEntry(h, tt.entry)
		require.Equal(t, StatusOK, status)
		assert.Equal(t, tt.wantPage, e.ParagraphPage, "entry %q", e.Title)
		assert.Equal(t, 0, e.ParagraphIndex)
	}

	// An empty target page resolves to the next page with text
	e, _ := r.TOCEntry(h, 0)
	assert.Equal(t, 0, e.PageNumber)
	p, status := r.Paragraph(h, e.ParagraphPage, e.ParagraphIndex)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "intro text", p.Text)
}

func TestRegistry_CorruptTOC(t *testing.T) {
	doc := &fakeDoc{pages: []string{"a"}, outlineErr: errors.New("outline last pointer missing")}
	r := registryWith(doc)
	h, _ := r.Open("doc.pdf")

	count, status := r.TOCCount(h)
	assert.Equal(t, StatusOK, status, "corrupt outline never fails")
	assert.Equal(t, 0, count)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry(WithOpener(func(string) (Document, error) {
		return &fakeDoc{pages: []string{"one two", "three four"}}, nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			h, status := r.Open(fmt.Sprintf("doc-%d.pdf", n%2))
			if status != StatusOK {
				t.Errorf("open failed: %v", status)
				return
			}
			defer r.Close(h)
			for page := 0; page < 2; page++ {
				if count, status := r.WordCount(h, page); status != StatusOK || count != 2 {
					t.Errorf("WordCount = %d, %v", count, status)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, r.Len())
}
