package reader

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/voxpdf/internal/testpdf"
	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/text"
)

// onePerPage puts each string on its own page
func onePerPage(lines ...string) [][]string {
	pages := make([][]string, len(lines))
	for i, l := range lines {
		pages[i] = []string{l}
	}
	return pages
}

var sampleOutline = []testpdf.Bookmark{
	{Title: "Chapter 1", Page: 0, Children: []testpdf.Bookmark{
		{Title: "Section 1.1", Page: 0},
	}},
	{Title: "Chapter 2", Page: 1},
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, model.ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected the not-exist cause to be kept, got %v", err)
	}
}

func TestOpen_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("just some notes, not a PDF"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, model.ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, model.ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
	if !strings.Contains(err.Error(), "empty file") {
		t.Errorf("expected the detected format in the message, got %v", err)
	}
}

func TestOpen_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, model.ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	path := testpdf.Write(t, onePerPage("Hello World", "Second page"))

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	if r.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", r.PageCount())
	}
	if r.Path() != path {
		t.Errorf("Path() = %q, want %q", r.Path(), path)
	}
}

func TestReader_Chars(t *testing.T) {
	r, err := Open(testpdf.Write(t, onePerPage("Hello World", "Second page")))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	chars, err := r.Chars(0)
	if err != nil {
		t.Fatalf("Chars failed: %v", err)
	}
	if len(chars) == 0 {
		t.Fatal("expected glyphs on page 0")
	}

	words := text.AssemblePage(chars, 0)
	var got []string
	for _, w := range words {
		got = append(got, w.Text)
	}
	if strings.Join(got, " ") != "Hello World" {
		t.Errorf("words = %v, want [Hello World]", got)
	}
}

func TestReader_PageOutOfRange(t *testing.T) {
	r, err := Open(testpdf.Write(t, onePerPage("Only page")))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	for _, page := range []int{-1, 1, 10} {
		_, err := r.Chars(page)
		if !model.IsPageNotFound(err) {
			t.Errorf("Chars(%d): expected PageNotFoundError, got %v", page, err)
		}
		_, err = r.PageText(page)
		if !model.IsPageNotFound(err) {
			t.Errorf("PageText(%d): expected PageNotFoundError, got %v", page, err)
		}
	}
}

func TestReader_PageText(t *testing.T) {
	r, err := Open(testpdf.Write(t, onePerPage("Hello World")))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	s, err := r.PageText(0)
	if err != nil {
		t.Fatalf("PageText failed: %v", err)
	}
	if !strings.Contains(s, "Hello") {
		t.Errorf("PageText() = %q, want it to contain Hello", s)
	}
}

func TestReader_OutlineAbsent(t *testing.T) {
	r, err := Open(testpdf.Write(t, onePerPage("One", "Two")))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	nodes, err := r.Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("expected no outline, got %+v", nodes)
	}
}

func TestReader_Outline(t *testing.T) {
	r, err := Open(testpdf.Write(t, onePerPage("One", "Two"), sampleOutline...))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	nodes, err := r.Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %+v", nodes)
	}
	if nodes[0].Title != "Chapter 1" || nodes[1].Title != "Chapter 2" {
		t.Errorf("titles = %q, %q", nodes[0].Title, nodes[1].Title)
	}
	if len(nodes[0].Children) != 1 || nodes[0].Children[0].Title != "Section 1.1" {
		t.Errorf("children = %+v", nodes[0].Children)
	}

	// Destinations are resolved when pdfcpu accepts the file
	if nodes[1].HasDestination() && nodes[1].Page != 1 {
		t.Errorf("Chapter 2 page = %d, want 1", nodes[1].Page)
	}
}

func TestReader_CloseTwice(t *testing.T) {
	r, err := Open(testpdf.Write(t, onePerPage("x")))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestAppendGlyphs(t *testing.T) {
	chars := appendGlyphs(nil, "abc", 10, 20, 12, 18)
	if len(chars) != 3 {
		t.Fatalf("expected 3 glyphs, got %d", len(chars))
	}
	for i, c := range chars {
		if c.Width != 6 || c.X != 10+float64(i)*6 || c.Y != 20 || c.FontSize != 12 {
			t.Errorf("glyph %d = %+v", i, c)
		}
	}

	if got := appendGlyphs(chars, "", 0, 0, 12, 0); len(got) != 3 {
		t.Error("empty run should add nothing")
	}
}

func TestReader_OutlineCycle(t *testing.T) {
	tests := []struct {
		name  string
		cycle testpdf.Cycle
	}{
		{"item is its own first child", testpdf.CycleFirst},
		{"siblings link to each other", testpdf.CycleNext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Open(testpdf.WriteCyclic(t, onePerPage("One", "Two"), tt.cycle))
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer r.Close()

			nodes, err := r.Outline()
			if !errors.Is(err, model.ErrOutlineCorrupt) {
				t.Fatalf("Outline() error = %v, want ErrOutlineCorrupt", err)
			}
			if nodes != nil {
				t.Errorf("expected no nodes, got %+v", nodes)
			}

			// The pages themselves are still readable
			if _, err := r.Chars(0); err != nil {
				t.Errorf("Chars failed: %v", err)
			}
		})
	}
}

func TestRunMetrics(t *testing.T) {
	tests := []struct {
		name              string
		s                 string
		size, width       float64
		wantSize, wantWid float64
	}{
		{"reported", "abc", 10, 15, 10, 15},
		{"missing size", "abc", 0, 15, FallbackFontSize, 15},
		{"missing both", "abc", 0, 0, FallbackFontSize, 3 * FallbackFontSize * text.GlyphWidthFactor},
		{"negative size", "ab", -4, 0, FallbackFontSize, 2 * FallbackFontSize * text.GlyphWidthFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, width := runMetrics(tt.s, tt.size, tt.width)
			if size != tt.wantSize || math.Abs(width-tt.wantWid) > 1e-9 {
				t.Errorf("runMetrics(%q, %g, %g) = %g, %g, want %g, %g",
					tt.s, tt.size, tt.width, size, width, tt.wantSize, tt.wantWid)
			}
		})
	}
}
