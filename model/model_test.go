package model

import (
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Rect Tests
// ============================================================================

func TestNewRect(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	if r.X != 10 || r.Y != 20 || r.Width != 100 || r.Height != 50 {
		t.Errorf("NewRect() = %+v, want {10, 20, 100, 50}", r)
	}
}

func TestNewRectFromBounds(t *testing.T) {
	tests := []struct {
		name                   string
		minX, minY, maxX, maxY float64
		want                   Rect
	}{
		{"normal", 10, 20, 50, 70, Rect{10, 20, 40, 50}},
		{"reversed", 50, 70, 10, 20, Rect{10, 20, 40, 50}},
		{"degenerate", 10, 10, 10, 10, Rect{10, 10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRectFromBounds(tt.minX, tt.minY, tt.maxX, tt.maxY)
			if got != tt.want {
				t.Errorf("NewRectFromBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Left() != 10 {
		t.Errorf("Left() = %v, want 10", r.Left())
	}
	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 20 {
		t.Errorf("Bottom() = %v, want 20", r.Bottom())
	}
	if r.Top() != 60 {
		t.Errorf("Top() = %v, want 60", r.Top())
	}
	if r.Area() != 1200 {
		t.Errorf("Area() = %v, want 1200", r.Area())
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 20)

	got := a.Union(b)
	want := Rect{0, 0, 30, 25}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !(Rect{}).IsEmpty() {
		t.Error("zero rect should be empty")
	}
	if NewRect(0, 0, 1, 0).IsEmpty() == false {
		t.Error("zero-height rect should be empty")
	}
	if NewRect(0, 0, 1, 1).IsEmpty() {
		t.Error("unit rect should not be empty")
	}
}

// ============================================================================
// Paragraph Tests
// ============================================================================

func TestParagraphCreation(t *testing.T) {
	word := NewWord("test", NewRect(0, 0, 10, 10), 0, 12)
	para := NewParagraph(0, "test", 0, []Word{word})

	if para.Index != 0 {
		t.Errorf("Index = %d, want 0", para.Index)
	}
	if para.Text != "test" {
		t.Errorf("Text = %q, want %q", para.Text, "test")
	}
	if para.WordCount() != 1 {
		t.Errorf("WordCount() = %d, want 1", para.WordCount())
	}
}

func TestParagraphBounds(t *testing.T) {
	para := NewParagraph(0, "a b", 0, []Word{
		NewWord("a", NewRect(10, 100, 5, 12), 0, 12),
		NewWord("b", NewRect(20, 88, 5, 12), 0, 12),
	})

	got := para.Bounds()
	want := Rect{10, 88, 15, 24}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	if (Paragraph{}).Bounds() != (Rect{}) {
		t.Error("empty paragraph should have zero bounds")
	}
}

func TestPageResultText(t *testing.T) {
	result := PageResult{
		PageNum: 2,
		Paragraphs: []Paragraph{
			NewParagraph(0, "First.", 2, nil),
			NewParagraph(1, "Second.", 2, nil),
		},
	}

	if got := result.Text(); got != "First.\n\nSecond." {
		t.Errorf("Text() = %q", got)
	}
}

// ============================================================================
// TocEntry Tests
// ============================================================================

func TestTocEntryCreation(t *testing.T) {
	entry := NewTocEntry("Introduction", 0, 1, 0)

	if entry.Title != "Introduction" {
		t.Errorf("Title = %q", entry.Title)
	}
	if entry.PageNumber != 1 {
		t.Errorf("PageNumber = %d, want 1", entry.PageNumber)
	}
	if !entry.HasDestination {
		t.Error("expected HasDestination")
	}
	if !entry.IsChapter() {
		t.Error("level 0 should be a chapter")
	}
	if entry.IsSection() {
		t.Error("level 0 should not be a section")
	}

	section := NewTocEntry("Background", 1, 3, 0)
	if !section.IsSection() || section.IsChapter() {
		t.Error("level 1 should be a section only")
	}
}

// ============================================================================
// Error Tests
// ============================================================================

func TestCheckPage(t *testing.T) {
	tests := []struct {
		page, count int
		wantErr     bool
	}{
		{0, 1, false},
		{4, 5, false},
		{5, 5, true},
		{-1, 5, true},
		{0, 0, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d of %d", tt.page, tt.count), func(t *testing.T) {
			err := CheckPage(tt.page, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckPage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var pnf *PageNotFoundError
			if !errors.As(err, &pnf) {
				t.Fatalf("expected *PageNotFoundError, got %T", err)
			}
			if pnf.Page != tt.page || pnf.PageCount != tt.count {
				t.Errorf("got page %d count %d", pnf.Page, pnf.PageCount)
			}
		})
	}
}

func TestPageNotFoundMessage(t *testing.T) {
	err := &PageNotFoundError{Page: 7, PageCount: 3}
	want := "page 7 not found (document has 3 pages)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsPageNotFound(t *testing.T) {
	wrapped := fmt.Errorf("extracting: %w", &PageNotFoundError{Page: 1, PageCount: 1})
	if !IsPageNotFound(wrapped) {
		t.Error("expected wrapped PageNotFoundError to match")
	}
	if IsPageNotFound(ErrInvalidDocument) {
		t.Error("ErrInvalidDocument is not a page error")
	}
}
