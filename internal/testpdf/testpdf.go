// Package testpdf writes small, valid PDF files for tests.
//
// Pages use a monospaced Type1 font at 12pt whose glyphs advance 7.2pt.
// Each string in a page's lines is drawn on its own baseline, 14pt below
// the previous one; an empty string leaves a blank line, which is enough
// vertical space to start a new paragraph.
package testpdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	// FontSize is the size every line is drawn at
	FontSize = 12.0

	// Leading is the baseline-to-baseline distance between lines
	Leading = 14.0

	// Top is the baseline of the first line of each page
	Top = 700.0

	// Left is the x origin of every line
	Left = 72.0
)

// Bookmark is one outline entry. Page is 0-indexed; a negative Page
// writes the bookmark without a destination.
type Bookmark struct {
	Title    string
	Page     int
	Children []Bookmark
}

type builder struct {
	objects []string
}

func (b *builder) add(body string) int {
	b.objects = append(b.objects, body)
	return len(b.objects)
}

func (b *builder) set(num int, body string) {
	b.objects[num-1] = body
}

func (b *builder) bytes(root int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(b.objects))
	for i, body := range b.objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(b.objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(b.objects)+1, root, xref)

	return buf.Bytes()
}

// Build returns a PDF with one page per entry of pages, each page drawing
// its lines top to bottom, and the given outline.
func Build(pages [][]string, outline []Bookmark) []byte {
	b := &builder{}
	catalog, tree, pageRefs := addPages(b, pages)

	if len(outline) == 0 {
		b.set(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", tree))
		return b.bytes(catalog)
	}

	root := b.add("")
	first, last, count := addBookmarks(b, outline, root, pageRefs)
	b.set(root, fmt.Sprintf("<< /Type /Outlines /First %d 0 R /Last %d 0 R /Count %d >>", first, last, count))
	b.set(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R /Outlines %d 0 R >>", tree, root))

	return b.bytes(catalog)
}

// Cycle selects how BuildCyclic corrupts the outline
type Cycle int

const (
	// CycleFirst makes an outline item its own first child
	CycleFirst Cycle = iota
	// CycleNext links two sibling items to each other through /Next
	CycleNext
)

// BuildCyclic is like Build but writes an outline that loops back on
// itself. Every item points at the first page.
func BuildCyclic(pages [][]string, cycle Cycle) []byte {
	b := &builder{}
	catalog, tree, pageRefs := addPages(b, pages)

	dest := ""
	if len(pageRefs) > 0 {
		dest = fmt.Sprintf(" /Dest [%d 0 R /Fit]", pageRefs[0])
	}

	root := b.add("")
	a := b.add("")
	switch cycle {
	case CycleFirst:
		b.set(a, fmt.Sprintf("<< /Title (Loop) /Parent %d 0 R%s /First %d 0 R /Last %d 0 R /Count 1 >>", root, dest, a, a))
		b.set(root, fmt.Sprintf("<< /Type /Outlines /First %d 0 R /Last %d 0 R /Count 1 >>", a, a))
	case CycleNext:
		c := b.add("")
		b.set(a, fmt.Sprintf("<< /Title (Ping) /Parent %d 0 R%s /Next %d 0 R >>", root, dest, c))
		b.set(c, fmt.Sprintf("<< /Title (Pong) /Parent %d 0 R%s /Prev %d 0 R /Next %d 0 R >>", root, dest, a, a))
		b.set(root, fmt.Sprintf("<< /Type /Outlines /First %d 0 R /Last %d 0 R /Count 2 >>", a, c))
	}
	b.set(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R /Outlines %d 0 R >>", tree, root))

	return b.bytes(catalog)
}

// addPages writes the font, the page tree and the pages. The catalog is
// reserved for the caller to fill in.
func addPages(b *builder, pages [][]string) (catalog, tree int, pageRefs []int) {
	catalog = b.add("")
	tree = b.add("")

	widths := strings.TrimSpace(strings.Repeat("600 ", 95))
	font := b.add(fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Courier /FirstChar 32 /LastChar 126 /Widths [%s] >>", widths))

	pageRefs = make([]int, len(pages))
	kids := make([]string, len(pages))
	for i, lines := range pages {
		stream := contentStream(lines)
		content := b.add(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
		pageRefs[i] = b.add(fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			tree, font, content))
		kids[i] = fmt.Sprintf("%d 0 R", pageRefs[i])
	}
	b.set(tree, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))

	return catalog, tree, pageRefs
}

// addBookmarks writes one sibling list and returns its first and last
// object numbers and the number of visible descendants.
func addBookmarks(b *builder, items []Bookmark, parent int, pageRefs []int) (first, last, count int) {
	nums := make([]int, len(items))
	for i := range items {
		nums[i] = b.add("")
	}

	for i, item := range items {
		var dict strings.Builder
		fmt.Fprintf(&dict, "<< /Title (%s) /Parent %d 0 R", escape(item.Title), parent)
		if i > 0 {
			fmt.Fprintf(&dict, " /Prev %d 0 R", nums[i-1])
		}
		if i < len(items)-1 {
			fmt.Fprintf(&dict, " /Next %d 0 R", nums[i+1])
		}
		if item.Page >= 0 && item.Page < len(pageRefs) {
			fmt.Fprintf(&dict, " /Dest [%d 0 R /Fit]", pageRefs[item.Page])
		}

		if len(item.Children) > 0 {
			kf, kl, kc := addBookmarks(b, item.Children, nums[i], pageRefs)
			fmt.Fprintf(&dict, " /First %d 0 R /Last %d 0 R /Count %d", kf, kl, kc)
			count += kc
		}

		dict.WriteString(" >>")
		b.set(nums[i], dict.String())
	}

	return nums[0], nums[len(nums)-1], count + len(items)
}

func contentStream(lines []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "BT /F1 %g Tf %g %g Td", FontSize, Left, Top)
	for i, line := range lines {
		if i > 0 {
			fmt.Fprintf(&sb, " 0 %g Td", -Leading)
		}
		if line != "" {
			fmt.Fprintf(&sb, " (%s) Tj", escape(line))
		}
	}
	sb.WriteString(" ET")
	return sb.String()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// Write builds a PDF in a temporary directory and returns its path
func Write(t testing.TB, pages [][]string, outline ...Bookmark) string {
	t.Helper()
	return writeFile(t, Build(pages, outline))
}

// WriteCyclic writes a BuildCyclic PDF and returns its path
func WriteCyclic(t testing.TB, pages [][]string, cycle Cycle) string {
	t.Helper()
	return writeFile(t, BuildCyclic(pages, cycle))
}

func writeFile(t testing.TB, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write test PDF: %v", err)
	}
	return path
}
