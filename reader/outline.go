package reader

import (
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/outline"
)

// Outline returns the document's bookmark tree with 0-indexed target pages.
//
// The tree is walked item by item with a depth cap and a record of the
// items already seen, so an outline whose /First or /Next links loop back
// fails with an error instead of recursing forever. Target pages are then
// resolved with pdfcpu. When pdfcpu cannot resolve destinations the titles
// are returned without pages (outline.NoPage) and no error. A document
// without an outline returns nil, nil. Errors wrap model.ErrOutlineCorrupt.
func (r *Reader) Outline() ([]outline.Node, error) {
	titles, err := r.outlineTitles()
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, nil
	}

	bookmarks, err := r.bookmarks()
	if err != nil {
		r.logger.Debug().Str("path", r.path).Err(err).Msg("outline destinations unavailable")
		return titles, nil
	}

	return bookmarkNodes(bookmarks, 0)
}

func (r *Reader) outlineTitles() (nodes []outline.Node, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			nodes, err = nil, fmt.Errorf("%w: %v", model.ErrOutlineCorrupt, rec)
		}
	}()

	w := &titleWalk{seen: make(map[string]bool)}
	return w.siblings(r.doc.Trailer().Key("Root").Key("Outlines").Key("First"), 0)
}

// titleWalk collects outline titles. Items are keyed by their dictionary
// text, which holds the item's /Parent, /Prev and /Next references, so two
// keys only collide when the links revisit an item.
type titleWalk struct {
	seen map[string]bool
}

func (w *titleWalk) siblings(first pdf.Value, depth int) ([]outline.Node, error) {
	if first.Kind() != pdf.Dict {
		return nil, nil
	}
	if depth >= outline.MaxDepth {
		return nil, outline.ErrTooDeep
	}

	var nodes []outline.Node
	for item := first; item.Kind() == pdf.Dict; item = item.Key("Next") {
		key := item.String()
		if w.seen[key] {
			return nil, fmt.Errorf("%w: outline item %q is linked more than once", model.ErrOutlineCorrupt, item.Key("Title").Text())
		}
		w.seen[key] = true

		kids, err := w.siblings(item.Key("First"), depth+1)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, outline.Node{Title: item.Key("Title").Text(), Page: outline.NoPage, Children: kids})
	}
	return nodes, nil
}

func (r *Reader) bookmarks() (bookmarks []pdfcpu.Bookmark, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			bookmarks, err = nil, fmt.Errorf("%w: %v", model.ErrOutlineCorrupt, rec)
		}
	}()

	if r.file == nil {
		return nil, fmt.Errorf("%w: reader closed", model.ErrIO)
	}
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	return api.Bookmarks(r.file, conf)
}

func bookmarkNodes(bookmarks []pdfcpu.Bookmark, depth int) ([]outline.Node, error) {
	if len(bookmarks) == 0 {
		return nil, nil
	}
	if depth >= outline.MaxDepth {
		return nil, outline.ErrTooDeep
	}

	nodes := make([]outline.Node, 0, len(bookmarks))
	for _, b := range bookmarks {
		kids, err := bookmarkNodes(b.Kids, depth+1)
		if err != nil {
			return nil, err
		}

		// pdfcpu pages are 1-based; 0 means no destination
		page := outline.NoPage
		if b.PageFrom > 0 {
			page = b.PageFrom - 1
		}

		nodes = append(nodes, outline.Node{Title: b.Title, Page: page, Children: kids})
	}
	return nodes, nil
}
