package outline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/voxpdf/model"
)

// MaxDepth is the number of nesting levels Flatten accepts.
const MaxDepth = 64

// ErrTooDeep is returned when an outline nests deeper than MaxDepth.
var ErrTooDeep = fmt.Errorf("outline deeper than %d levels: %w", MaxDepth, model.ErrOutlineCorrupt)

// Source supplies a raw outline tree
type Source interface {
	Outline() ([]Node, error)
}

// Flatten converts an outline tree into a pre-order list of TOC entries.
//
// Each entry's Level is its depth (roots are 0); a child always follows its
// parent and precedes the parent's next sibling. Nodes without a target
// page map to PageNumber 0 with HasDestination false. Titles are trimmed.
func Flatten(nodes []Node) ([]model.TocEntry, error) {
	entries := []model.TocEntry{}
	if err := flatten(nodes, 0, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func flatten(nodes []Node, level int, entries *[]model.TocEntry) error {
	if len(nodes) == 0 {
		return nil
	}
	if level >= MaxDepth {
		return ErrTooDeep
	}

	for _, n := range nodes {
		entry := model.TocEntry{
			Title: strings.TrimSpace(n.Title),
			Level: level,
		}
		if n.HasDestination() {
			entry.PageNumber = n.Page
			entry.HasDestination = true
		}
		*entries = append(*entries, entry)

		if err := flatten(n.Children, level+1, entries); err != nil {
			return err
		}
	}
	return nil
}

// Load reads and flattens the outline of src.
//
// A missing or unreadable outline never fails the caller: Load always
// returns a non-nil (possibly empty) slice, and the error, if any, is
// diagnostic only. The error wraps model.ErrOutlineCorrupt.
func Load(src Source) ([]model.TocEntry, error) {
	empty := []model.TocEntry{}
	if src == nil {
		return empty, nil
	}

	nodes, err := src.Outline()
	if err != nil {
		if !errors.Is(err, model.ErrOutlineCorrupt) {
			err = fmt.Errorf("%w: %w", model.ErrOutlineCorrupt, err)
		}
		return empty, err
	}

	entries, err := Flatten(nodes)
	if err != nil {
		return empty, err
	}
	return entries, nil
}

// LinkParagraphs sets each entry's ParagraphIndex to the Index of the
// first paragraph on or after the entry's page, or 0 when there is none.
// Paragraphs must be in document order. Entries are updated in place.
func LinkParagraphs(entries []model.TocEntry, paragraphs []model.Paragraph) {
	for i := range entries {
		entries[i].ParagraphIndex = 0
		if !entries[i].HasDestination {
			continue
		}

		page := entries[i].PageNumber
		j := sort.Search(len(paragraphs), func(k int) bool {
			return paragraphs[k].PageNumber >= page
		})
		if j < len(paragraphs) {
			entries[i].ParagraphIndex = paragraphs[j].Index
		}
	}
}
