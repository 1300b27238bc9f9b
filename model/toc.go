package model

// TocEntry is one flattened entry of the document outline (bookmarks).
//
// Hierarchy is encoded only through Level, assigned in pre-order: an entry
// at level n+1 belongs to the nearest preceding entry at level n.
type TocEntry struct {
	// Title is the bookmark label
	Title string

	// Level is the nesting depth: 0 = chapter, 1 = section, 2 = subsection, ...
	Level int

	// PageNumber is the 0-indexed destination page (0 when HasDestination is false)
	PageNumber int

	// ParagraphIndex is a best-effort cross-reference into the paragraph list
	ParagraphIndex int

	// HasDestination reports whether the outline node named a target page
	HasDestination bool
}

// NewTocEntry creates a TOC entry with a destination page
func NewTocEntry(title string, level, pageNumber, paragraphIndex int) TocEntry {
	return TocEntry{
		Title:          title,
		Level:          level,
		PageNumber:     pageNumber,
		ParagraphIndex: paragraphIndex,
		HasDestination: true,
	}
}

// IsChapter returns true if this is a top-level entry (level 0)
func (e TocEntry) IsChapter() bool {
	return e.Level == 0
}

// IsSection returns true if this is a section (level 1)
func (e TocEntry) IsSection() bool {
	return e.Level == 1
}
