package bridge

import "github.com/tsawler/voxpdf/model"

// WordRecord is a word flattened for the boundary
type WordRecord struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Page     int
	FontSize float64
}

// ParagraphRecord is a paragraph without its word list
type ParagraphRecord struct {
	Index      int
	Text       string
	PageNumber int
	WordCount  int
}

// TOCRecord is one flattened outline entry.
//
// ParagraphPage is the first page at or after PageNumber that has a
// paragraph, and Paragraph(h, ParagraphPage, ParagraphIndex) is the first
// paragraph of the section. ParagraphPage is -1 when the entry has no
// destination or no later page has text.
type TOCRecord struct {
	Title          string
	Level          int
	PageNumber     int
	ParagraphPage  int
	ParagraphIndex int
	HasDestination bool
}

func wordRecord(w model.Word) WordRecord {
	return WordRecord{
		Text:     w.Text,
		X:        w.Bounds.X,
		Y:        w.Bounds.Y,
		Width:    w.Bounds.Width,
		Height:   w.Bounds.Height,
		Page:     w.PageNumber,
		FontSize: w.FontSize,
	}
}

func paragraphRecord(p model.Paragraph) ParagraphRecord {
	return ParagraphRecord{
		Index:      p.Index,
		Text:       p.Text,
		PageNumber: p.PageNumber,
		WordCount:  p.WordCount(),
	}
}

func tocRecord(e model.TocEntry) TOCRecord {
	return TOCRecord{
		Title:          e.Title,
		Level:          e.Level,
		PageNumber:     e.PageNumber,
		ParagraphPage:  -1,
		HasDestination: e.HasDestination,
	}
}
