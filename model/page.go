package model

// PageResult holds everything extracted from one page.
// Ownership passes to the caller.
type PageResult struct {
	PageNum    int // 0-indexed
	Words      []Word
	Paragraphs []Paragraph
}

// Text returns the page's paragraph texts separated by blank lines
func (p PageResult) Text() string {
	var text string
	for i, para := range p.Paragraphs {
		if i > 0 {
			text += "\n\n"
		}
		text += para.Text
	}
	return text
}
