package extract

import (
	"github.com/tsawler/voxpdf/layout"
	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/text"
)

// ExtractPage runs the full pipeline on one 0-indexed page: glyphs to
// words, words to paragraphs, then hyphenation reassembly. Paragraph
// indices start at 0 for the page.
func ExtractPage(doc Document, page int, opts ...Option) (model.PageResult, error) {
	return extractPage(doc, page, newConfig(opts))
}

func extractPage(doc Document, page int, cfg *config) (model.PageResult, error) {
	if err := model.CheckPage(page, doc.PageCount()); err != nil {
		return model.PageResult{}, err
	}

	chars, err := doc.Chars(page)
	if err != nil {
		return model.PageResult{}, err
	}

	words := text.AssemblePage(chars, page)
	paragraphs := layout.ReassembleHyphenation(layout.DetectParagraphs(words))

	if cfg.syncWords {
		for i := range paragraphs {
			paragraphs[i] = layout.ResyncHyphenatedWords(paragraphs[i])
		}
	}

	return model.PageResult{
		PageNum:    page,
		Words:      words,
		Paragraphs: paragraphs,
	}, nil
}

func (c *config) cached(path string, page int) (model.PageResult, bool) {
	if c.cache == nil {
		return model.PageResult{}, false
	}
	return c.cache.Result(path, page)
}

func (c *config) store(path string, result model.PageResult) {
	if c.cache != nil {
		c.cache.SetResult(path, result)
	}
}
