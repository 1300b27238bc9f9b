package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/voxpdf/model"
)

// softHyphen matches a word fragment, a hyphen, whitespace and a lowercase
// continuation. Uppercase continuations and hyphens without trailing
// whitespace are left alone.
var softHyphen = regexp.MustCompile(`([\p{L}\p{N}_]+)-\s+(\p{Ll}[\p{L}\p{N}_]*)`)

// ReassembleHyphenation returns copies of the paragraphs with end-of-line
// hyphenation undone: "exam- ple" becomes "example" while "self-contained"
// and "end- The" are kept.
//
// Only Text is rewritten. Words still hold the split fragments, so
// word-level consumers will disagree with Text after a merge; use
// ResyncHyphenatedWords to bring them back in line.
func ReassembleHyphenation(paragraphs []model.Paragraph) []model.Paragraph {
	if paragraphs == nil {
		return nil
	}

	out := make([]model.Paragraph, len(paragraphs))
	for i, p := range paragraphs {
		p.Text = ReassembleText(p.Text)
		out[i] = p
	}
	return out
}

// ReassembleText undoes end-of-line hyphenation in a single string
func ReassembleText(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	return softHyphen.ReplaceAllString(s, "${1}${2}")
}

// ResyncHyphenatedWords merges each word ending in a hyphen with the word
// that follows it when that word starts with a lowercase letter, so the
// word list reads the same as the reassembled text. The merged word takes
// the union of both bounds, the mean of both font sizes and the page of
// the first fragment.
func ResyncHyphenatedWords(p model.Paragraph) model.Paragraph {
	if len(p.Words) < 2 {
		return p
	}

	words := make([]model.Word, 0, len(p.Words))
	for i := 0; i < len(p.Words); i++ {
		w := p.Words[i]
		if i+1 < len(p.Words) && isSoftHyphenPair(w.Text, p.Words[i+1].Text) {
			next := p.Words[i+1]
			w = model.Word{
				Text:       strings.TrimSuffix(w.Text, "-") + next.Text,
				Bounds:     w.Bounds.Union(next.Bounds),
				PageNumber: w.PageNumber,
				FontSize:   (w.FontSize + next.FontSize) / 2,
			}
			i++
		}
		words = append(words, w)
	}

	p.Words = words
	return p
}

func isSoftHyphenPair(head, tail string) bool {
	if len(head) < 2 || !strings.HasSuffix(head, "-") {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(strings.TrimSuffix(head, "-"))
	if !isWordRune(last) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(tail)
	return unicode.IsLower(first)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
