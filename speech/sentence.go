package speech

import (
	"strings"
	"unicode"
)

// abbreviations end in a period without ending a sentence
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"sr.": true, "jr.": true, "st.": true, "vs.": true, "etc.": true,
	"e.g.": true, "i.e.": true, "cf.": true, "al.": true,
	"inc.": true, "ltd.": true, "co.": true, "corp.": true,
	"jan.": true, "feb.": true, "mar.": true, "apr.": true, "jun.": true,
	"jul.": true, "aug.": true, "sep.": true, "sept.": true, "oct.": true,
	"nov.": true, "dec.": true,
	"no.": true, "vol.": true, "pp.": true, "p.": true, "ch.": true,
	"fig.": true, "eq.": true, "ed.": true,
}

// Sentences splits text into trimmed sentences.
//
// A sentence ends at '.', '!', '?' or '…', optionally followed by closing
// quotes or brackets, when whitespace and then an uppercase letter, digit
// or opening quote follow, or at the end of the text. Periods after known
// abbreviations and single-letter initials do not end a sentence.
func Sentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}

		end := i + 1
		for end < len(runes) && isCloser(runes[end]) {
			end++
		}
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			continue
		}

		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next < len(runes) && !startsSentence(runes[next]) {
			continue
		}
		if runes[i] == '.' && next < len(runes) && isAbbreviation(runes[start:i]) {
			continue
		}

		if s := strings.TrimSpace(string(runes[start:end])); s != "" {
			sentences = append(sentences, s)
		}
		start = end
		i = end - 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '»':
		return true
	}
	return false
}

func startsSentence(r rune) bool {
	switch r {
	case '"', '\'', '(', '[', '“', '‘', '«':
		return true
	}
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}

// isAbbreviation reports whether the token ending just before a period
// is an abbreviation or an initial. before holds the text up to, but not
// including, the period.
func isAbbreviation(before []rune) bool {
	start := len(before)
	for start > 0 && (unicode.IsLetter(before[start-1]) || before[start-1] == '.') {
		start--
	}
	word := before[start:]
	if len(word) == 0 {
		return false
	}

	// Initials: "J. R. R. Tolkien"
	if len(word) == 1 && unicode.IsUpper(word[0]) {
		return true
	}

	return abbreviations[strings.ToLower(string(word))+"."]
}
