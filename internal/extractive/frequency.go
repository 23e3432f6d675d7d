package extractive

import (
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tokenizer segments text on Unicode word boundaries and folds case.
// A cases.Caser keeps internal state, so a tokenizer must not be shared
// between goroutines; every summarization builds its own.
type tokenizer struct {
	caser cases.Caser
}

func newTokenizer() *tokenizer {
	return &tokenizer{caser: cases.Lower(language.Und)}
}

func (t *tokenizer) tokens(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var segment string
		segment, s, state = uniseg.FirstWordInString(s, state)
		if isWord(segment) {
			out = append(out, t.caser.String(segment))
		}
	}
	return out
}

func (t *tokenizer) count(sentences []Sentence) FrequencyTable {
	table := make(FrequencyTable)
	for _, sentence := range sentences {
		for _, token := range t.tokens(sentence.Text) {
			table[token]++
		}
	}
	return table
}

// isWord reports whether a boundary segment is a word rather than
// whitespace or punctuation.
func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// Tokenize returns the lower-cased words of s in order of appearance.
func Tokenize(s string) []string {
	return newTokenizer().tokens(s)
}

// CountFrequencies counts every token across all sentences.
func CountFrequencies(sentences []Sentence) FrequencyTable {
	return newTokenizer().count(sentences)
}
