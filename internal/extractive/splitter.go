package extractive

import (
	"regexp"
	"strings"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// SplitSentences partitions text into sentences on runs of '.', '!' and '?'.
// Terminators are dropped and so are segments that are blank after trimming.
func SplitSentences(text string) ([]Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	parts := sentenceEnd.Split(text, -1)
	sentences := make([]Sentence, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sentences = append(sentences, Sentence{Index: len(sentences), Text: part})
	}

	return sentences, nil
}
