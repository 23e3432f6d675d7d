package extractive

import (
	"cmp"
	"slices"
)

// SelectTop returns the n highest scoring sentences in rank order.
// Equal scores keep their document order. n <= 0 selects nothing.
func SelectTop(scored []ScoredSentence, n int) []Sentence {
	if n <= 0 {
		return []Sentence{}
	}

	ranked := slices.Clone(scored)
	slices.SortStableFunc(ranked, func(a, b ScoredSentence) int {
		return cmp.Compare(b.Score, a.Score)
	})

	n = min(n, len(ranked))
	selected := make([]Sentence, 0, n)
	for _, s := range ranked[:n] {
		selected = append(selected, s.Sentence)
	}
	return selected
}
