package extractive

func (t *tokenizer) score(sentences []Sentence, table FrequencyTable) []ScoredSentence {
	scored := make([]ScoredSentence, 0, len(sentences))
	for _, sentence := range sentences {
		score := 0
		for _, token := range t.tokens(sentence.Text) {
			score += table[token]
		}
		scored = append(scored, ScoredSentence{Sentence: sentence, Score: score})
	}
	return scored
}

// ScoreSentences sums the document-wide frequency of every token in each
// sentence. Repeated tokens count every time and scores are not normalized
// by length. The result keeps the input order.
func ScoreSentences(sentences []Sentence, table FrequencyTable) []ScoredSentence {
	return newTokenizer().score(sentences, table)
}
