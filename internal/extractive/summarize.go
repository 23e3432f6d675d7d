package extractive

// Summarize runs split, count, score, select and assemble over text.
// It fails only with ErrEmptyInput.
func (e *Engine) Summarize(text string, numSentences int) (SummaryResult, error) {
	sentences, err := SplitSentences(text)
	if err != nil {
		return SummaryResult{}, err
	}

	tok := newTokenizer()
	table := tok.count(sentences)
	scored := tok.score(sentences, table)
	selected := SelectTop(scored, numSentences)

	return Assemble(selected, e.metadata.Extract(text, selected)), nil
}

// Summarize summarizes text with a default Engine.
func Summarize(text string, numSentences int) (SummaryResult, error) {
	return New().Summarize(text, numSentences)
}
