package extractive

// Summarizer turns plain text into an extractive summary of at most
// numSentences sentences.
type Summarizer interface {
	Summarize(text string, numSentences int) (SummaryResult, error)
}
