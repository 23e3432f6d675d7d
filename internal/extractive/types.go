package extractive

import "errors"

// ErrEmptyInput is returned when the text has no non-whitespace content.
var ErrEmptyInput = errors.New("no content to summarize")

// Sentence is a segment of the input bounded by terminator punctuation.
// Index is its position in the splitter output and serves as its identity.
type Sentence struct {
	Index int
	Text  string
}

// FrequencyTable maps a lower-cased token to its count across the whole document.
type FrequencyTable map[string]int

// ScoredSentence pairs a sentence with its salience score.
type ScoredSentence struct {
	Sentence
	Score int
}

// SummaryResult is the output of a single summarization.
type SummaryResult struct {
	ShortSummary         string   `json:"short_summary"`
	RelevanceToOfficials []string `json:"relevance_to_officials"`
	ActionItems          []string `json:"action_items"`
	ConfidenceEstimate   string   `json:"confidence_estimate"`
}
