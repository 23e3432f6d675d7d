package summarizer

import "github.com/nguyentantai21042004/doc-triage/internal/extractive"

// ErrNoText is returned when a document has nothing to summarize.
var ErrNoText = extractive.ErrEmptyInput

const (
	MethodLocal = "local"
	MethodAI    = "ai"
)

// Input is the text of one document.
type Input struct {
	// Text is the plain text already extracted from the document.
	Text string
	// Source names the document in logs and errors.
	Source string
}

// Summary is what the triage tool shows for one document.
type Summary struct {
	ShortSummary         string   `json:"short_summary"`
	RelevanceToOfficials []string `json:"relevance_to_officials"`
	ActionItems          []string `json:"action_items"`
	ConfidenceEstimate   string   `json:"confidence_estimate"`
	RawText              string   `json:"raw_text,omitempty"`
	Method               string   `json:"method"`
}
