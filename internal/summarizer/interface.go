package summarizer

import "context"

// Summarizer produces a triage summary for extracted document text.
type Summarizer interface {
	Summarize(ctx context.Context, in Input) (Summary, error)
}
