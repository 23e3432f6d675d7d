package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/doc-triage/internal/extractive"
)

// Local summarizes with the offline extractive engine.
type Local struct {
	engine       extractive.Summarizer
	numSentences int
}

// NewLocal wraps engine, selecting up to numSentences sentences per document.
func NewLocal(engine extractive.Summarizer, numSentences int) *Local {
	if engine == nil {
		engine = extractive.New()
	}
	return &Local{engine: engine, numSentences: numSentences}
}

func (l *Local) Summarize(ctx context.Context, in Input) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	res, err := l.engine.Summarize(in.Text, l.numSentences)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize %s: %w", in.Source, err)
	}

	return Summary{
		ShortSummary:         res.ShortSummary,
		RelevanceToOfficials: res.RelevanceToOfficials,
		ActionItems:          res.ActionItems,
		ConfidenceEstimate:   res.ConfidenceEstimate,
		RawText:              in.Text,
		Method:               MethodLocal,
	}, nil
}
