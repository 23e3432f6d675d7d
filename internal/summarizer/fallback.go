package summarizer

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/doc-triage/internal/logger"
)

type fallbackSummarizer struct {
	primary  Summarizer
	fallback Summarizer
	logger   logger.Logger
}

// NewFallback tries primary first and falls back on any error except empty
// input, which no summarizer can recover from.
func NewFallback(primary, fallback Summarizer, log logger.Logger) Summarizer {
	return &fallbackSummarizer{primary: primary, fallback: fallback, logger: log}
}

func (f *fallbackSummarizer) Summarize(ctx context.Context, in Input) (Summary, error) {
	if f.primary == nil {
		return f.fallback.Summarize(ctx, in)
	}

	sum, err := f.primary.Summarize(ctx, in)
	if err == nil {
		return sum, nil
	}
	if errors.Is(err, ErrNoText) || ctx.Err() != nil {
		return Summary{}, err
	}

	f.logger.Warn(ctx, "Remote summarizer failed for %s, using local: %v", in.Source, err)
	return f.fallback.Summarize(ctx, in)
}
