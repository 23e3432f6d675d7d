package report

import (
	"context"

	"github.com/nguyentantai21042004/doc-triage/internal/summarizer"
)

// Writer persists a summary in the configured report formats.
type Writer interface {
	// Write renders sum for the document called name and returns the paths written.
	Write(ctx context.Context, name string, sum summarizer.Summary) ([]string, error)
}
