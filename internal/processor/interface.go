package processor

import (
	"context"

	"github.com/nguyentantai21042004/doc-triage/internal/extractor"
	"github.com/nguyentantai21042004/doc-triage/internal/summarizer"
)

// Processor runs documents through extraction, summarization and reporting.
type Processor interface {
	// Process handles a file dropped in the inbox: it is moved to the
	// processing folder, summarized, reported and finally archived.
	Process(ctx context.Context, path string) error
	// Summarize extracts and summarizes path without touching the filesystem.
	Summarize(ctx context.Context, path string) (Result, error)
	// Report summarizes path in place and writes its reports.
	Report(ctx context.Context, path string) (Result, error)
}

// Result is the outcome for one document.
type Result struct {
	Document extractor.Document
	Summary  summarizer.Summary
	Reports  []string
}
