package extractor

import (
	"github.com/nguyentantai21042004/doc-triage/internal/logger"
	"github.com/nguyentantai21042004/doc-triage/pkg/executor"
)

type implExtractor struct {
	opts     Options
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Extractor. exec is only used for the pdftotext fallback.
func New(opts Options, exec executor.Executor, log logger.Logger) Extractor {
	if opts.PDFToTextBinary == "" {
		opts.PDFToTextBinary = "pdftotext"
	}
	return &implExtractor{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}
