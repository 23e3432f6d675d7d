package processor

import (
	"github.com/nguyentantai21042004/doc-triage/internal/config"
	"github.com/nguyentantai21042004/doc-triage/internal/extractor"
	"github.com/nguyentantai21042004/doc-triage/internal/logger"
	"github.com/nguyentantai21042004/doc-triage/internal/report"
	"github.com/nguyentantai21042004/doc-triage/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	extractor  extractor.Extractor
	summarizer summarizer.Summarizer
	reports    report.Writer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, ext extractor.Extractor, sum summarizer.Summarizer, reports report.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		extractor:  ext,
		summarizer: sum,
		reports:    reports,
		logger:     log,
	}
}
