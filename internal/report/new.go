package report

import (
	"sync"

	"github.com/nguyentantai21042004/doc-triage/internal/logger"
)

const (
	FormatMarkdown = "md"
	FormatDocx     = "docx"
	FormatJSON     = "json"
)

type implWriter struct {
	outputDir string
	formats   []string
	logger    logger.Logger

	mu       sync.Mutex
	reserved map[string]bool
}

// New creates a Writer that places reports in outputDir.
// An empty formats list writes markdown and JSON.
func New(outputDir string, formats []string, log logger.Logger) Writer {
	if len(formats) == 0 {
		formats = []string{FormatMarkdown, FormatJSON}
	}
	return &implWriter{
		outputDir: outputDir,
		formats:   formats,
		logger:    log,
		reserved:  make(map[string]bool),
	}
}
