package extractor

import (
	"errors"
	"time"
)

var (
	// ErrUnsupported is returned for files that are neither PDF nor text.
	ErrUnsupported = errors.New("unsupported document type")
	// ErrNoTextExtracted is returned when a document yields no text.
	ErrNoTextExtracted = errors.New("no text extracted from document")
)

const (
	MethodText      = "text"
	MethodPDF       = "pdf"
	MethodPDFToText = "pdftotext"
)

// Document is the plain text of one source file.
type Document struct {
	Path     string
	MIMEType string
	Method   string
	Pages    int
	Text     string
}

// Options configures the extractor.
type Options struct {
	PDFToTextBinary   string
	PDFToTextFallback bool
	// PDFToTextTimeout bounds one pdftotext run; zero means no limit.
	PDFToTextTimeout time.Duration
}
