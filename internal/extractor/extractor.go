package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	pdfExtensions  = []string{".pdf"}
	textExtensions = []string{".txt", ".text", ".md", ".markdown"}

	excessNewlines = regexp.MustCompile(`\n{4,}`)
)

// supportedExtension reports whether path has an extension the extractor handles.
func supportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(pdfExtensions, ext) || slices.Contains(textExtensions, ext)
}

func (e *implExtractor) Supports(path string) bool {
	return supportedExtension(path)
}

// Extract resolves the document type by extension first, then by sniffed MIME type.
func (e *implExtractor) Extract(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	mimeType := detectMIME(path)
	doc := Document{Path: path, MIMEType: mimeType}

	var err error
	switch kind := resolveKind(path, mimeType); kind {
	case MethodPDF:
		err = e.extractPDF(ctx, &doc)
	case MethodText:
		err = e.extractText(&doc)
	default:
		return doc, fmt.Errorf("%s (%s): %w", filepath.Base(path), mimeType, ErrUnsupported)
	}
	if err != nil {
		return doc, err
	}

	doc.Text = normalizeText(doc.Text)
	if doc.Text == "" {
		return doc, fmt.Errorf("%s: %w", filepath.Base(path), ErrNoTextExtracted)
	}

	e.logger.Debug(ctx, "Extracted %d chars from %s via %s", len(doc.Text), path, doc.Method)
	return doc, nil
}

func (e *implExtractor) extractText(doc *Document) error {
	b, err := os.ReadFile(doc.Path)
	if err != nil {
		return fmt.Errorf("read text: %w", err)
	}
	doc.Method = MethodText
	doc.Text = strings.ToValidUTF8(string(b), "�")
	return nil
}

func resolveKind(path, mimeType string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case slices.Contains(pdfExtensions, ext):
		return MethodPDF
	case slices.Contains(textExtensions, ext):
		return MethodText
	case mimeType == "application/pdf":
		return MethodPDF
	case strings.HasPrefix(mimeType, "text/plain"), strings.HasPrefix(mimeType, "text/markdown"):
		return MethodText
	}
	return ""
}

func detectMIME(path string) string {
	m, err := mimetype.DetectFile(path)
	if err != nil || m == nil {
		return "application/octet-stream"
	}
	return strings.ToLower(strings.TrimSpace(m.String()))
}

func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = excessNewlines.ReplaceAllString(s, "\n\n\n")
	return strings.TrimSpace(s)
}
