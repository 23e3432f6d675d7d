package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF reads the text layer page by page. When that fails or yields
// nothing and the fallback is enabled, it shells out to pdftotext.
func (e *implExtractor) extractPDF(ctx context.Context, doc *Document) error {
	text, pages, err := readPDF(doc.Path)
	doc.Pages = pages
	doc.Method = MethodPDF
	if err == nil && strings.TrimSpace(text) != "" {
		doc.Text = text
		return nil
	}

	if !e.opts.PDFToTextFallback || e.executor == nil {
		if err != nil {
			return fmt.Errorf("read pdf: %w", err)
		}
		return nil
	}

	if err != nil {
		e.logger.Warn(ctx, "PDF reader failed for %s, trying %s: %v", doc.Path, e.opts.PDFToTextBinary, err)
	} else {
		e.logger.Debug(ctx, "PDF reader found no text in %s, trying %s", doc.Path, e.opts.PDFToTextBinary)
	}

	if e.opts.PDFToTextTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.PDFToTextTimeout)
		defer cancel()
	}

	out, execErr := e.executor.Execute(ctx, e.opts.PDFToTextBinary,
		"-layout",
		"-nopgbrk",
		"-enc", "UTF-8",
		doc.Path,
		"-",
	)
	if execErr != nil {
		return fmt.Errorf("pdftotext: %w", execErr)
	}

	doc.Method = MethodPDFToText
	doc.Text = out
	return nil
}

func readPDF(path string) (text string, pages int, err error) {
	// The reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	var sb strings.Builder
	pages = r.NumPage()
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue // Skip pages that fail to extract
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), pages, nil
}
