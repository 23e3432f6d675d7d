package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/doc-triage/internal/extractive"
	"github.com/nguyentantai21042004/doc-triage/internal/extractor"
	"github.com/nguyentantai21042004/doc-triage/internal/summarizer"
)

// Process orchestrates the inbox pipeline for one document
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting document processing: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Claim the file so a second event cannot pick it up
	workPath, err := p.moveToProcessing(ctx, path)
	if err != nil {
		return err
	}

	// Step 2: Extract, summarize and write reports
	res, err := p.Report(ctx, workPath)
	if isEmptyDocument(err) {
		p.logger.Warn(ctx, "No text to summarize in %s, archiving without report", filepath.Base(path))
		return p.moveToArchived(ctx, workPath)
	}
	if err != nil {
		p.logger.Error(ctx, "Leaving %s in %s", filepath.Base(workPath), p.cfg.Paths.Processing)
		return err
	}

	// Step 3: Archive the original
	if err := p.moveToArchived(ctx, workPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Summary method: %s", res.Summary.Method)
	p.logger.Info(ctx, "Reports: %s", strings.Join(res.Reports, ", "))
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) Summarize(ctx context.Context, path string) (Result, error) {
	doc, err := p.extractor.Extract(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("extract: %w", err)
	}
	p.logger.Debug(ctx, "Extracted %d characters from %s via %s", len(doc.Text), filepath.Base(path), doc.Method)

	sum, err := p.summarizer.Summarize(ctx, summarizer.Input{
		Text:   doc.Text,
		Source: filepath.Base(path),
	})
	if err != nil {
		return Result{Document: doc}, fmt.Errorf("summarize: %w", err)
	}

	return Result{Document: doc, Summary: sum}, nil
}

func (p *implProcessor) Report(ctx context.Context, path string) (Result, error) {
	res, err := p.Summarize(ctx, path)
	if err != nil {
		return res, err
	}

	paths, err := p.reports.Write(ctx, reportName(path), res.Summary)
	if err != nil {
		return res, fmt.Errorf("write reports: %w", err)
	}
	res.Reports = paths

	return res, nil
}

func isEmptyDocument(err error) bool {
	return errors.Is(err, extractor.ErrNoTextExtracted) || errors.Is(err, extractive.ErrEmptyInput)
}

func reportName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
