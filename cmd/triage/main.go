package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/doc-triage/internal/config"
	"github.com/nguyentantai21042004/doc-triage/internal/extractive"
	"github.com/nguyentantai21042004/doc-triage/internal/extractor"
	"github.com/nguyentantai21042004/doc-triage/internal/logger"
	"github.com/nguyentantai21042004/doc-triage/internal/processor"
	"github.com/nguyentantai21042004/doc-triage/internal/report"
	"github.com/nguyentantai21042004/doc-triage/internal/summarizer"
	"github.com/nguyentantai21042004/doc-triage/internal/watcher"
	"github.com/nguyentantai21042004/doc-triage/pkg/executor"
	"golang.org/x/sync/errgroup"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("triage", "Summarize tender notices and official documents dropped into an inbox folder.")
	configPath = app.Flag("config", "Path to the yaml config file.").Default("config.yaml").String()

	watchCmd = app.Command("watch", "Watch the input folder and summarize new documents.").Default()

	summarizeCmd       = app.Command("summarize", "Summarize one document and print the result as JSON.")
	summarizeFile      = summarizeCmd.Arg("file", "PDF or text document.").Required().ExistingFile()
	summarizeSentences = summarizeCmd.Flag("sentences", "Sentences to keep (defaults to the config value).").Default("-1").Int()
	summarizeMode      = summarizeCmd.Flag("mode", "Summarizer to use (defaults to the config value).").Enum(config.ModeLocal, config.ModeAI)
	summarizeNoRaw     = summarizeCmd.Flag("no-raw", "Leave the extracted text out of the output.").Bool()

	textCmd       = app.Command("summarize-text", "Summarize plain text read from stdin.")
	textSentences = textCmd.Flag("sentences", "Sentences to keep.").Default("5").Int()

	batchCmd = app.Command("batch", "Summarize every document in a folder and write reports.")
	batchDir = batchCmd.Arg("dir", "Folder with documents.").Required().ExistingDir()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	var err error
	switch command {
	case watchCmd.FullCommand():
		err = runWatch()
	case summarizeCmd.FullCommand():
		err = runSummarize()
	case textCmd.FullCommand():
		err = runSummarizeText(os.Stdin, os.Stdout, *textSentences)
	case batchCmd.FullCommand():
		err = runBatch()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process status: 2 when the document
// had nothing to summarize, 1 for any other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, extractive.ErrEmptyInput), errors.Is(err, extractor.ErrNoTextExtracted):
		return 2
	default:
		return 1
	}
}

type pipeline struct {
	cfg  *config.Config
	log  logger.Logger
	ext  extractor.Extractor
	proc processor.Processor
}

// setup loads the config and wires the pipeline. Logs go to logOut so the
// one-shot commands keep stdout for JSON.
func setup(ctx context.Context, logOut io.Writer, override func(*config.Config)) (*pipeline, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if override != nil {
		override(cfg)
	}

	log := logger.NewWithWriter(cfg.Logging.Level, logOut)

	ext := extractor.New(extractor.Options{
		PDFToTextBinary:   cfg.Extract.PDFToTextBinary,
		PDFToTextFallback: cfg.Extract.PDFToTextFallback,
		PDFToTextTimeout:  cfg.Extract.PDFToTextTimeout,
	}, executor.New(), log)
	sum := summarizer.New(ctx, cfg, log)
	reports := report.New(cfg.Paths.Output, cfg.Report.Formats, log)

	return &pipeline{
		cfg:  cfg,
		log:  log,
		ext:  ext,
		proc: processor.New(cfg, ext, sum, reports, log),
	}, nil
}

func runWatch() error {
	ctx := context.Background()

	p, err := setup(ctx, os.Stdout, nil)
	if err != nil {
		return err
	}
	cfg, log := p.cfg, p.log

	log.Info(ctx, "========================================")
	log.Info(ctx, "Document Triage")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, p.proc.Process, log, watcher.Options{
		MaxConcurrent: cfg.Performance.MaxConcurrent,
		SettleDelay:   cfg.Performance.SettleDelay,
		Filter:        p.ext.Supports,
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	// Cancel on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.ScanExisting(ctx); err != nil {
		log.Warn(ctx, "Failed to scan existing documents: %v", err)
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Document Triage is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Summarizer: %s, %d sentences", cfg.Summary.Mode, cfg.Summary.Sentences)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Start blocks until shutdown and waits for in-flight documents
	err = w.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher: %w", err)
	}

	log.Info(context.Background(), "Document Triage stopped")
	return nil
}

func runSummarize() error {
	ctx := context.Background()

	p, err := setup(ctx, os.Stderr, func(cfg *config.Config) {
		if *summarizeSentences >= 0 {
			cfg.Summary.Sentences = *summarizeSentences
		}
		if *summarizeMode != "" {
			cfg.Summary.Mode = *summarizeMode
		}
	})
	if err != nil {
		return err
	}

	return printSummary(ctx, p.proc, *summarizeFile, *summarizeNoRaw, os.Stdout)
}

func printSummary(ctx context.Context, proc processor.Processor, path string, noRaw bool, out io.Writer) error {
	res, err := proc.Summarize(ctx, path)
	if err != nil {
		return err
	}
	if noRaw {
		res.Summary.RawText = ""
	}

	return printJSON(out, res.Summary)
}

// runSummarizeText runs the extractive engine alone; it needs no config.
func runSummarizeText(in io.Reader, out io.Writer, numSentences int) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	res, err := extractive.Summarize(string(data), numSentences)
	if err != nil {
		return err
	}

	return printJSON(out, res)
}

func runBatch() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, err := setup(ctx, os.Stdout, nil)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(*batchDir)
	if err != nil {
		return fmt.Errorf("read %s: %w", *batchDir, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Performance.MaxConcurrent)

	var files []string
	for _, entry := range entries {
		path := filepath.Join(*batchDir, entry.Name())
		if entry.IsDir() || !p.ext.Supports(path) {
			continue
		}
		files = append(files, path)
	}
	p.log.Info(ctx, "Summarizing %d documents from %s", len(files), *batchDir)

	failed := make([]error, len(files))
	for i, path := range files {
		g.Go(func() error {
			_, err := p.proc.Report(gctx, path)
			switch {
			case err == nil:
			case exitCode(err) == 2:
				p.log.Warn(gctx, "No text to summarize in %s", path)
			default:
				p.log.Error(gctx, "Failed to summarize %s: %v", path, err)
				failed[i] = fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := errors.Join(failed...); err != nil {
		return fmt.Errorf("batch finished with failures:\n%w", err)
	}
	p.log.Info(ctx, "Batch completed: %d documents", len(files))
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processing,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
