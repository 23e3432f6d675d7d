package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/doc-triage/internal/config"
	"github.com/nguyentantai21042004/doc-triage/internal/extractor"
	"github.com/nguyentantai21042004/doc-triage/internal/logger"
	"github.com/nguyentantai21042004/doc-triage/internal/report"
	"github.com/nguyentantai21042004/doc-triage/internal/summarizer"
)

type failingSummarizer struct{}

func (failingSummarizer) Summarize(ctx context.Context, in summarizer.Input) (summarizer.Summary, error) {
	return summarizer.Summary{}, errors.New("model unavailable")
}

func newTestProcessor(t *testing.T, sum summarizer.Summarizer) (Processor, *config.Config) {
	t.Helper()

	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:      filepath.Join(root, "input"),
			Processing: filepath.Join(root, "processing"),
			Output:     filepath.Join(root, "output"),
			Archived:   filepath.Join(root, "archived"),
		},
	}
	if err := os.MkdirAll(cfg.Paths.Input, 0o755); err != nil {
		t.Fatal(err)
	}

	log := logger.NewDiscard()
	if sum == nil {
		sum = summarizer.NewLocal(nil, 2)
	}
	p := New(cfg,
		extractor.New(extractor.Options{}, nil, log),
		sum,
		report.New(cfg.Paths.Output, []string{report.FormatMarkdown, report.FormatJSON}, log),
		log,
	)
	return p, cfg
}

func writeInput(t *testing.T, cfg *config.Config, name, content string) string {
	t.Helper()
	path := filepath.Join(cfg.Paths.Input, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestProcess(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)
	path := writeInput(t, cfg, "tender.txt", "Tender bids close Friday. Tender documents are online. Lunch is at noon.")

	if err := p.Process(context.Background(), path); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if exists(path) {
		t.Error("input file still in inbox")
	}
	if !exists(filepath.Join(cfg.Paths.Archived, "tender.txt")) {
		t.Error("input file not archived")
	}
	if exists(filepath.Join(cfg.Paths.Processing, "tender.txt")) {
		t.Error("input file left in processing")
	}

	md, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "tender.md"))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(md), "Tender bids close Friday") {
		t.Errorf("report missing top sentence:\n%s", md)
	}
	if !exists(filepath.Join(cfg.Paths.Output, "tender.json")) {
		t.Error("json report missing")
	}
}

func TestProcessEmptyDocument(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)
	path := writeInput(t, cfg, "blank.txt", "   \n\n  ")

	if err := p.Process(context.Background(), path); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !exists(filepath.Join(cfg.Paths.Archived, "blank.txt")) {
		t.Error("empty document not archived")
	}
	if exists(filepath.Join(cfg.Paths.Output, "blank.md")) {
		t.Error("empty document should not produce a report")
	}
}

func TestProcessSummarizerFailure(t *testing.T) {
	p, cfg := newTestProcessor(t, failingSummarizer{})
	path := writeInput(t, cfg, "notice.md", "Some notice text.")

	err := p.Process(context.Background(), path)
	if err == nil || !strings.Contains(err.Error(), "model unavailable") {
		t.Fatalf("Process() error = %v, want model unavailable", err)
	}

	if !exists(filepath.Join(cfg.Paths.Processing, "notice.md")) {
		t.Error("failed document should stay in processing")
	}
}

func TestProcessArchiveCollision(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)

	for range 2 {
		path := writeInput(t, cfg, "repeat.txt", "Repeated notice.")
		if err := p.Process(context.Background(), path); err != nil {
			t.Fatalf("Process() error = %v", err)
		}
	}

	entries, err := os.ReadDir(cfg.Paths.Archived)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("archived %d files, want 2", len(entries))
	}
}

func TestProcessSameStemKeepsBothReports(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)

	inputs := []struct{ name, text string }{
		{name: "tender.txt", text: "First notice."},
		{name: "tender.md", text: "Second notice."},
	}
	for _, in := range inputs {
		name := in.name
		path := writeInput(t, cfg, name, in.text)
		if err := p.Process(context.Background(), path); err != nil {
			t.Fatalf("Process(%s) error = %v", name, err)
		}
	}

	entries, err := os.ReadDir(cfg.Paths.Output)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Errorf("output has %d files, want 4 (md and json for each input)", len(entries))
	}

	first, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "tender.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(first), "First notice.") {
		t.Errorf("first report was overwritten: %s", first)
	}
}

func TestSummarize(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)
	path := writeInput(t, cfg, "a.txt", "Budget budget approved. Meeting moved.")

	res, err := p.Summarize(context.Background(), path)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if res.Summary.ShortSummary != "Budget budget approved. Meeting moved." {
		t.Errorf("ShortSummary = %q", res.Summary.ShortSummary)
	}
	if res.Document.Method != extractor.MethodText {
		t.Errorf("Method = %q, want %q", res.Document.Method, extractor.MethodText)
	}
	if !exists(path) {
		t.Error("Summarize must leave the file in place")
	}
	if exists(cfg.Paths.Output) {
		t.Error("Summarize must not write reports")
	}
}

func TestReport(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)
	path := writeInput(t, cfg, "memo.text", "Submit the form. Form form form.")

	res, err := p.Report(context.Background(), path)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if len(res.Reports) != 2 {
		t.Errorf("Reports = %v, want 2 paths", res.Reports)
	}
	if !exists(path) {
		t.Error("Report must leave the file in place")
	}
}

func TestReportName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/in/tender.pdf", want: "tender"},
		{path: "notes.v2.md", want: "notes.v2"},
		{path: "README", want: "README"},
	}

	for _, tt := range tests {
		if got := reportName(tt.path); got != tt.want {
			t.Errorf("reportName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
