package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/doc-triage/internal/summarizer"
)

// Write never overwrites earlier reports: when any report named name
// already exists, a timestamp suffix is added, as archiving does.
func (w *implWriter) Write(ctx context.Context, name string, sum summarizer.Summary) ([]string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	now := time.Now()
	name = w.reserve(name, now)
	defer w.release(name)

	title := "Document triage: " + name

	var written []string
	for _, format := range w.formats {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		path := w.path(name, format)

		var err error
		switch format {
		case FormatMarkdown:
			err = os.WriteFile(path, []byte(markdownHeader(title, now)+RenderMarkdown(sum)), 0o644)
		case FormatDocx:
			err = writeDocx(path, title, now, sum)
		case FormatJSON:
			err = writeJSON(path, sum)
		default:
			err = fmt.Errorf("unsupported format %q", format)
		}
		if err != nil {
			return written, fmt.Errorf("write %s report: %w", format, err)
		}

		w.logger.Debug(ctx, "Wrote %s", path)
		written = append(written, path)
	}

	return written, nil
}

func (w *implWriter) path(name, format string) string {
	return filepath.Join(w.outputDir, name+"."+format)
}

// reserve picks the first free name and holds it until release, so
// concurrent writes for the same document name cannot collide either.
func (w *implWriter) reserve(name string, at time.Time) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	stamp := at.Format("20060102-150405")
	for i := 0; ; i++ {
		candidate := name
		switch {
		case i == 1:
			candidate = fmt.Sprintf("%s-%s", name, stamp)
		case i > 1:
			candidate = fmt.Sprintf("%s-%s-%d", name, stamp, i-1)
		}
		if !w.reserved[candidate] && !w.exists(candidate) {
			w.reserved[candidate] = true
			return candidate
		}
	}
}

func (w *implWriter) release(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.reserved, name)
}

func (w *implWriter) exists(name string) bool {
	for _, format := range w.formats {
		if _, err := os.Lstat(w.path(name, format)); err == nil {
			return true
		}
	}
	return false
}

func markdownHeader(title string, at time.Time) string {
	return fmt.Sprintf("# %s\n\n_Generated %s_\n\n", title, at.Format(timeLayout))
}

// RenderMarkdown lays out the summary sections without a top-level title.
func RenderMarkdown(sum summarizer.Summary) string {
	var sb strings.Builder

	for _, sec := range sections(sum) {
		fmt.Fprintf(&sb, "## %s\n\n", sec.heading)
		if sec.text != "" {
			sb.WriteString(sec.text)
			sb.WriteString("\n")
		}
		for _, item := range sec.items {
			fmt.Fprintf(&sb, "- %s\n", item)
		}
		sb.WriteString("\n")
	}

	for i, f := range fields(sum) {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "**%s:** %s\n", f.label, f.value)
	}

	return sb.String()
}

func writeJSON(path string, sum summarizer.Summary) error {
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
