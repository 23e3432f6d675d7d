package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// moveToProcessing moves the document from the inbox to the processing folder
func (p *implProcessor) moveToProcessing(ctx context.Context, path string) (string, error) {
	destPath, err := p.moveInto(ctx, path, p.cfg.Paths.Processing)
	if err != nil {
		return "", fmt.Errorf("move to processing: %w", err)
	}
	return destPath, nil
}

// moveToArchived moves a finished document to the archived folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if _, err := p.moveInto(ctx, path, p.cfg.Paths.Archived); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

func (p *implProcessor) moveInto(ctx context.Context, path, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	destPath, err := uniquePath(filepath.Join(dir, filepath.Base(path)))
	if err != nil {
		return "", err
	}

	p.logger.Info(ctx, "Moving %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return "", err
	}
	return destPath, nil
}

// uniquePath appends a timestamp when path is already taken, so a document
// dropped twice never overwrites its earlier copy.
func uniquePath(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	} else if err != nil {
		return "", err
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	stamp := time.Now().Format("20060102-150405")

	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s-%s%s", stem, stamp, ext)
		if i > 0 {
			candidate = fmt.Sprintf("%s-%s-%d%s", stem, stamp, i, ext)
		}
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil {
			return "", err
		}
	}
}
