package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/doc-triage/internal/logger"
	"golang.org/x/sync/semaphore"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	settleDelay   time.Duration
	filter        func(path string) bool
	sem           *semaphore.Weighted
	wg            sync.WaitGroup
}

func (w *implWatcher) ScanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}

	count := 0
	for _, entry := range entries {
		path := filepath.Join(w.inputDir, entry.Name())
		if entry.IsDir() || !w.filter(path) {
			continue
		}
		count++
		w.dispatch(ctx, path, 0)
	}

	if count > 0 {
		w.logger.Info(ctx, "Queued %d existing documents from %s", count, w.inputDir)
	}
	return nil
}

// Start begins monitoring the input directory for new documents
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.filter(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New document detected: %s", event.Name)
			w.dispatch(ctx, event.Name, w.settleDelay)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// dispatch runs the handler in its own goroutine once a semaphore slot frees up.
func (w *implWatcher) dispatch(ctx context.Context, filePath string, delay time.Duration) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		if delay > 0 {
			// Give the writer time to finish the file
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
		}

		if err := w.sem.Acquire(ctx, 1); err != nil {
			return
		}
		defer w.sem.Release(1)

		if err := w.handler(ctx, filePath); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
		}
	}()
}

// Wait blocks until every dispatched handler has returned.
func (w *implWatcher) Wait() {
	w.wg.Wait()
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
