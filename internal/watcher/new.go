package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/doc-triage/internal/logger"
	"golang.org/x/sync/semaphore"
)

// Options tunes the watcher.
type Options struct {
	MaxConcurrent int
	// SettleDelay is waited after a CREATE event so the writer can finish.
	SettleDelay time.Duration
	// Filter selects the files handed to the handler; nil accepts every file.
	Filter func(path string) bool
}

// New creates a new Watcher instance with concurrency control
func New(inputDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to 2 concurrent if not specified
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = 0
	}
	if opts.Filter == nil {
		opts.Filter = func(string) bool { return true }
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: opts.MaxConcurrent,
		settleDelay:   opts.SettleDelay,
		filter:        opts.Filter,
		sem:           semaphore.NewWeighted(int64(opts.MaxConcurrent)),
	}, nil
}
