package watcher

import "context"

// Watcher defines the interface for inbox monitoring
type Watcher interface {
	// ScanExisting hands every supported file already in the inbox to the handler.
	ScanExisting(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error
