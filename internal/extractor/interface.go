package extractor

import "context"

// Extractor turns a document on disk into plain text.
type Extractor interface {
	Extract(ctx context.Context, path string) (Document, error)
	Supports(path string) bool
}
