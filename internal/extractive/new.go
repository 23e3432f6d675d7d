package extractive

// Engine runs the extractive pipeline. It holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	metadata MetadataExtractor
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetadata replaces the placeholder metadata extractor.
func WithMetadata(m MetadataExtractor) Option {
	return func(e *Engine) {
		if m != nil {
			e.metadata = m
		}
	}
}

// New creates an Engine using PlaceholderMetadata unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{metadata: PlaceholderMetadata{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
