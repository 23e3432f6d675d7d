package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/doc-triage/internal/config"
	"github.com/nguyentantai21042004/doc-triage/internal/extractive"
	"github.com/nguyentantai21042004/doc-triage/internal/logger"
)

// New builds the summarizer selected by cfg.Summary.Mode. In ai mode the
// local engine stays behind Gemini as the offline fallback; without API keys
// only the local engine is used.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) Summarizer {
	local := NewLocal(NewEngine(cfg.Metadata), cfg.Summary.Sentences)

	if cfg.Summary.Mode != config.ModeAI {
		log.Info(ctx, "Using local extractive summarizer (%d sentences)", cfg.Summary.Sentences)
		return local
	}

	if len(cfg.Gemini.APIKeys) == 0 {
		log.Warn(ctx, "GEMINI_API_KEY is missing so the local summarizer will be used")
		return local
	}

	log.Info(ctx, "Using Gemini summarizer (%s, %d keys) with local fallback", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
	remote := NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, cfg.Gemini.Timeout, log)
	return NewFallback(remote, local, log)
}

// NewEngine creates the extractive engine, replacing the placeholder
// metadata when the config provides its own.
func NewEngine(meta config.MetadataConfig) *extractive.Engine {
	if !meta.HasMetadata() {
		return extractive.New()
	}
	return extractive.New(extractive.WithMetadata(extractive.StaticMetadata{
		Metadata: extractive.Metadata{
			RelevanceToOfficials: meta.RelevanceToOfficials,
			ActionItems:          meta.ActionItems,
			ConfidenceEstimate:   meta.ConfidenceEstimate,
		},
	}))
}
