package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/doc-triage/internal/logger"
	"google.golang.org/genai"
)

const summaryPrompt = `Summarize the following document text in a natural, unstructured way. Provide key insights, deadlines, action items, and any relevant details for officials.

Text:
---
%s
---`

// ErrEmptyResponse is returned when Gemini answers without any text.
var ErrEmptyResponse = errors.New("empty response from Gemini")

// generateFunc sends prompt to model using key.
type generateFunc func(ctx context.Context, key, model, prompt string) (string, error)

// Gemini summarizes through the Gemini API, rotating keys on rate limits.
type Gemini struct {
	apiKeys  []string
	model    string
	timeout  time.Duration
	logger   logger.Logger
	generate generateFunc

	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Gemini summarizer. apiKeys must not be empty.
func NewGemini(apiKeys []string, model string, timeout time.Duration, log logger.Logger) *Gemini {
	return &Gemini{
		apiKeys:  apiKeys,
		model:    model,
		timeout:  timeout,
		logger:   log,
		generate: generateContent,
	}
}

func (g *Gemini) Summarize(ctx context.Context, in Input) (Summary, error) {
	if strings.TrimSpace(in.Text) == "" {
		return Summary{}, fmt.Errorf("summarize %s: %w", in.Source, ErrNoText)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	text, err := g.callGemini(ctx, in.Text)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize %s: %w", in.Source, err)
	}

	return Summary{
		ShortSummary:         strings.TrimSpace(text),
		RelevanceToOfficials: []string{},
		ActionItems:          []string{},
		ConfidenceEstimate:   "",
		RawText:              in.Text,
		Method:               MethodAI,
	}, nil
}

// callGemini sends the document text to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (g *Gemini) callGemini(ctx context.Context, text string) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", errors.New("no Gemini API keys configured")
	}

	prompt := fmt.Sprintf(summaryPrompt, text)

	var lastErr error
	for range len(g.apiKeys) {
		idx, key := g.key()

		result, err := g.generate(ctx, key, g.model, prompt)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", err
		}

		if strings.TrimSpace(result) == "" {
			return "", ErrEmptyResponse
		}
		return result, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *Gemini) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateKey advances past from unless another caller already did.
func (g *Gemini) rotateKey(from int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == from {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func generateContent(ctx context.Context, key, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
