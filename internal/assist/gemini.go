package assist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"google.golang.org/genai"
)

// defaultGeminiModels is the ordered fallback list. Each name is tried in
// sequence until one answers; the order is part of the external contract
// and must be preserved.
var defaultGeminiModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-latest",
	"gemini-1.5-flash-001",
	"gemini-1.5-pro",
	"gemini-1.5-pro-latest",
	"gemini-1.5-pro-001",
	"gemini-1.0-pro",
	"gemini-pro",
}

// geminiRetryBase is the initial backoff for transient failures within a
// single model attempt.
const geminiRetryBase = 500 * time.Millisecond

// GeminiProvider generates text via the Gemini API, falling back across
// model names when one is unavailable for the configured key.
type GeminiProvider struct {
	client *genai.Client
	models []string
	log    *slog.Logger
}

// NewGeminiProvider constructs a GeminiProvider. An empty models slice uses
// the default fallback list.
func NewGeminiProvider(ctx context.Context, apiKey string, models []string, log *slog.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("assist.NewGeminiProvider: api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("assist.NewGeminiProvider: %w", err)
	}

	if len(models) == 0 {
		models = defaultGeminiModels
	}
	return &GeminiProvider{client: client, models: models, log: log}, nil
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return "gemini" }

// Generate tries each model name in order, with one backoff retry per model
// for transient errors, and returns the first non-empty text reply. When
// every model fails the joined errors are returned so the caller's log line
// names each failure.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	var errs []error

	for _, model := range p.models {
		text, err := p.generateWith(ctx, model, prompt)
		if err == nil {
			return text, nil
		}
		p.log.Debug("gemini model failed, trying next", "model", model, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", model, err))

		if ctx.Err() != nil {
			break
		}
	}

	return "", fmt.Errorf("assist.GeminiProvider.Generate: all models failed: %w", errors.Join(errs...))
}

func (p *GeminiProvider) generateWith(ctx context.Context, model, prompt string) (string, error) {
	backoff := retry.WithMaxRetries(1, retry.NewExponential(geminiRetryBase))

	var text string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			return retry.RetryableError(err)
		}
		text = resp.Text()
		if text == "" {
			return retry.RetryableError(fmt.Errorf("empty reply"))
		}
		return nil
	})
	return text, err
}
