package assist

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// defaultOpenAIModel matches the model the hosted assistant runs on when no
// override is configured.
const defaultOpenAIModel = "gpt-5-mini"

// OpenAIProvider generates text via the OpenAI chat completions API. No
// model-name fallback here: OpenAI model ids are stable for a given key.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider constructs an OpenAIProvider. An empty model uses the
// default.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("assist.NewOpenAIProvider: api key is required")
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Generate sends the prompt as a single user message and returns the first
// choice's content.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("assist.OpenAIProvider.Generate: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("assist.OpenAIProvider.Generate: empty reply")
	}
	return completion.Choices[0].Message.Content, nil
}
