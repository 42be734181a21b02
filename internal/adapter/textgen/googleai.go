package textgen

import (
	"context"
	"fmt"

	"studykit/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// GoogleAIGenerator is the plain prompt-in/text-out client behind the
// generation proxy endpoint. It intentionally shares nothing with the
// orchestrator's client: no system instruction, no response schema, no file
// support, and its own model identifier.
type GoogleAIGenerator struct {
	llm *googleai.GoogleAI
}

// NewGoogleAIGenerator creates a langchaingo-backed text generator.
func NewGoogleAIGenerator(ctx context.Context, apiKey, model string) (*GoogleAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google AI API key cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("google AI model name cannot be empty")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create googleai LLM client: %w", err)
	}
	return &GoogleAIGenerator{llm: llm}, nil
}

// GenerateFromPrompt forwards the literal prompt and returns the model's raw
// text output.
func (g *GoogleAIGenerator) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
}

var _ domain.TextGenerator = (*GoogleAIGenerator)(nil)
