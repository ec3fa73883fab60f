package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"centavo/internal/models"
)

// OpenAIGenerator produces advisory text via an OpenAI-compatible chat
// completion API.
type OpenAIGenerator struct {
	model  string
	client *openai.Client
}

// NewOpenAIGenerator creates a generator against the given endpoint. An empty
// baseURL uses the default OpenAI endpoint.
func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIGenerator{
		model:  model,
		client: openai.NewClientWithConfig(config),
	}
}

// Generate marshals the snapshot into the user message and returns the
// model's completion text.
func (g *OpenAIGenerator) Generate(ctx context.Context, data models.FinancialData) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	userMessage := fmt.Sprintf(
		"Contexto (JSON):\n%s\n\nTarea: Analiza estos datos financieros y proporciona recomendaciones específicas y accionables.",
		payload,
	)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: AdvisorPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
