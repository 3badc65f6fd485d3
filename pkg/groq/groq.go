package groq

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"PoderBackend/pkg/kb"
)

// Groq exposes an OpenAI-compatible API, so the standard chat client works
// against it with a swapped base URL.
const defaultBaseURL = "https://api.groq.com/openai/v1"
const defaultModel = "llama-3.3-70b-versatile"

type IGroq interface {
	GenerateAnswer(ctx context.Context, question string, language kb.Language) (string, error)
	HealthCheck(ctx context.Context) error
}

type groqClient struct {
	client *openai.Client
	model  string
}

func New() (IGroq, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, errors.New("groq API key is required")
	}

	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = defaultBaseURL
	if baseURL := os.Getenv("GROQ_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &groqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// GenerateAnswer produces a short rights-education answer for a free-form
// question, steered by the per-language system prompt. Responses are kept
// concise (150 tokens) and low-temperature for consistency.
func (g *groqClient) GenerateAnswer(ctx context.Context, question string, language kb.Language) (string, error) {
	systemPrompt, ok := systemPrompts[language]
	if !ok {
		return "", kb.ErrUnsupportedLanguage
	}

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: question},
			},
			MaxTokens:   150,
			Temperature: 0.3,
			TopP:        0.9,
		},
	)
	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("no response generated from groq")
	}

	return resp.Choices[0].Message.Content, nil
}

// HealthCheck issues a minimal completion to verify key and connectivity.
func (g *groqClient) HealthCheck(ctx context.Context) error {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: "Hello"},
			},
			MaxTokens: 10,
		},
	)
	if err != nil {
		return fmt.Errorf("groq API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return errors.New("groq API response empty")
	}
	return nil
}
