package advisory

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend implements CompletionService against the OpenAI chat API
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates a completion backend for the given API key and model
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	return &OpenAIBackend{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete issues a single chat completion request
func (b *OpenAIBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
