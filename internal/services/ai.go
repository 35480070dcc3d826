package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ChatModel talks to any OpenAI-compatible chat completions endpoint.
type ChatModel struct {
	client *openai.Client
	model  string
}

func NewChatModel(apiKey, baseURL, model string) *ChatModel {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &ChatModel{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (m *ChatModel) Name() string {
	return m.model
}

func (m *ChatModel) Generate(ctx context.Context, instructions, input string) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    m.model,
		Messages: BuildMessages(instructions, input),
	})
	if err != nil {
		return "", fmt.Errorf("model API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model %s", m.model)
	}
	return resp.Choices[0].Message.Content, nil
}

func BuildMessages(instructions, input string) []openai.ChatCompletionMessage {
	var msgs []openai.ChatCompletionMessage
	if instructions != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: instructions,
		})
	}
	return append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input,
	})
}
