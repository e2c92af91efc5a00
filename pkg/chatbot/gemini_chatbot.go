// Package chatbot wraps Gemini's OpenAI-compatible chat completions endpoint.
package chatbot

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	ChatMessageRoleSystem    = openai.ChatMessageRoleSystem
	ChatMessageRoleUser      = openai.ChatMessageRoleUser
	ChatMessageRoleAssistant = openai.ChatMessageRoleAssistant
	ChatMessageRoleTool      = openai.ChatMessageRoleTool
)

var ErrEmptyCompletion = errors.New("model returned no choices")

// Completer produces the next assistant message, which may request tool calls.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error)
}

type GeminiClient struct {
	api   *openai.Client
	model string
}

func NewGeminiClient(apiKey, baseURL, model string) *GeminiClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &GeminiClient{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

func (c *GeminiClient) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if len(tools) > 0 {
		req.Tools = tools
		req.ToolChoice = "auto"
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return openai.ChatCompletionMessage{}, fmt.Errorf("gemini completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, ErrEmptyCompletion
	}
	return resp.Choices[0].Message, nil
}
