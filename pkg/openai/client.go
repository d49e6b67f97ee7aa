// Package openai adapts the OpenAI chat completion API to the Completer
// interface.
package openai

import (
	"context"
	"fmt"

	openailib "github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openailib.Client
	model  string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		client: openailib.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends a single-turn prompt and returns the model's text reply.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openailib.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []openailib.ChatCompletionMessage{
			{Role: openailib.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
