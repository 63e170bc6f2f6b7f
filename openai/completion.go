package openai

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/rs/zerolog/log"
)

// Model is the chat model used for every reply.
const Model = openai.ChatModelGPT4oMini

const (
	FallbackUnavailable   = "Sorry, our AI assistant is temporarily unavailable. Please wait until we get back to you..."
	FallbackRequestFailed = "There was an error processing your request. Please try again later."
)

var errEmptyCompletion = errors.New("completion contained no content")

// GetCompletion returns the model's reply to userMessage. It never fails: when the
// client is unavailable or the call errors, a fixed fallback reply is returned instead.
func (c *Client) GetCompletion(ctx context.Context, userMessage string) string {
	if !c.Available() {
		log.Error().Msg("OpenAI client not initialized, cannot fetch completion")
		return FallbackUnavailable
	}

	reply, err := c.createCompletion(ctx, userMessage)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching completion from OpenAI")
		return FallbackRequestFailed
	}

	return reply
}

func (c *Client) createCompletion(ctx context.Context, userMessage string) (string, error) {
	chatCompletion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(userMessage),
		},
		Model: Model,
	})
	if err != nil {
		return "", err
	}

	if len(chatCompletion.Choices) == 0 {
		return "", errEmptyCompletion
	}

	content := chatCompletion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", errEmptyCompletion
	}

	return content, nil
}
