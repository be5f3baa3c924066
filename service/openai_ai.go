package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/tieubaoca/motivate-be/types"
)

var _ AIService = (*OpenAIService)(nil)

type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL string, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // OpenAI-compatible servers work too
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client: client,
		model:  model,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, prompt string, maxTokens int) (*types.Completion, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:     s.model,
			MaxTokens: maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	segments := make([]types.Segment, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		segments = append(segments, types.Segment{
			Type: types.SegmentTypeText,
			Text: choice.Message.Content,
		})
	}

	return &types.Completion{
		Model:    resp.Model,
		Segments: segments,
		Usage: types.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

func mapOpenAIError(err error) error {
	if pe := contextError("openai", err); pe != nil {
		return pe
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return NewProviderError(codeForStatus(apiErr.HTTPStatusCode), fmt.Sprintf("openai: status %d", apiErr.HTTPStatusCode), err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return NewProviderError(codeForStatus(reqErr.HTTPStatusCode), fmt.Sprintf("openai: status %d", reqErr.HTTPStatusCode), err)
	}

	return NewProviderError(ErrCodeServerError, "openai: server unreachable", err)
}
