package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tieubaoca/motivate-be/types"
)

var _ AIService = (*AnthropicService)(nil)

type AnthropicService struct {
	client anthropic.Client
	model  string
}

// NewAnthropicService creates a Messages API client. An empty baseURL uses the
// public endpoint. SDK-level retries are disabled: a failed call surfaces once.
func NewAnthropicService(baseURL, apiKey, model string) *AnthropicService {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicService{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

func (s *AnthropicService) Complete(ctx context.Context, prompt string, maxTokens int) (*types.Completion, error) {
	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	segments := make([]types.Segment, 0, len(msg.Content))
	for _, block := range msg.Content {
		seg := types.Segment{Type: block.Type}
		if block.Type == types.SegmentTypeText {
			seg.Text = block.Text
		}
		segments = append(segments, seg)
	}

	return &types.Completion{
		Model:    string(msg.Model),
		Segments: segments,
		Usage: types.Usage{
			PromptTokens:     int(msg.Usage.InputTokens),
			CompletionTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

func mapAnthropicError(err error) error {
	if pe := contextError("anthropic", err); pe != nil {
		return pe
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return NewProviderError(codeForStatus(apiErr.StatusCode), fmt.Sprintf("anthropic: status %d", apiErr.StatusCode), err)
	}

	// Anything else is a transport failure before a response arrived.
	return NewProviderError(ErrCodeServerError, "anthropic: server unreachable", err)
}
