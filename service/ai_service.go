package service

import (
	"context"
	"fmt"

	"github.com/tieubaoca/motivate-be/config"
	"github.com/tieubaoca/motivate-be/types"
)

// AIService sends a single-message conversation to an AI provider.
type AIService interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (*types.Completion, error)
}

// NewAIService builds the adapter for cfg.Provider. It returns
// ErrMissingCredential when the provider's API key is empty.
func NewAIService(ctx context.Context, cfg *config.Config) (AIService, error) {
	if cfg.APIKey() == "" {
		return nil, ErrMissingCredential
	}
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return NewAnthropicService(cfg.Anthropic.BaseURL, cfg.Anthropic.APIKey, cfg.Anthropic.Model), nil
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model), nil
	case config.ProviderGemini:
		return NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
