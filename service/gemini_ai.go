package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/tieubaoca/motivate-be/types"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
)

var _ AIService = (*GeminiService)(nil)

type GeminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (s *GeminiService) Complete(ctx context.Context, prompt string, maxTokens int) (*types.Completion, error) {
	// A model handle per call keeps the output cap out of shared state.
	model := s.client.GenerativeModel(s.modelName)
	model.SetMaxOutputTokens(int32(maxTokens))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, mapGeminiError(err)
	}

	completion := &types.Completion{Model: s.modelName}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		completion.Segments = append(completion.Segments, geminiSegments(cand.Content.Parts)...)
	}
	if resp.UsageMetadata != nil {
		completion.Usage = types.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	return completion, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

func geminiSegments(parts []genai.Part) []types.Segment {
	segments := make([]types.Segment, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case genai.Text:
			segments = append(segments, types.Segment{Type: types.SegmentTypeText, Text: string(p)})
		default:
			segments = append(segments, types.Segment{Type: fmt.Sprintf("%T", p)})
		}
	}
	return segments
}

func mapGeminiError(err error) error {
	if pe := contextError("gemini", err); pe != nil {
		return pe
	}

	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return NewProviderError(ErrCodeInvalidRequest, "gemini: request blocked", err)
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		// An invalid key comes back as 400 with reason API_KEY_INVALID.
		if apiErr.Reason() == "API_KEY_INVALID" || apiErr.HTTPCode() == 403 {
			return NewProviderError(ErrCodeAuthentication, "gemini: invalid api key", err)
		}
		if code := apiErr.HTTPCode(); code > 0 {
			return NewProviderError(codeForStatus(code), fmt.Sprintf("gemini: status %d", code), err)
		}
		if st := apiErr.GRPCStatus(); st != nil {
			return NewProviderError(codeForGRPC(st.Code()), "gemini: "+st.Code().String(), err)
		}
		return NewProviderError(ErrCodeServerError, "gemini: api error", err)
	}

	return NewProviderError(ErrCodeServerError, "gemini: server unreachable", err)
}

func codeForGRPC(code codes.Code) string {
	switch code {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrCodeAuthentication
	case codes.ResourceExhausted:
		return ErrCodeRateLimit
	case codes.NotFound:
		return ErrCodeModelNotFound
	case codes.DeadlineExceeded:
		return ErrCodeTimeout
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return ErrCodeInvalidRequest
	default:
		return ErrCodeServerError
	}
}
