package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/motivate-be/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{401, ErrCodeAuthentication},
		{429, ErrCodeRateLimit},
		{404, ErrCodeModelNotFound},
		{400, ErrCodeInvalidRequest},
		{413, ErrCodeInvalidRequest},
		{500, ErrCodeServerError},
		{529, ErrCodeServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codeForStatus(tt.status), "status %d", tt.status)
	}
}

func TestProviderError_Wrapping(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("relay: %w", NewProviderError(ErrCodeServerError, "anthropic: server unreachable", cause))

	assert.True(t, IsProviderError(err))
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "relay: anthropic: server unreachable: dial tcp: connection refused")
}

func TestContextErrorsMapToTimeout(t *testing.T) {
	for _, mapFn := range []func(error) error{mapAnthropicError, mapOpenAIError, mapGeminiError} {
		err := mapFn(fmt.Errorf("post: %w", context.DeadlineExceeded))
		assert.True(t, hasCode(err, ErrCodeTimeout))
	}
}

func geminiAPIError(t *testing.T, err error) error {
	t.Helper()
	apiErr, ok := apierror.FromError(err)
	require.True(t, ok)
	return apiErr
}

func grpcErrorWithReason(t *testing.T, code codes.Code, reason string) error {
	t.Helper()
	st, err := status.New(code, "request failed").WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: "googleapis.com",
	})
	require.NoError(t, err)
	return st.Err()
}

func TestMapGeminiError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid key reason", geminiAPIError(t, grpcErrorWithReason(t, codes.InvalidArgument, "API_KEY_INVALID")), ErrCodeAuthentication},
		{"http 403", geminiAPIError(t, &googleapi.Error{Code: 403}), ErrCodeAuthentication},
		{"http 429", geminiAPIError(t, &googleapi.Error{Code: 429}), ErrCodeRateLimit},
		{"http 404", geminiAPIError(t, &googleapi.Error{Code: 404}), ErrCodeModelNotFound},
		{"http 503", geminiAPIError(t, &googleapi.Error{Code: 503}), ErrCodeServerError},
		{"grpc resource exhausted", geminiAPIError(t, status.Error(codes.ResourceExhausted, "quota")), ErrCodeRateLimit},
		{"grpc unauthenticated", geminiAPIError(t, status.Error(codes.Unauthenticated, "no key")), ErrCodeAuthentication},
		{"grpc invalid argument", geminiAPIError(t, grpcErrorWithReason(t, codes.InvalidArgument, "BAD_FIELD")), ErrCodeInvalidRequest},
		{"blocked", &genai.BlockedError{}, ErrCodeInvalidRequest},
		{"transport", errors.New("dial tcp: connection refused"), ErrCodeServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapGeminiError(fmt.Errorf("generate: %w", tt.err))

			assert.True(t, hasCode(err, tt.want), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.True(t, IsAuthenticationError(mapGeminiError(geminiAPIError(t, grpcErrorWithReason(t, codes.InvalidArgument, "API_KEY_INVALID")))))
	assert.True(t, IsRateLimitError(mapGeminiError(geminiAPIError(t, &googleapi.Error{Code: 429}))))
}

func TestGeminiSegments(t *testing.T) {
	got := geminiSegments([]genai.Part{
		genai.Blob{MIMEType: "image/png"},
		genai.Text("keep going"),
	})

	assert.Len(t, got, 2)
	assert.NotEqual(t, types.SegmentTypeText, got[0].Type)
	assert.Equal(t, types.Segment{Type: types.SegmentTypeText, Text: "keep going"}, got[1])
}

func TestRelayMessage(t *testing.T) {
	assert.Equal(t, "Server configuration error", RelayMessage(KindConfiguration))
	assert.Equal(t, "Please enter your question", RelayMessage(KindValidation))
	assert.Equal(t, "Service error. Please try again.", RelayMessage(KindProvider))
	assert.Equal(t, "Failed to process request", RelayMessage(KindEmptyResponse))
	assert.Equal(t, "Failed to process request", RelayMessage(KindUnexpected))
}
