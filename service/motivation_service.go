package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tieubaoca/motivate-be/types"
	"go.uber.org/zap"
)

const (
	PromptTemplate    = `As a motivational coach, provide encouraging and practical advice for: "%s"`
	DiagnosticMessage = "Hello Claude! This is a test message."
)

// ErrorKind classifies a relay failure. The set is closed.
type ErrorKind int

const (
	KindConfiguration ErrorKind = iota + 1
	KindValidation
	KindProvider
	KindEmptyResponse
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindProvider:
		return "provider"
	case KindEmptyResponse:
		return "empty_response"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// RelayError carries the kind of failure plus the underlying cause, which is
// for server-side logs only.
type RelayError struct {
	Kind ErrorKind
	Err  error
}

func (e *RelayError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a relay failure; errors that are not
// *RelayError are unexpected.
func KindOf(err error) ErrorKind {
	var re *RelayError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnexpected
}

var (
	errEmptyInput    = errors.New("input is empty")
	errEmptyResponse = errors.New("no text in provider response")
)

type MotivationConfig struct {
	MaxTokens           int
	DiagnosticMaxTokens int
	RequestTimeout      time.Duration
}

// MotivationService wraps user input in the coaching prompt and relays it to
// the provider. ai is nil when no credential is configured.
type MotivationService struct {
	ai     AIService
	cfg    MotivationConfig
	logger *zap.Logger
}

func NewMotivationService(ai AIService, cfg MotivationConfig, logger *zap.Logger) *MotivationService {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.DiagnosticMaxTokens <= 0 {
		cfg.DiagnosticMaxTokens = 100
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MotivationService{
		ai:     ai,
		cfg:    cfg,
		logger: logger,
	}
}

// Configured reports whether a provider credential is available.
func (s *MotivationService) Configured() bool {
	return s.ai != nil
}

func BuildPrompt(input string) string {
	return fmt.Sprintf(PromptTemplate, input)
}

// Ask validates input, sends it inside the coaching prompt and returns the
// first text segment of the reply. Failures are *RelayError values.
func (s *MotivationService) Ask(ctx context.Context, input string) (string, error) {
	if !s.Configured() {
		return "", &RelayError{Kind: KindConfiguration, Err: ErrMissingCredential}
	}
	if strings.TrimSpace(input) == "" {
		return "", &RelayError{Kind: KindValidation, Err: errEmptyInput}
	}

	completion, err := s.complete(ctx, BuildPrompt(input), s.cfg.MaxTokens)
	if err != nil {
		if IsProviderError(err) {
			return "", &RelayError{Kind: KindProvider, Err: err}
		}
		return "", &RelayError{Kind: KindUnexpected, Err: err}
	}

	text, ok := completion.FirstText()
	if !ok || text == "" {
		return "", &RelayError{Kind: KindEmptyResponse, Err: errEmptyResponse}
	}

	s.logger.Debug("relay completed",
		zap.String("model", completion.Model),
		zap.Int("prompt_tokens", completion.Usage.PromptTokens),
		zap.Int("completion_tokens", completion.Usage.CompletionTokens),
	)
	return text, nil
}

// Diagnose sends the fixed test message. An empty reply is not an error here.
func (s *MotivationService) Diagnose(ctx context.Context) (string, error) {
	if !s.Configured() {
		return "", ErrMissingCredential
	}
	completion, err := s.complete(ctx, DiagnosticMessage, s.cfg.DiagnosticMaxTokens)
	if err != nil {
		return "", err
	}
	text, _ := completion.FirstText()
	return text, nil
}

func (s *MotivationService) complete(ctx context.Context, prompt string, maxTokens int) (*types.Completion, error) {
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}
	return s.ai.Complete(ctx, prompt, maxTokens)
}
