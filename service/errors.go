package service

import (
	"context"
	"errors"
)

// Provider error codes. Every adapter maps its native errors onto one of these.
const (
	ErrCodeAuthentication = "authentication_error"
	ErrCodeRateLimit      = "rate_limit_exceeded"
	ErrCodeModelNotFound  = "model_not_found"
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeServerError    = "server_error"
	ErrCodeTimeout        = "timeout"
)

// ErrMissingCredential is returned when the selected provider has no API key.
var ErrMissingCredential = errors.New("provider credential is not configured")

// ProviderError is a failure reported by (or while talking to) the AI provider.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(code, message string, err error) *ProviderError {
	return &ProviderError{Code: code, Message: message, Err: err}
}

// IsAuthenticationError reports whether err is a provider authentication failure.
func IsAuthenticationError(err error) bool {
	return hasCode(err, ErrCodeAuthentication)
}

func IsRateLimitError(err error) bool {
	return hasCode(err, ErrCodeRateLimit)
}

func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

func hasCode(err error, code string) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Code == code
}

// codeForStatus maps an HTTP status returned by a provider API to an error code.
func codeForStatus(status int) string {
	switch {
	case status == 401:
		return ErrCodeAuthentication
	case status == 429:
		return ErrCodeRateLimit
	case status == 404:
		return ErrCodeModelNotFound
	case status == 408:
		return ErrCodeTimeout
	case status >= 500:
		return ErrCodeServerError
	case status >= 400:
		return ErrCodeInvalidRequest
	default:
		return ErrCodeServerError
	}
}

// contextError maps cancellation and deadline errors, or returns nil.
func contextError(provider string, err error) *ProviderError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProviderError(ErrCodeTimeout, provider+": request timed out or cancelled", err)
	}
	return nil
}
