package services

import "fmt"

// GenerationErrorKind tags upstream failures for logging. Every kind resolves
// to the same caller-facing outcome: the fallback response.
type GenerationErrorKind string

const (
	GenerationRateLimited   GenerationErrorKind = "RATE_LIMITED"
	GenerationSafetyBlocked GenerationErrorKind = "SAFETY_BLOCKED"
	GenerationTimeout       GenerationErrorKind = "TIMEOUT"
	GenerationNetworkError  GenerationErrorKind = "NETWORK_FAILURE"
	GenerationMalformed     GenerationErrorKind = "MALFORMED_RESPONSE"
)

// GenerationError is any failure of the completion gateway.
type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("gemini: %s", e.Kind)
	}
	return fmt.Sprintf("gemini: %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
