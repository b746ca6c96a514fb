package copper

import (
	"errors"
	"fmt"
	"net/http"
)

// Validation rule violations. Each rule has its own sentinel so callers can
// distinguish failures with errors.Is.
var (
	ErrNameRequired      = errors.New("name is required and must be non-empty")
	ErrUnknownEnumValue  = errors.New("value is not in the allowed set")
	ErrNegativeCount     = errors.New("interaction_count must be non-negative")
	ErrProbabilityRange  = errors.New("probability must be between 0 and 100")
	ErrDecimalPrecision  = errors.New("monetary_value exceeds 15 digits or 2 decimal places")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidURL        = errors.New("invalid URL")
	ErrInvalidRecordType = errors.New("record type does not match entity type")
	ErrUnknownEntityType = errors.New("unknown entity type")
)

// Client construction errors.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrCredentialsRequired = errors.New("API key and user email are required")
)

// ValidationError reports a field value that violates an entity schema rule.
// It wraps one of the rule sentinels above.
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying rule sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports wire JSON whose shape does not match the
// expected structure, e.g. an address entry that is not an object.
type MalformedResponseError struct {
	Entity string
	Err    error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("malformed response: %v", e.Err)
	}

	return fmt.Sprintf("malformed %s response: %v", e.Entity, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// APIError represents an HTTP-level failure from the Copper API. It is the
// transport error type: network and status-code failures surface as *APIError
// and are never retried above the transport layer.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("copper API error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("copper API error: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// IsValidation checks whether the error is a schema validation failure.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsMalformedResponse checks whether the error is a wire-shape mismatch.
func IsMalformedResponse(err error) bool {
	malformedErr := &MalformedResponseError{}

	return errors.As(err, &malformedErr)
}

// IsNotFound checks whether the error is an HTTP 404 from the API.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsRateLimited checks whether the error is an HTTP 429 from the API.
// Retry/backoff for rate limiting is handled by the transport; by the time
// this error reaches a caller the retries are exhausted.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}
