package convertkit

import (
	"errors"
	"fmt"
)

// APIError represents a non-success response from the ConvertKit API.
// Any HTTP status >= 300 is surfaced as an APIError carrying the raw
// response body for diagnosis.
type APIError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, string(e.Body))
}

// KeyError reports an attribute lookup against an entity whose underlying
// data does not contain the requested key.
type KeyError struct {
	Entity string
	Key    string
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("%s has no attribute %q", e.Entity, e.Key)
}

// Static errors that can be wrapped with context.
var (
	ErrMissingAPIKey    = errors.New("api key is required")
	ErrSecretRequired   = errors.New("api secret required")
	ErrFormNotFound     = errors.New("no form matched search")
	ErrAmbiguousForm    = errors.New("more than one form matched search")
	ErrSequenceNotFound = errors.New("no sequence matched search")
	ErrNotSupported     = errors.New("not supported")
	ErrMissingEnvelope  = errors.New("response envelope missing expected key")
)

// IsAuthError checks if the error is a secret-gated operation failure.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrSecretRequired)
}

// IsNotFound checks if the error reports an exhausted lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFormNotFound) || errors.Is(err, ErrSequenceNotFound)
}

// IsKeyError checks if the error is an entity attribute lookup failure.
func IsKeyError(err error) bool {
	keyErr := &KeyError{}

	return errors.As(err, &keyErr)
}
