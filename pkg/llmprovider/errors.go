package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider indicates the configured provider name is not supported
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
