package providers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// APIError is a well-formed upstream response whose errors list was non-empty.
type APIError struct {
	Provider string
	Entity   string
	Messages []string
}

func (e *APIError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if msg == "" {
		msg = "request failed"
	}
	if e.Entity != "" {
		return fmt.Sprintf("%s: %s: %s", e.Provider, e.Entity, msg)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
