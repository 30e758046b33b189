package hibp

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedResponse indicates a range response line could not be parsed.
var ErrMalformedResponse = errors.New("hibp: malformed range response")

// RateLimitError represents a 429 response with the time lookups may resume.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("hibp: rate limit exceeded, retry at %s", e.RetryAt.Format(time.RFC3339))
}

// APIError represents an unexpected HTTP status from the range endpoint.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hibp: API error %d (URL: %s)", e.StatusCode, e.URL)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}
