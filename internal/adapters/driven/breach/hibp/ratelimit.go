package hibp

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// defaultRetryAfter is used when a 429 carries no usable Retry-After.
	defaultRetryAfter = 2 * time.Second
)

// RateLimiter combines proactive token-bucket throttling with the
// server's Retry-After signal.
type RateLimiter struct {
	mu           sync.Mutex
	bucket       *rate.Limiter
	blockedUntil time.Time
}

// NewRateLimiter creates a limiter allowing perSecond requests per second.
func NewRateLimiter(perSecond float64) *RateLimiter {
	if perSecond <= 0 {
		perSecond = 1
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Wait blocks until a request may be sent. A pending Retry-After window
// fails fast instead of blocking, since lookups are informational.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	blockedUntil := r.blockedUntil
	r.mu.Unlock()

	if time.Now().Before(blockedUntil) {
		return &RateLimitError{RetryAt: blockedUntil}
	}
	return r.bucket.Wait(ctx)
}

// CheckRateLimit returns a RateLimitError for 429 responses and records
// the Retry-After window.
func (r *RateLimiter) CheckRateLimit(resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	retryAt := time.Now().Add(defaultRetryAfter)
	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			retryAt = time.Now().Add(time.Duration(seconds) * time.Second)
		}
	}

	r.mu.Lock()
	r.blockedUntil = retryAt
	r.mu.Unlock()

	return &RateLimitError{RetryAt: retryAt}
}

// BlockedUntil returns the end of the current Retry-After window.
func (r *RateLimiter) BlockedUntil() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blockedUntil
}
