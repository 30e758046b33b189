// Package hibp checks passwords against the Pwned Passwords range API.
//
// Only the first five hex characters of the password's SHA-1 hash leave the
// process (k-anonymity); matching against the returned suffixes is local.
package hibp

import (
	"bufio"
	"context"
	"crypto/sha1" //nolint:gosec // SHA-1 is the hash the range API is keyed by.
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.BreachChecker = (*Client)(nil)

const (
	// DefaultBaseURL is the public range endpoint.
	DefaultBaseURL = "https://api.pwnedpasswords.com/range/"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultRate is the default proactive request rate per second.
	DefaultRate = 5.0

	// UserAgent identifies the client, as the API requires.
	UserAgent = "pwforge"

	// PrefixLength is the number of hash characters sent to the API.
	PrefixLength = 5

	// maxBodySize bounds a range response.
	maxBodySize = 4 << 20
)

// Client is a breach checker backed by the range API.
// It is safe for concurrent use.
type Client struct {
	http        *http.Client
	baseURL     string
	userAgent   string
	cache       driven.RangeCache
	rateLimiter *RateLimiter
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets the range endpoint. The prefix is appended as the
// last path segment, with or without a trailing slash in u.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimSuffix(u, "/") + "/"
		}
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout. A client passed with
// WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			h := *c.http
			h.Timeout = d
			c.http = &h
		}
	}
}

// WithRate sets the proactive request rate per second.
func WithRate(perSecond float64) Option {
	return func(c *Client) {
		c.rateLimiter = NewRateLimiter(perSecond)
	}
}

// WithCache sets a range cache. Nil disables caching.
func WithCache(cache driven.RangeCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a range API client.
func New(opts ...Option) *Client {
	c := &Client{
		http:        &http.Client{Timeout: DefaultTimeout},
		baseURL:     DefaultBaseURL,
		userAgent:   UserAgent,
		rateLimiter: NewRateLimiter(DefaultRate),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check reports whether the password appears in the breach corpus.
// Every failure degrades to domain.BreachUnknown with a reason.
func (c *Client) Check(ctx context.Context, password string) domain.BreachResult {
	prefix, suffix := HashParts(password)

	body, err := c.fetchRange(ctx, prefix)
	if err != nil {
		logger.Warn("breach lookup failed: %v", err)
		return domain.BreachSkipped(fmt.Sprintf("%v: %v", domain.ErrBreachUnavailable, err))
	}

	count, err := FindSuffix(body, suffix)
	if err != nil {
		logger.Warn("breach lookup failed: %v", err)
		return domain.BreachSkipped(fmt.Sprintf("%v: %v", domain.ErrBreachUnavailable, err))
	}
	if count > 0 {
		return domain.BreachResult{Status: domain.BreachFound, Count: count}
	}
	return domain.BreachResult{Status: domain.BreachClear}
}

// HashParts returns the upper-case SHA-1 hex prefix and suffix of password.
func HashParts(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password)) //nolint:gosec // see import
	h := strings.ToUpper(hex.EncodeToString(sum[:]))
	return h[:PrefixLength], h[PrefixLength:]
}

// FindSuffix scans "SUFFIX:COUNT" lines and returns the count of suffix,
// or zero when absent. Padding entries with a zero count never match.
func FindSuffix(body, suffix string) (int, error) {
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, countStr, ok := strings.Cut(line, ":")
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMalformedResponse, line)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedResponse, line)
		}
		if strings.EqualFold(strings.TrimSpace(s), suffix) && count > 0 {
			return count, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return 0, nil
}

// fetchRange returns the range body for a prefix, from cache when possible.
func (c *Client) fetchRange(ctx context.Context, prefix string) (string, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, prefix)
		switch {
		case err != nil:
			logger.Debug("range cache read failed: %v", err)
		case ok:
			logger.Debug("range cache hit for %s", prefix)
			return body, nil
		}
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", err
	}

	url := c.baseURL + prefix
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Add-Padding", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request range: %w", err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, URL: url}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read range: %w", err)
	}
	body := string(data)

	if c.cache != nil {
		if err := c.cache.Put(ctx, prefix, body); err != nil {
			logger.Debug("range cache write failed: %v", err)
		}
	}
	return body, nil
}
