package driven

import (
	"context"

	"github.com/custodia-labs/pwforge/internal/core/domain"
)

// BreachChecker reports whether a password appears in a breach corpus.
// It never returns an error: failures are reported as domain.BreachUnknown.
type BreachChecker interface {
	Check(ctx context.Context, password string) domain.BreachResult
}

// RangeCache stores breach range responses keyed by hash prefix.
type RangeCache interface {
	// Get returns the cached body for a prefix.
	// The boolean is false when the prefix is absent or expired.
	Get(ctx context.Context, prefix string) (string, bool, error)

	// Put stores the body for a prefix.
	Put(ctx context.Context, prefix, body string) error
}
