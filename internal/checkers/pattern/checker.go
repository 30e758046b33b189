// Package pattern rejects candidates containing well-known weak tokens.
package pattern

import (
	"strings"

	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// Name is the registry name of the checker.
const Name = "common_patterns"

// Ensure Checker implements the interface.
var _ driven.Checker = (*Checker)(nil)

// Checker matches case-insensitive substrings against a fixed token list.
type Checker struct {
	patterns []string
}

// New creates a pattern checker. Patterns are lower-cased once; empty
// patterns are dropped since they would match everything.
func New(patterns []string) *Checker {
	c := &Checker{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		c.patterns = append(c.patterns, strings.ToLower(p))
	}
	return c
}

// Name returns the checker name.
func (c *Checker) Name() string {
	return Name
}

// Check returns true when the candidate contains any pattern.
func (c *Checker) Check(candidate string) bool {
	return c.Match(candidate) != ""
}

// Match returns the first pattern found in the candidate, or "".
func (c *Checker) Match(candidate string) string {
	lower := strings.ToLower(candidate)
	for _, p := range c.patterns {
		if strings.Contains(lower, p) {
			return p
		}
	}
	return ""
}
