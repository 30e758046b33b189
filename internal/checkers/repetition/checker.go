// Package repetition rejects candidates with long runs of one character.
package repetition

import (
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// Name is the registry name of the checker.
const Name = "repetition"

// Ensure Checker implements the interface.
var _ driven.Checker = (*Checker)(nil)

// Checker rejects any run of threshold+1 identical consecutive characters.
type Checker struct {
	threshold int
}

// New creates a repetition checker. A threshold below one disables it.
func New(threshold int) *Checker {
	return &Checker{threshold: threshold}
}

// Name returns the checker name.
func (c *Checker) Name() string {
	return Name
}

// Threshold returns the longest allowed run.
func (c *Checker) Threshold() int {
	return c.threshold
}

// Check returns true when some character repeats more than threshold times
// in a row. Runs are counted in runes.
func (c *Checker) Check(candidate string) bool {
	if c.threshold < 1 {
		return false
	}

	var prev rune
	run := 0
	for i, r := range candidate {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run > c.threshold {
			return true
		}
		prev = r
	}
	return false
}
