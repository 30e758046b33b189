// Package checkers provides candidate validation implementations.
package checkers

import (
	"strings"

	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.Checker = (*Pipeline)(nil)

// Pipeline chains multiple Checkers and runs them in order.
// It is itself a Checker, so generators stay agnostic to which rules run.
type Pipeline struct {
	checkers []driven.Checker
}

// NewPipeline creates a new validation pipeline with the given checkers.
// Nil checkers are skipped, so a disabled rule can be passed as nil.
func NewPipeline(checkers ...driven.Checker) *Pipeline {
	p := &Pipeline{}
	for _, c := range checkers {
		p.Add(c)
	}
	return p
}

// Name returns the names of the chained checkers.
func (p *Pipeline) Name() string {
	names := make([]string, 0, len(p.checkers))
	for _, c := range p.checkers {
		names = append(names, c.Name())
	}
	return "pipeline(" + strings.Join(names, ",") + ")"
}

// Check runs the candidate through the checkers in order and stops at the
// first one that rejects it. An empty pipeline accepts everything.
func (p *Pipeline) Check(candidate string) bool {
	return p.RejectedBy(candidate) != ""
}

// RejectedBy returns the name of the first rejecting checker, or "" when
// the candidate is accepted.
func (p *Pipeline) RejectedBy(candidate string) string {
	for _, c := range p.checkers {
		if c.Check(candidate) {
			logger.Debug("candidate rejected by %s", c.Name())
			return c.Name()
		}
	}
	return ""
}

// Add appends a checker to the pipeline. Nil is ignored.
func (p *Pipeline) Add(checker driven.Checker) {
	if checker == nil {
		return
	}
	p.checkers = append(p.checkers, checker)
}

// Len returns the number of checkers in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.checkers)
}
