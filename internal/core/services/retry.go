package services

import (
	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// produceFunc builds one fresh candidate.
type produceFunc func() (string, error)

// retry produces candidates until check accepts one or maxAttempts is
// reached. Only the attempt counter survives between attempts. Exhaustion
// returns the last candidate with CriteriaMet false; errors from produce
// abort immediately.
func retry(maxAttempts int, produce produceFunc, check driven.Checker) (domain.Result, error) {
	if maxAttempts <= 0 {
		maxAttempts = domain.DefaultMaxAttempts
	}

	var last string
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate, err := produce()
		if err != nil {
			return domain.Result{}, err
		}
		last = candidate

		if check == nil || !check.Check(candidate) {
			return domain.Result{Value: candidate, Attempts: attempt, CriteriaMet: true}, nil
		}
		logger.Debug("attempt %d rejected by %s: %s", attempt, check.Name(), logger.Redact(candidate))
	}

	logger.Warn("no candidate met all criteria after %d attempts", maxAttempts)
	return domain.Result{Value: last, Attempts: maxAttempts, CriteriaMet: false}, nil
}
