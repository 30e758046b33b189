package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/core/ports/driving"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService evaluates accepted passwords for presentation.
// Breach lookups happen here, after generation, never inside the retry loop.
type ReportService struct {
	policy     domain.Policy
	strength   driving.StrengthService
	patterns   driven.Checker
	repetition driven.Checker
	breach     driven.BreachChecker
}

// NewReportService creates a report service. Any checker may be nil, which
// disables the matching advisory; a nil breach checker reports unknown.
func NewReportService(
	policy domain.Policy,
	strength driving.StrengthService,
	patterns driven.Checker,
	repetition driven.Checker,
	breach driven.BreachChecker,
) *ReportService {
	if strength == nil {
		strength = NewStrengthEstimator()
	}
	return &ReportService{
		policy:     policy,
		strength:   strength,
		patterns:   patterns,
		repetition: repetition,
		breach:     breach,
	}
}

// Report computes strength, advisories and breach status.
func (s *ReportService) Report(ctx context.Context, password string, opts domain.ReportOptions) domain.Report {
	report := domain.Report{
		Strength: s.strength.Evaluate(password),
		Breach:   s.lookup(ctx, password, opts.BreachCheck),
	}

	if report.Breach.Status == domain.BreachFound {
		report.Advisories = append(report.Advisories, domain.AdvisoryBreached)
	}
	if opts.PatternCheck && s.patterns != nil && s.patterns.Check(password) {
		report.Advisories = append(report.Advisories, domain.AdvisoryCommonPattern)
	}
	if opts.RepetitionCheck && s.repetition != nil && s.repetition.Check(password) {
		report.Advisories = append(report.Advisories, domain.AdvisoryRepetition)
	}
	if !opts.ExcludeAmbiguous && s.policy.Alphabets.Ambiguous != "" &&
		strings.ContainsAny(password, s.policy.Alphabets.Ambiguous) {
		report.Advisories = append(report.Advisories, domain.AdvisoryAmbiguous)
	}

	return report
}

func (s *ReportService) lookup(ctx context.Context, password string, enabled bool) domain.BreachResult {
	if !enabled {
		return domain.BreachSkipped("disabled")
	}
	if s.breach == nil {
		return domain.BreachSkipped("breach checker not configured")
	}

	result := s.breach.Check(ctx, password)
	if result.Status == domain.BreachUnknown {
		logger.Warn("breach check skipped: %s", result.Reason)
	}
	return result
}
