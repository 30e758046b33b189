package driving

import (
	"context"

	"github.com/custodia-labs/pwforge/internal/core/domain"
)

// StrengthService estimates password strength.
type StrengthService interface {
	// Entropy returns the class-based entropy estimate in bits.
	Entropy(password string) float64

	// CrackTime converts an entropy estimate into a brute-force projection.
	CrackTime(entropy float64) string

	// Evaluate combines Entropy and CrackTime.
	Evaluate(password string) domain.Strength
}

// ReportService evaluates an accepted password for presentation.
type ReportService interface {
	// Report computes strength, advisories and, when enabled, breach status.
	// Breach failures degrade to domain.BreachUnknown.
	Report(ctx context.Context, password string, opts domain.ReportOptions) domain.Report
}
