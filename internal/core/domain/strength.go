package domain

// Strength is the estimated strength of a password.
type Strength struct {
	// Entropy is an upper-bound estimate in bits based on character classes.
	Entropy float64

	// CrackTime is a human-readable brute-force projection.
	CrackTime string
}

// BreachStatus is the outcome of a breach lookup.
type BreachStatus string

// Breach statuses.
const (
	// BreachFound means the password appears in a known breach corpus.
	BreachFound BreachStatus = "found"

	// BreachClear means the password was not listed.
	BreachClear BreachStatus = "clear"

	// BreachUnknown means the lookup was skipped or failed.
	BreachUnknown BreachStatus = "unknown"
)

// String returns the string representation.
func (s BreachStatus) String() string {
	return string(s)
}

// BreachResult is returned by breach checkers. It never carries an error:
// failures are reported as BreachUnknown with a reason.
type BreachResult struct {
	Status BreachStatus

	// Count is the number of times the password was seen, when found.
	Count int

	// Reason explains an unknown status.
	Reason string
}

// BreachSkipped returns an unknown result with the given reason.
func BreachSkipped(reason string) BreachResult {
	return BreachResult{Status: BreachUnknown, Reason: reason}
}

// Advisory is an informational note about an accepted password.
type Advisory string

// Advisories reported alongside a generated password.
const (
	AdvisoryCommonPattern Advisory = "contains a common pattern"
	AdvisoryRepetition    Advisory = "contains consecutive repeated characters"
	AdvisoryAmbiguous     Advisory = "contains ambiguous characters (l, 1, I, O, 0)"
	AdvisoryBreached      Advisory = "found in a public data breach; do not use"
)

// ReportOptions selects which post-generation checks run.
type ReportOptions struct {
	PatternCheck     bool
	RepetitionCheck  bool
	BreachCheck      bool
	ExcludeAmbiguous bool
}

// Report bundles the strength estimate, breach status and advisories of
// one password.
type Report struct {
	Strength   Strength
	Breach     BreachResult
	Advisories []Advisory
}
