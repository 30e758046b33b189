package driven

// Checker is a rejection rule applied to a generated candidate.
// Checkers are pure and safe for concurrent use.
type Checker interface {
	// Name returns the checker name for logging and configuration.
	Name() string

	// Check returns true when the candidate must be rejected.
	Check(candidate string) bool
}
