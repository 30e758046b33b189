package domain

import "fmt"

// Result is the outcome of one generation call.
type Result struct {
	// Value is the accepted candidate, or the last candidate when the
	// retry cap was exhausted.
	Value string

	// Attempts is the number of candidates produced.
	Attempts int

	// CriteriaMet is false when every attempt was rejected.
	CriteriaMet bool
}

// Err returns ErrConstraintExhausted for a degraded result and nil otherwise.
func (r Result) Err() error {
	if r.CriteriaMet {
		return nil
	}
	return fmt.Errorf("%w (%d attempts)", ErrConstraintExhausted, r.Attempts)
}
