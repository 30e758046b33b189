package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one kind so callers can
// branch with errors.Is on the kind instead of on each sentinel.
var (
	// ErrConfig indicates the caller supplied an unusable configuration.
	// Generation fails immediately without any attempt.
	ErrConfig = errors.New("invalid configuration")

	// ErrResource indicates required raw material is missing.
	// Generation fails immediately without any attempt.
	ErrResource = errors.New("resource unavailable")
)

// Configuration errors.
var (
	// ErrInvalidLength indicates a non-positive password length.
	ErrInvalidLength = fmt.Errorf("%w: length must be a positive integer", ErrConfig)

	// ErrInvalidMinimum indicates a negative per-class minimum.
	ErrInvalidMinimum = fmt.Errorf("%w: minimum counts must not be negative", ErrConfig)

	// ErrInvalidCount indicates a non-positive word or output count.
	ErrInvalidCount = fmt.Errorf("%w: count must be a positive integer", ErrConfig)

	// ErrNoCharacterClass indicates every character class is disabled.
	ErrNoCharacterClass = fmt.Errorf("%w: at least one character class must be enabled", ErrConfig)

	// ErrImpossibleConstraint indicates the minimums cannot fit in the length.
	ErrImpossibleConstraint = fmt.Errorf("%w: minimum required characters exceed length", ErrConfig)
)

// Resource errors.
var (
	// ErrEmptyPool indicates the character pool is empty after exclusions.
	ErrEmptyPool = fmt.Errorf("%w: character pool is empty after exclusions", ErrResource)

	// ErrNoWordlist indicates the word source is empty or failed to load.
	ErrNoWordlist = fmt.Errorf("%w: wordlist not loaded", ErrResource)
)

var (
	// ErrConstraintExhausted signals that the retry cap was reached and the
	// returned value is the last candidate, which failed validation.
	// It is a soft failure: the value is still usable at the caller's discretion.
	ErrConstraintExhausted = errors.New("criteria not fully met after maximum attempts")

	// ErrBreachUnavailable tags breach lookups that could not complete.
	// It is absorbed at the collaborator boundary and reported as unknown.
	ErrBreachUnavailable = errors.New("breach lookup unavailable")
)
