package services

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driving"
)

// Ensure StrengthEstimator implements the interface.
var _ driving.StrengthService = (*StrengthEstimator)(nil)

// Alphabet sizes assumed per character class when estimating entropy.
const (
	lowerPoolSize  = 26
	upperPoolSize  = 26
	digitPoolSize  = 10
	symbolPoolSize = 32
	otherPoolSize  = 50
)

const (
	// GuessesPerSecond models a GPU cluster attacker.
	GuessesPerSecond = 1e12

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365.25 * secondsPerDay

	// scientificYears is the point from which years are printed in
	// scientific notation.
	scientificYears = 1e15
)

// StrengthEstimator estimates password strength from character classes.
// It is independent of how the password was generated.
type StrengthEstimator struct{}

// NewStrengthEstimator creates a strength estimator.
func NewStrengthEstimator() *StrengthEstimator {
	return &StrengthEstimator{}
}

// Entropy returns length × log2(sum of the pool sizes of the classes present).
// Characters outside ASCII letters, digits and punctuation count as "other".
func (e *StrengthEstimator) Entropy(password string) float64 {
	if password == "" {
		return 0
	}

	var lower, upper, digit, symbol, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(domain.SymbolChars, r):
			symbol = true
		default:
			other = true
		}
	}

	size := 0
	if lower {
		size += lowerPoolSize
	}
	if upper {
		size += upperPoolSize
	}
	if digit {
		size += digitPoolSize
	}
	if symbol {
		size += symbolPoolSize
	}
	if other {
		size += otherPoolSize
	}

	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(size))
}

// CrackTime projects the brute-force time for the given entropy at
// GuessesPerSecond, expressed in the largest unit whose value is at least one.
func (e *StrengthEstimator) CrackTime(entropy float64) string {
	if entropy <= 0 {
		return "Instantly"
	}

	// Work in log10 so very large entropies never overflow.
	log10Seconds := entropy*math.Log10(2) - math.Log10(GuessesPerSecond)
	log10Years := log10Seconds - math.Log10(secondsPerYear)

	if log10Years >= math.Log10(scientificYears) {
		exp := math.Floor(log10Years)
		mantissa := math.Round(math.Pow(10, log10Years-exp)*100) / 100
		if mantissa >= 10 {
			mantissa /= 10
			exp++
		}
		return fmt.Sprintf("%.2fe+%d years", mantissa, int(exp))
	}

	seconds := math.Pow(10, log10Seconds)
	switch {
	case seconds/secondsPerYear >= 1:
		return fmt.Sprintf("%.2f years", seconds/secondsPerYear)
	case seconds/secondsPerDay >= 1:
		return fmt.Sprintf("%.2f days", seconds/secondsPerDay)
	case seconds/secondsPerHour >= 1:
		return fmt.Sprintf("%.2f hours", seconds/secondsPerHour)
	case seconds/secondsPerMinute >= 1:
		return fmt.Sprintf("%.2f minutes", seconds/secondsPerMinute)
	default:
		return fmt.Sprintf("%.2f seconds", seconds)
	}
}

// Evaluate returns the entropy and crack time of a password.
func (e *StrengthEstimator) Evaluate(password string) domain.Strength {
	entropy := e.Entropy(password)
	return domain.Strength{
		Entropy:   entropy,
		CrackTime: e.CrackTime(entropy),
	}
}
