package domain

import (
	"errors"
	"fmt"
	"time"
)

// Generator defaults.
const (
	DefaultMinLength   = 12
	DefaultMaxLength   = 24
	DefaultWordCount   = 6
	DefaultDelimiter   = "-"
	DefaultWordlist    = "wordlists/eff_large_wordlist.txt"
	DefaultBreachURL   = "https://api.pwnedpasswords.com/range/"
	DefaultBreachRate  = 5.0
	DefaultBreachTTL   = 24 * time.Hour
	DefaultBreachLimit = 10 * time.Second
)

// GeneratorSettings holds defaults applied when the caller omits a value.
type GeneratorSettings struct {
	// MinLength and MaxLength bound the random length picked when no
	// length is given.
	MinLength int
	MaxLength int

	// WordCount is the default passphrase word count.
	WordCount int

	// Delimiter is the default passphrase delimiter.
	Delimiter string
}

// CheckSettings toggles the validation and reporting checks.
type CheckSettings struct {
	// Patterns enables the common-pattern checker.
	Patterns bool

	// Repetition enables the consecutive-repetition checker.
	Repetition bool

	// RepetitionThreshold is the longest allowed run of one character.
	RepetitionThreshold int

	// Breach enables the online breach lookup.
	Breach bool

	// CommonPatterns overrides the built-in pattern list when non-empty.
	CommonPatterns []string
}

// WordlistSettings locates the Diceware wordlist.
type WordlistSettings struct {
	Path string
}

// BreachSettings configures the breach range client.
type BreachSettings struct {
	// APIURL is the range endpoint; the 5-character prefix is appended.
	APIURL string

	// Timeout bounds one HTTP request.
	Timeout time.Duration

	// CacheTTL is how long a fetched range stays valid. Zero disables caching.
	CacheTTL time.Duration

	// RequestsPerSecond throttles outgoing lookups.
	RequestsPerSecond float64
}

// AppSettings holds all application settings.
type AppSettings struct {
	Generator GeneratorSettings
	Checks    CheckSettings
	Wordlist  WordlistSettings
	Breach    BreachSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Every check is enabled by default.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Generator: GeneratorSettings{
			MinLength: DefaultMinLength,
			MaxLength: DefaultMaxLength,
			WordCount: DefaultWordCount,
			Delimiter: DefaultDelimiter,
		},
		Checks: CheckSettings{
			Patterns:            true,
			Repetition:          true,
			RepetitionThreshold: DefaultRepetitionThreshold,
			Breach:              true,
		},
		Wordlist: WordlistSettings{
			Path: DefaultWordlist,
		},
		Breach: BreachSettings{
			APIURL:            DefaultBreachURL,
			Timeout:           DefaultBreachLimit,
			CacheTTL:          DefaultBreachTTL,
			RequestsPerSecond: DefaultBreachRate,
		},
	}
}

// Validate reports inconsistent settings.
func (s AppSettings) Validate() error {
	var errs []error
	if s.Generator.MinLength <= 0 {
		errs = append(errs, fmt.Errorf("generator.min_length must be positive, got %d", s.Generator.MinLength))
	}
	if s.Generator.MaxLength < s.Generator.MinLength {
		errs = append(errs, fmt.Errorf("generator.max_length (%d) is below generator.min_length (%d)",
			s.Generator.MaxLength, s.Generator.MinLength))
	}
	if s.Generator.WordCount <= 0 {
		errs = append(errs, fmt.Errorf("generator.word_count must be positive, got %d", s.Generator.WordCount))
	}
	if s.Checks.RepetitionThreshold < 1 {
		errs = append(errs, fmt.Errorf("checks.repetition_threshold must be at least 1, got %d",
			s.Checks.RepetitionThreshold))
	}
	if s.Breach.APIURL == "" {
		errs = append(errs, errors.New("breach.api_url is empty"))
	}
	if s.Breach.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("breach.timeout must be positive, got %s", s.Breach.Timeout))
	}
	if s.Breach.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("breach.rate must be positive, got %g", s.Breach.RequestsPerSecond))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrConfig, errors.Join(errs...))
}

// Policy derives the generation policy from the settings.
func (s AppSettings) Policy() Policy {
	p := DefaultPolicy()
	if len(s.Checks.CommonPatterns) > 0 {
		p.CommonPatterns = append([]string(nil), s.Checks.CommonPatterns...)
	}
	if s.Checks.RepetitionThreshold > 0 {
		p.RepetitionThreshold = s.Checks.RepetitionThreshold
	}
	return p
}

// ReportOptions derives the report options from the check settings.
func (s CheckSettings) ReportOptions(excludeAmbiguous bool) ReportOptions {
	return ReportOptions{
		PatternCheck:     s.Patterns,
		RepetitionCheck:  s.Repetition,
		BreachCheck:      s.Breach,
		ExcludeAmbiguous: excludeAmbiguous,
	}
}
