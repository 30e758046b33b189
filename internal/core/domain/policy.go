package domain

// Default character sets.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SymbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// AmbiguousChars are easily confused when read or typed (1, l, I, O, 0).
	AmbiguousChars = "lIO01"
)

const (
	// DefaultMaxAttempts caps regeneration when a candidate is rejected.
	DefaultMaxAttempts = 100

	// DefaultRepetitionThreshold allows two identical consecutive characters;
	// a third triggers rejection.
	DefaultRepetitionThreshold = 2
)

// CharClass identifies one of the four generation character classes.
type CharClass int

// Character classes in pool order.
const (
	ClassLower CharClass = iota
	ClassUpper
	ClassDigit
	ClassSymbol
)

// AllCharClasses returns the classes in pool order.
func AllCharClasses() []CharClass {
	return []CharClass{ClassLower, ClassUpper, ClassDigit, ClassSymbol}
}

// String returns the class name.
func (c CharClass) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Alphabets holds the symbols of each character class.
type Alphabets struct {
	Lower   string
	Upper   string
	Digits  string
	Symbols string

	// Ambiguous lists characters removed from the pool when requested.
	Ambiguous string
}

// DefaultAlphabets returns the ASCII alphabets.
func DefaultAlphabets() Alphabets {
	return Alphabets{
		Lower:     LowercaseChars,
		Upper:     UppercaseChars,
		Digits:    DigitChars,
		Symbols:   SymbolChars,
		Ambiguous: AmbiguousChars,
	}
}

// Of returns the alphabet of a class.
func (a Alphabets) Of(c CharClass) string {
	switch c {
	case ClassLower:
		return a.Lower
	case ClassUpper:
		return a.Upper
	case ClassDigit:
		return a.Digits
	case ClassSymbol:
		return a.Symbols
	default:
		return ""
	}
}

// Policy is the immutable generation policy built once at startup and
// passed explicitly to the components that need it.
type Policy struct {
	Alphabets Alphabets

	// CommonPatterns are weak tokens rejected by the pattern checker.
	CommonPatterns []string

	// MaxAttempts caps the retry loop of both generators.
	MaxAttempts int

	// RepetitionThreshold is the longest allowed run of one character.
	RepetitionThreshold int
}

// DefaultCommonPatterns returns the built-in weak token list.
func DefaultCommonPatterns() []string {
	return []string{
		"password", "123456", "qwerty", "asdfgh", "zxcvbn", "qazwsx",
		"password123", "admin", "abcdef", "111111", "222222", "333333",
		"john", "mary",
	}
}

// DefaultPolicy returns the built-in policy.
func DefaultPolicy() Policy {
	return Policy{
		Alphabets:           DefaultAlphabets(),
		CommonPatterns:      DefaultCommonPatterns(),
		MaxAttempts:         DefaultMaxAttempts,
		RepetitionThreshold: DefaultRepetitionThreshold,
	}
}

// Attempts returns the retry cap, falling back to the default when unset.
func (p Policy) Attempts() int {
	if p.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return p.MaxAttempts
}
