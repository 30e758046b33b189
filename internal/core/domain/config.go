package domain

// GenerationConfig describes a random password request.
type GenerationConfig struct {
	// Length is the exact number of characters to produce.
	Length int

	UseLower   bool
	UseUpper   bool
	UseDigits  bool
	UseSymbols bool

	// ExcludeAmbiguous removes Alphabets.Ambiguous from the merged pool.
	ExcludeAmbiguous bool

	// Minimum counts per class. A minimum for a disabled class is ignored.
	MinLower   int
	MinUpper   int
	MinDigits  int
	MinSymbols int
}

// DefaultGenerationConfig enables every class with no minimums.
func DefaultGenerationConfig(length int) GenerationConfig {
	return GenerationConfig{
		Length:     length,
		UseLower:   true,
		UseUpper:   true,
		UseDigits:  true,
		UseSymbols: true,
	}
}

// Enabled reports whether a class is switched on.
func (c GenerationConfig) Enabled(class CharClass) bool {
	switch class {
	case ClassLower:
		return c.UseLower
	case ClassUpper:
		return c.UseUpper
	case ClassDigit:
		return c.UseDigits
	case ClassSymbol:
		return c.UseSymbols
	default:
		return false
	}
}

// Minimum returns the requested minimum for a class, enabled or not.
func (c GenerationConfig) Minimum(class CharClass) int {
	switch class {
	case ClassLower:
		return c.MinLower
	case ClassUpper:
		return c.MinUpper
	case ClassDigit:
		return c.MinDigits
	case ClassSymbol:
		return c.MinSymbols
	default:
		return 0
	}
}

// AnyClassEnabled reports whether at least one class is switched on.
func (c GenerationConfig) AnyClassEnabled() bool {
	return c.UseLower || c.UseUpper || c.UseDigits || c.UseSymbols
}

// TotalMinimum sums every requested minimum, including disabled classes.
func (c GenerationConfig) TotalMinimum() int {
	return c.MinLower + c.MinUpper + c.MinDigits + c.MinSymbols
}

// Validate checks the preconditions that need no alphabet.
// Pool emptiness is checked by the pool builder.
func (c GenerationConfig) Validate() error {
	if c.Length <= 0 {
		return ErrInvalidLength
	}
	if c.MinLower < 0 || c.MinUpper < 0 || c.MinDigits < 0 || c.MinSymbols < 0 {
		return ErrInvalidMinimum
	}
	if !c.AnyClassEnabled() {
		return ErrNoCharacterClass
	}
	if c.TotalMinimum() > c.Length {
		return ErrImpossibleConstraint
	}
	return nil
}

// PassphraseConfig describes a Diceware passphrase request.
type PassphraseConfig struct {
	// WordCount is the number of words drawn from the word source.
	WordCount int

	// Delimiter joins the tokens.
	Delimiter string

	// Capitalize upper-cases the first letter of every word.
	Capitalize bool

	// AppendDigit adds one random digit as an extra token.
	AppendDigit bool

	// AppendSymbol adds one random symbol as an extra token.
	AppendSymbol bool
}

// Augmented reports whether extra tokens are added, which triggers a shuffle.
func (c PassphraseConfig) Augmented() bool {
	return c.AppendDigit || c.AppendSymbol
}

// Validate checks the word count.
func (c PassphraseConfig) Validate() error {
	if c.WordCount <= 0 {
		return ErrInvalidCount
	}
	return nil
}
