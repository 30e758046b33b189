package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/core/ports/driving"
)

// Ensure PassphraseGenerator implements the interface.
var _ driving.PassphraseService = (*PassphraseGenerator)(nil)

// PassphraseGenerator produces Diceware-style passphrases.
type PassphraseGenerator struct {
	policy domain.Policy
	random driven.RandomSource
	words  []string
}

// NewPassphraseGenerator creates a passphrase generator over a word source
// loaded once at construction. A nil or empty source makes every call fail
// with domain.ErrNoWordlist.
func NewPassphraseGenerator(
	policy domain.Policy, random driven.RandomSource, source driven.WordSource,
) *PassphraseGenerator {
	var words []string
	if source != nil {
		words = source.Words()
	}
	return &PassphraseGenerator{
		policy: policy,
		random: random,
		words:  words,
	}
}

// WordCount returns the size of the loaded word source.
func (g *PassphraseGenerator) WordCount() int {
	return len(g.words)
}

// GeneratePassphrase produces a passphrase satisfying cfg.
func (g *PassphraseGenerator) GeneratePassphrase(
	cfg domain.PassphraseConfig, check driven.Checker,
) (domain.Result, error) {
	if len(g.words) == 0 {
		return domain.Result{}, domain.ErrNoWordlist
	}
	if err := cfg.Validate(); err != nil {
		return domain.Result{}, err
	}

	return retry(g.policy.Attempts(), func() (string, error) {
		return g.attempt(cfg)
	}, check)
}

func (g *PassphraseGenerator) attempt(cfg domain.PassphraseConfig) (string, error) {
	tokens := make([]string, 0, cfg.WordCount+2)

	for range cfg.WordCount {
		w, err := pickElement(g.random, g.words)
		if err != nil {
			return "", fmt.Errorf("draw word: %w", err)
		}
		if cfg.Capitalize {
			w = capitalize(w)
		}
		tokens = append(tokens, w)
	}

	if cfg.AppendDigit {
		d, err := pickByte(g.random, g.policy.Alphabets.Digits)
		if err != nil {
			return "", fmt.Errorf("draw digit: %w", err)
		}
		tokens = append(tokens, string(d))
	}
	if cfg.AppendSymbol {
		s, err := pickByte(g.random, g.policy.Alphabets.Symbols)
		if err != nil {
			return "", fmt.Errorf("draw symbol: %w", err)
		}
		tokens = append(tokens, string(s))
	}

	// Augmentation tokens may land anywhere, including either end.
	if cfg.Augmented() {
		if err := shuffle(g.random, tokens); err != nil {
			return "", fmt.Errorf("shuffle: %w", err)
		}
	}

	return strings.Join(tokens, cfg.Delimiter), nil
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
