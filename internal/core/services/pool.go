package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/pwforge/internal/core/domain"
)

// BuildPool concatenates the alphabets of the enabled classes in class
// order and removes ambiguous characters when requested.
func BuildPool(alphabets domain.Alphabets, cfg domain.GenerationConfig) (string, error) {
	if !cfg.AnyClassEnabled() {
		return "", domain.ErrNoCharacterClass
	}

	var sb strings.Builder
	for _, class := range domain.AllCharClasses() {
		if cfg.Enabled(class) {
			sb.WriteString(alphabets.Of(class))
		}
	}
	pool := sb.String()

	if cfg.ExcludeAmbiguous {
		pool = stripAmbiguous(pool, alphabets.Ambiguous)
	}

	if pool == "" {
		return "", domain.ErrEmptyPool
	}
	return pool, nil
}

// classAlphabets returns the alphabet each enabled class draws its
// minimum from, filtered the same way as the pool.
func classAlphabets(alphabets domain.Alphabets, cfg domain.GenerationConfig) (map[domain.CharClass]string, error) {
	result := make(map[domain.CharClass]string, 4)
	for _, class := range domain.AllCharClasses() {
		if !cfg.Enabled(class) {
			continue
		}
		alphabet := alphabets.Of(class)
		if cfg.ExcludeAmbiguous {
			alphabet = stripAmbiguous(alphabet, alphabets.Ambiguous)
		}
		if alphabet == "" && cfg.Minimum(class) > 0 {
			return nil, fmt.Errorf("%w: no %s characters left", domain.ErrEmptyPool, class)
		}
		result[class] = alphabet
	}
	return result, nil
}

func stripAmbiguous(s, ambiguous string) string {
	if ambiguous == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(ambiguous, r) {
			return -1
		}
		return r
	}, s)
}
