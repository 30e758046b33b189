package services

import (
	"fmt"

	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/core/ports/driving"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// Ensure PasswordGenerator implements the interface.
var _ driving.PasswordService = (*PasswordGenerator)(nil)

// PasswordGenerator produces random passwords under per-class minimums.
type PasswordGenerator struct {
	policy domain.Policy
	random driven.RandomSource
}

// NewPasswordGenerator creates a password generator.
func NewPasswordGenerator(policy domain.Policy, random driven.RandomSource) *PasswordGenerator {
	return &PasswordGenerator{
		policy: policy,
		random: random,
	}
}

// GeneratePassword produces a password satisfying cfg.
func (g *PasswordGenerator) GeneratePassword(
	cfg domain.GenerationConfig, check driven.Checker,
) (domain.Result, error) {
	if err := cfg.Validate(); err != nil {
		return domain.Result{}, err
	}

	pool, err := BuildPool(g.policy.Alphabets, cfg)
	if err != nil {
		return domain.Result{}, err
	}
	classes, err := classAlphabets(g.policy.Alphabets, cfg)
	if err != nil {
		return domain.Result{}, err
	}

	logger.Debug("generating %d-character password from a pool of %d symbols", cfg.Length, len(pool))

	return retry(g.policy.Attempts(), func() (string, error) {
		return g.attempt(cfg, classes, pool)
	}, check)
}

// attempt builds one candidate: guaranteed class members first, then the
// remainder from the merged pool, then a uniform shuffle so the guaranteed
// members land at unpredictable positions.
func (g *PasswordGenerator) attempt(
	cfg domain.GenerationConfig, classes map[domain.CharClass]string, pool string,
) (string, error) {
	buf := make([]byte, 0, cfg.Length)

	for _, class := range domain.AllCharClasses() {
		alphabet, enabled := classes[class]
		if !enabled {
			continue
		}
		for range cfg.Minimum(class) {
			c, err := pickByte(g.random, alphabet)
			if err != nil {
				return "", fmt.Errorf("draw %s: %w", class, err)
			}
			buf = append(buf, c)
		}
	}

	for len(buf) < cfg.Length {
		c, err := pickByte(g.random, pool)
		if err != nil {
			return "", fmt.Errorf("draw from pool: %w", err)
		}
		buf = append(buf, c)
	}

	if err := shuffle(g.random, buf); err != nil {
		return "", fmt.Errorf("shuffle: %w", err)
	}
	return string(buf), nil
}
