package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// seededSource is a deterministic RandomSource for property tests.
type seededSource struct {
	r *rand.Rand
}

func newSeededSource(seed uint64) *seededSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) (int, error) {
	return s.r.IntN(n), nil
}

// sequenceSource replays values modulo n, cycling when exhausted.
type sequenceSource struct {
	values []int
	pos    int
}

func (s *sequenceSource) Intn(n int) (int, error) {
	if len(s.values) == 0 {
		return 0, nil
	}
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v, nil
}

var errEntropy = errors.New("entropy source closed")

// failingSource always fails.
type failingSource struct{}

func (failingSource) Intn(int) (int, error) {
	return 0, errEntropy
}

// stubChecker rejects candidates for which reject returns true.
type stubChecker struct {
	name   string
	reject func(string) bool
	calls  int
}

func (c *stubChecker) Name() string { return c.name }

func (c *stubChecker) Check(candidate string) bool {
	c.calls++
	return c.reject(candidate)
}

func rejectAll() *stubChecker {
	return &stubChecker{name: "all", reject: func(string) bool { return true }}
}

// rejectFirst rejects the first n candidates.
func rejectFirst(n int) *stubChecker {
	c := &stubChecker{name: "first"}
	c.reject = func(string) bool { return c.calls <= n }
	return c
}

// staticWords is an in-memory WordSource.
type staticWords []string

func (w staticWords) Words() []string { return w }
func (w staticWords) Len() int        { return len(w) }

// stubBreach returns a fixed result.
type stubBreach struct {
	result domain.BreachResult
	calls  int
}

func (b *stubBreach) Check(_ context.Context, _ string) domain.BreachResult {
	b.calls++
	return b.result
}

// recordingChecker records every candidate before delegating.
type recordingChecker struct {
	driven.Checker
	seen     []string
	rejected []string
}

func record(c driven.Checker) *recordingChecker {
	return &recordingChecker{Checker: c}
}

func (c *recordingChecker) Check(candidate string) bool {
	c.seen = append(c.seen, candidate)
	reject := c.Checker.Check(candidate)
	if reject {
		c.rejected = append(c.rejected, candidate)
	}
	return reject
}

// identityShuffle is the Fisher-Yates index sequence that leaves n items
// in place.
func identityShuffle(n int) []int {
	out := make([]int, 0, n)
	for i := n - 1; i > 0; i-- {
		out = append(out, i)
	}
	return out
}

// lowerIndices maps a lowercase word to its indices in the lowercase alphabet.
func lowerIndices(word string) []int {
	out := make([]int, 0, len(word))
	for _, r := range word {
		out = append(out, strings.IndexRune(domain.LowercaseChars, r))
	}
	return out
}
