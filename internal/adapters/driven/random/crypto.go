// Package random provides the cryptographically secure RandomSource.
package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.RandomSource = (*Source)(nil)

// Source draws uniform indices from the platform CSPRNG.
// It holds no state besides the reader and is safe for concurrent use.
type Source struct {
	reader io.Reader
}

// New creates a Source backed by crypto/rand.
func New() *Source {
	return &Source{reader: rand.Reader}
}

// NewFromReader creates a Source over an arbitrary entropy stream.
// Intended for tests that need to simulate a failing generator.
func NewFromReader(r io.Reader) *Source {
	return &Source{reader: r}
}

// Intn returns a uniform random integer in [0, n).
func (s *Source) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: invalid bound %d", n)
	}
	v, err := rand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random: %w", err)
	}
	return int(v.Int64()), nil
}
