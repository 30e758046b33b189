package driven

// RandomSource yields uniformly distributed indices from a cryptographically
// secure generator. Implementations must be safe to call repeatedly in rapid
// succession without blocking.
type RandomSource interface {
	// Intn returns a uniform random integer in [0, n).
	// n must be positive.
	Intn(n int) (int, error)
}
