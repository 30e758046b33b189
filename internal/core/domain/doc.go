// Package domain defines the core business entities for pwforge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Policy: Alphabets, ambiguous characters and weak patterns
//   - GenerationConfig: Random password constraints
//   - PassphraseConfig: Diceware passphrase options
//   - Result: A generated value plus its validation outcome
//   - Strength, BreachResult, Report: Post-generation evaluation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
