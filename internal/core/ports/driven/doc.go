// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - RandomSource: Cryptographically secure index selection
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil or empty - the application degrades gracefully:
//
//   - WordSource: Diceware wordlist. Empty disables passphrase generation.
//   - Checker: Candidate rejection rule. Nil accepts every candidate.
//   - BreachChecker: Breach lookup. Nil reports every breach status as unknown.
//   - RangeCache: Breach range cache. Nil always queries the remote service.
//   - Clipboard: Clipboard access for the --copy flag.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or checker package
package driven
